package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ids-inventory-api/pkg/jwt"
)

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate("secreto-de-prueba", 42, "ana", "ids-inventory", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, err := jwt.Parse("secreto-de-prueba", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "ana", username)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto-de-prueba", 42, "ana", "ids-inventory", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("secreto-de-prueba", 42, "ana", "ids-inventory", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto-de-prueba", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 42, "ana", "ids-inventory", 60)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := jwt.Parse("secreto-de-prueba", "no-es-un-jwt")
	assert.Error(t, err)
}
