package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ids-inventory-api/internal/application/auth"
	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[int64]*entity.User
	byUsername map[string]*entity.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[int64]*entity.User{},
		byUsername: map[string]*entity.User{},
		nextID:     1,
	}
}

func (r *fakeUserRepo) Create(user *entity.User) (int64, error) {
	if _, exists := r.byUsername[user.Username]; exists {
		return 0, domain.ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = user
	r.byUsername[user.Username] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.byID[user.ID] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id < r.nextID; id++ {
		if u := r.byID[id]; u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "ids-inventory"}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaPasswordYOmiteElHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, "active", out.Status, "status por defecto")

	stored := repo.byUsername["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura")))
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)

	userID, username, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "ana", username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInexistenteNoSeDistingue(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"mismo error que password incorrecta: no filtra si la cuenta existe")
}

func TestUpdate_RehasheaSoloSiLlegaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	created, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)
	hashAntes := repo.byID[created.ID].PasswordHash

	rol := "manager"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Role: &rol})
	require.NoError(t, err)
	assert.Equal(t, hashAntes, repo.byID[created.ID].PasswordHash, "sin password no se rehashea")
	assert.Equal(t, "manager", repo.byID[created.ID].Role)

	nueva := "clave-nueva-123"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)
	assert.NotEqual(t, hashAntes, repo.byID[created.ID].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.byID[created.ID].PasswordHash), []byte("clave-nueva-123")))
}
