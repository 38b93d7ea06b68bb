package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/domain"
	"github.com/jhoicas/ids-inventory-api/internal/domain/entity"
	"github.com/jhoicas/ids-inventory-api/internal/domain/repository"
	"github.com/jhoicas/ids-inventory-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y gestión de
// cuentas.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea password con bcrypt y persiste.
// domain.ErrDuplicate si username, phone o email ya existen.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	user := &entity.User{
		Username:     in.Username,
		Phone:        in.Phone,
		Designation:  in.Designation,
		Location:     in.Location,
		BusinessUnit: in.BusinessUnit,
		Role:         in.Role,
		Email:        in.Email,
		Status:       status,
		PasswordHash: string(hash),
	}
	if _, err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Devuelve domain.ErrUnauthorized ante credenciales inválidas sin distinguir
// si la cuenta existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetByID obtiene una cuenta; domain.ErrUserNotFound si no existe.
func (uc *AuthUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update actualiza metadatos o credenciales de una cuenta; los campos nil
// quedan como están.
func (uc *AuthUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Designation != nil {
		user.Designation = *in.Designation
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.BusinessUnit != nil {
		user.BusinessUnit = *in.BusinessUnit
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todas las cuentas.
func (uc *AuthUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Phone:        u.Phone,
		Designation:  u.Designation,
		Location:     u.Location,
		BusinessUnit: u.BusinessUnit,
		Role:         u.Role,
		Email:        u.Email,
		Status:       u.Status,
	}
}
