package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/domain"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
	"github.com/jhoicas/manager-api/pkg/jwt"
)

// Mensajes para el cliente.
const (
	msgFillAllFields      = "Please fill all fields"
	msgPasswordsMismatch  = "Passwords do not match"
	msgAdminExists        = "Admin already exists with this email"
	msgInvalidCredentials = "Invalid email or password"
	msgAccountInactive    = "Admin account is inactive"
	msgAdminNotFound      = "Admin not found"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration // 0 = jwt.TokenTTL
}

// AuthUseCase casos de uso de credenciales: registro, login, resolución de identidad y estado de cuenta.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.TTL == 0 {
		jwtCfg.TTL = jwt.TokenTTL
	}
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg, now: func() time.Time { return time.Now().UTC() }}
}

// Register crea un administrador activo con la contraseña hasheada y devuelve su resumen con token.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewError(domain.ErrValidation, msgFillAllFields)
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewError(domain.ErrPasswordMismatch, msgPasswordsMismatch)
	}

	// Consulta previa orientativa; la restricción única del store es la que decide ante carreras.
	existing, err := uc.adminRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgAdminExists)
	}

	now := uc.now()
	admin := &entity.Admin{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		Status:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewError(domain.ErrEmailAlreadyExists, msgAdminExists)
		}
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	created := admin.CreatedAt
	return &dto.AuthResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Status:    admin.Status,
		CreatedAt: &created,
		Token:     token,
	}, nil
}

// Login verifica email/password y emite un token. Una cuenta inactiva sólo se informa
// como tal si la contraseña es correcta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewError(domain.ErrValidation, msgFillAllFields)
	}
	admin, err := uc.adminRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.CheckPassword(in.Password) {
		return nil, domain.NewError(domain.ErrInvalidCredentials, msgInvalidCredentials)
	}
	if !admin.Status {
		return nil, domain.NewError(domain.ErrAccountInactive, msgAccountInactive)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Status:   admin.Status,
		Token:    token,
	}, nil
}

// Identify resuelve el administrador de un token ya verificado.
// Devuelve ErrNotFound si no existe y ErrAccountInactive si está desactivado.
func (uc *AuthUseCase) Identify(ctx context.Context, adminID string) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	if !admin.Status {
		return nil, domain.ErrAccountInactive
	}
	return admin.Public(), nil
}

// SetStatus activa o desactiva la cuenta con ese email y refresca updated_date.
func (uc *AuthUseCase) SetStatus(ctx context.Context, email string, active bool) (*dto.AdminResponse, error) {
	if email == "" {
		return nil, domain.NewError(domain.ErrValidation, "email is required")
	}
	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.NewError(domain.ErrNotFound, msgAdminNotFound)
	}
	admin.Status = active
	admin.UpdatedAt = uc.now()
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return &dto.AdminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Status:    admin.Status,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}, nil
}
