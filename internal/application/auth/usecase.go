package auth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
	"github.com/ecolvin/tracelink-api/pkg/jwt"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
//
// Si ROOT_ADMIN_EMAIL está configurado, ese email se promueve a admin
// automáticamente tanto al registrarse como en cada login (por si la cuenta
// existía antes de configurarlo).
type AuthUseCase struct {
	users          repository.UserRepository
	jwtCfg         JWTConfig
	rootAdminEmail string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, rootAdminEmail string) *AuthUseCase {
	return &AuthUseCase{
		users:          users,
		jwtCfg:         jwtCfg,
		rootAdminEmail: strings.ToLower(strings.TrimSpace(rootAdminEmail)),
	}
}

// Register crea un usuario con rol cliente (o admin si es el root admin),
// permisos por defecto y password hasheado con bcrypt.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: el password debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}

	existing, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.RoleCliente
	if email == uc.rootAdminEmail && uc.rootAdminEmail != "" {
		role = entity.RoleAdmin
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  entity.DefaultPermissions(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales y devuelve token JWT más el usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Promoción del root admin en login, por si la cuenta es anterior a la config.
	if user.Email == uc.rootAdminEmail && uc.rootAdminEmail != "" && user.Role != entity.RoleAdmin {
		user.Role = entity.RoleAdmin
		if err := uc.users.Update(user); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Profile devuelve el usuario autenticado.
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = entity.DefaultPermissions()
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: perms,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
