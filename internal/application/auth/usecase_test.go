package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/application/auth"
	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.byEmail {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range r.byEmail {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "tracelink-api"}

func TestRegister_CreaClientePorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT, "")

	out, err := uc.Register(dto.RegisterRequest{Email: "  Ana@Tienda.CL ", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, "ana@tienda.cl", out.Email)
	assert.Equal(t, entity.RoleCliente, out.Role)
	assert.NotEmpty(t, out.ID)
	require.Contains(t, repo.byEmail, "ana@tienda.cl")
	assert.NotEqual(t, "secreto", repo.byEmail["ana@tienda.cl"].PasswordHash)
}

func TestRegister_RootAdminQuedaComoAdmin(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT, "Dueno@Tienda.cl")

	out, err := uc.Register(dto.RegisterRequest{Email: "dueno@tienda.cl", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT, "")

	_, err := uc.Register(dto.RegisterRequest{Email: "no-es-email", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.cl", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT, "")

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.cl", Password: "secreto"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "Ana@Tienda.cl", Password: "otraclave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT, "")

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.cl", Password: "secreto"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.cl", Password: "secreto"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "ana@tienda.cl", email)
	assert.Equal(t, entity.RoleCliente, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT, "")

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.cl", Password: "secreto"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.cl", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@tienda.cl", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PromueveRootAdminExistente(t *testing.T) {
	repo := newFakeUserRepo()

	// La cuenta existe desde antes de configurar el root admin.
	previo := auth.NewAuthUseCase(repo, testJWT, "")
	_, err := previo.Register(dto.RegisterRequest{Email: "dueno@tienda.cl", Password: "secreto"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleCliente, repo.byEmail["dueno@tienda.cl"].Role)

	uc := auth.NewAuthUseCase(repo, testJWT, "dueno@tienda.cl")
	out, err := uc.Login(dto.LoginRequest{Email: "dueno@tienda.cl", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, entity.RoleAdmin, repo.byEmail["dueno@tienda.cl"].Role)
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT, "")
	_, err := uc.Profile("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
