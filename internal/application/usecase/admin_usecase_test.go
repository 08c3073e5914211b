package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

type fakeAdminUserRepo struct {
	byID map[string]*entity.User
}

func newFakeAdminUserRepo(users ...*entity.User) *fakeAdminUserRepo {
	r := &fakeAdminUserRepo{byID: make(map[string]*entity.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeAdminUserRepo) Create(u *entity.User) error { r.byID[u.ID] = u; return nil }

func (r *fakeAdminUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminUserRepo) FindByID(id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeAdminUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.byID {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeAdminUserRepo) Update(u *entity.User) error { r.byID[u.ID] = u; return nil }

func (r *fakeAdminUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func TestUpdateRole_PromueveUsuario(t *testing.T) {
	repo := newFakeAdminUserRepo(
		&entity.User{ID: "u1", Email: "admin@tienda.cl", Role: entity.RoleAdmin},
		&entity.User{ID: "u2", Email: "ana@tienda.cl", Role: entity.RoleCliente},
	)
	uc := usecase.NewAdminUseCase(repo)

	out, err := uc.UpdateRole("u2", dto.UpdateRoleRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, entity.RoleAdmin, repo.byID["u2"].Role)
}

func TestUpdateRole_UltimoAdminNoSeDegrada(t *testing.T) {
	repo := newFakeAdminUserRepo(
		&entity.User{ID: "u1", Email: "admin@tienda.cl", Role: entity.RoleAdmin},
		&entity.User{ID: "u2", Email: "ana@tienda.cl", Role: entity.RoleCliente},
	)
	uc := usecase.NewAdminUseCase(repo)

	_, err := uc.UpdateRole("u1", dto.UpdateRoleRequest{Role: entity.RoleCliente})
	assert.ErrorIs(t, err, domain.ErrLastAdmin)
	assert.Equal(t, entity.RoleAdmin, repo.byID["u1"].Role)
}

func TestUpdateRole_ConOtroAdminSiSePuede(t *testing.T) {
	repo := newFakeAdminUserRepo(
		&entity.User{ID: "u1", Email: "admin@tienda.cl", Role: entity.RoleAdmin},
		&entity.User{ID: "u2", Email: "otro@tienda.cl", Role: entity.RoleAdmin},
	)
	uc := usecase.NewAdminUseCase(repo)

	out, err := uc.UpdateRole("u1", dto.UpdateRoleRequest{Role: entity.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestUpdateRole_RolDesconocido(t *testing.T) {
	uc := usecase.NewAdminUseCase(newFakeAdminUserRepo())
	_, err := uc.UpdateRole("u1", dto.UpdateRoleRequest{Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdatePermissions_DescartaSeccionesDesconocidas(t *testing.T) {
	repo := newFakeAdminUserRepo(&entity.User{ID: "u1", Email: "ana@tienda.cl", Role: entity.RoleCliente})
	uc := usecase.NewAdminUseCase(repo)

	out, err := uc.UpdatePermissions("u1", dto.UpdatePermissionsRequest{
		Permissions: entity.Permissions{
			"products": {View: true, Edit: true},
			"hackeo":   {View: true, Edit: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.Permission{View: true, Edit: true}, out.Permissions["products"])
	assert.NotContains(t, out.Permissions, "hackeo")
	// Las secciones no enviadas conservan el default.
	assert.Equal(t, entity.Permission{View: true, Edit: false}, out.Permissions["dashboard"])
}
