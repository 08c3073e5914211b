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

type fakeReturnRepo struct {
	byID map[string]*entity.Return
}

func newFakeReturnRepo() *fakeReturnRepo {
	return &fakeReturnRepo{byID: make(map[string]*entity.Return)}
}

func (r *fakeReturnRepo) Create(ret *entity.Return) error { r.byID[ret.ID] = ret; return nil }

func (r *fakeReturnRepo) GetByID(id string) (*entity.Return, error) {
	if ret, ok := r.byID[id]; ok {
		return ret, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeReturnRepo) Update(ret *entity.Return) error { r.byID[ret.ID] = ret; return nil }

func (r *fakeReturnRepo) List(limit, offset int) ([]*entity.Return, int, error) {
	var list []*entity.Return
	for _, ret := range r.byID {
		list = append(list, ret)
	}
	return list, len(list), nil
}

func validReturn() dto.CreateReturnRequest {
	return dto.CreateReturnRequest{
		MarketplaceOrderID: "ML-20001",
		Producto:           "Café Molido",
		SKU:                "abc-001",
		Cantidad:           1,
		Motivo:             "Llegó dañado",
	}
}

func TestReturnCreate_NormalizaCampos(t *testing.T) {
	repo := newFakeReturnRepo()
	uc := usecase.NewReturnUseCase(repo)

	in := validReturn()
	in.EstadoProducto = "Sellado"
	in.CustomerEmail = " Cliente@Correo.CL "
	out, err := uc.Create(in, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "ABC-001", out.SKU)
	assert.Equal(t, "sellado", out.EstadoProducto)
	assert.Equal(t, "cliente@correo.cl", out.CustomerEmail)
	assert.Equal(t, "user-1", out.RecibidoPor)
}

func TestReturnCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewReturnUseCase(newFakeReturnRepo())

	in := validReturn()
	in.Motivo = ""
	_, err := uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validReturn()
	in.Cantidad = 0
	_, err = uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReturnCreate_EnumsInvalidos(t *testing.T) {
	uc := usecase.NewReturnUseCase(newFakeReturnRepo())

	in := validReturn()
	in.EstadoProducto = "quemado"
	_, err := uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validReturn()
	in.Resultado = "regalado"
	_, err = uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReturnUpdate_SoloCamposPresentes(t *testing.T) {
	repo := newFakeReturnRepo()
	uc := usecase.NewReturnUseCase(repo)

	created, err := uc.Create(validReturn(), "")
	require.NoError(t, err)

	resultado := "Reingresado"
	out, err := uc.Update(created.ID, dto.UpdateReturnRequest{Resultado: &resultado})
	require.NoError(t, err)
	assert.Equal(t, "reingresado", out.Resultado)
	assert.Equal(t, "Llegó dañado", out.Motivo)

	_, err = uc.Update("no-existe", dto.UpdateReturnRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
