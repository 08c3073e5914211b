package alerting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/application/alerting"
	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

type fakeConfigRepo struct {
	cfg   *entity.AlertConfig
	saves int
}

func (r *fakeConfigRepo) Get() (*entity.AlertConfig, error) { return r.cfg, nil }

func (r *fakeConfigRepo) Save(cfg *entity.AlertConfig) error {
	r.cfg = cfg
	r.saves++
	return nil
}

func TestEnsure_CreaConfiguracionPorDefecto(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := alerting.NewConfigService(repo, "Dueno@Tienda.cl")

	cfg, err := svc.Ensure()
	require.NoError(t, err)

	assert.Equal(t, alerting.DefaultStockThreshold, cfg.StockThreshold)
	assert.Equal(t, entity.DefaultNotifyStatuses, cfg.NotifyStatuses)
	assert.Equal(t, []string{"dueno@tienda.cl"}, cfg.EmailRecipients)
	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, 1, repo.saves)
}

func TestEnsure_NoRecreaLaExistente(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &entity.AlertConfig{ID: "cfg-1", StockThreshold: 3}}
	svc := alerting.NewConfigService(repo, "")

	cfg, err := svc.Ensure()
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
	assert.Equal(t, 3, cfg.StockThreshold)
	assert.Zero(t, repo.saves)
}

func TestUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := alerting.NewConfigService(repo, "dueno@tienda.cl")

	threshold := 5
	cfg, err := svc.Update(dto.UpdateAlertConfigRequest{StockThreshold: &threshold})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.StockThreshold)
	// Los campos no enviados conservan su valor por defecto.
	assert.Equal(t, entity.DefaultNotifyStatuses, cfg.NotifyStatuses)
	assert.Equal(t, []string{"dueno@tienda.cl"}, cfg.EmailRecipients)
}

func TestUpdate_UmbralNoPositivoSeIgnora(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := alerting.NewConfigService(repo, "")

	zero := 0
	cfg, err := svc.Update(dto.UpdateAlertConfigRequest{StockThreshold: &zero})
	require.NoError(t, err)
	assert.Equal(t, alerting.DefaultStockThreshold, cfg.StockThreshold)
}

func TestUpdate_EstadosDesconocidosSeDescartan(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := alerting.NewConfigService(repo, "")

	cfg, err := svc.Update(dto.UpdateAlertConfigRequest{
		NotifyStatuses: []string{"Cancelado", "volando", " EN_CAMINO "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cancelado", "en_camino"}, cfg.NotifyStatuses)
}

func TestNormalizeRecipients_DeduplicaYMantieneDefault(t *testing.T) {
	svc := alerting.NewConfigService(&fakeConfigRepo{}, "dueno@tienda.cl")

	out := svc.NormalizeRecipients([]string{
		"Ventas@Tienda.CL", "", "ventas@tienda.cl", "dueno@tienda.cl", "  bodega@tienda.cl  ",
	})
	assert.Equal(t, []string{"dueno@tienda.cl", "ventas@tienda.cl", "bodega@tienda.cl"}, out)
}

func TestNormalizeRecipients_SinDefaultNiLista(t *testing.T) {
	svc := alerting.NewConfigService(&fakeConfigRepo{}, "")
	assert.Empty(t, svc.NormalizeRecipients(nil))
}
