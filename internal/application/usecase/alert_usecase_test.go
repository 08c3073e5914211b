package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/application/alerting"
	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

type fakeAlertConfigRepo struct {
	cfg *entity.AlertConfig
}

func (r *fakeAlertConfigRepo) Get() (*entity.AlertConfig, error) { return r.cfg, nil }
func (r *fakeAlertConfigRepo) Save(c *entity.AlertConfig) error  { r.cfg = c; return nil }

type alertFixture struct {
	uc         *usecase.AlertUseCase
	alerts     *fakeAlertRepo
	deliveries *fakeDeliveryRepo
	config     *fakeAlertConfigRepo
}

func newAlertFixture() *alertFixture {
	f := &alertFixture{
		alerts:     newFakeAlertRepo(),
		deliveries: newFakeDeliveryRepo(),
		config:     &fakeAlertConfigRepo{},
	}
	f.uc = usecase.NewAlertUseCase(f.alerts, f.deliveries, alerting.NewConfigService(f.config, "dueno@tienda.cl"))
	return f
}

func TestAlertResolve(t *testing.T) {
	f := newAlertFixture()
	require.NoError(t, f.alerts.UpsertActive(&entity.Alert{
		ID: "a1", ProductSKU: "ABC-001", Status: entity.AlertStatusActive,
	}))

	out, err := f.uc.Resolve("a1", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusResolved, out.Status)
	assert.Equal(t, "admin-1", out.ResolvedBy)

	_, err = f.uc.Resolve("a1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlertGetConfig_CreaDefaultsEnPrimeraLectura(t *testing.T) {
	f := newAlertFixture()

	out, err := f.uc.GetConfig()
	require.NoError(t, err)

	assert.Equal(t, alerting.DefaultStockThreshold, out.StockThreshold)
	assert.Contains(t, out.EmailRecipients, "dueno@tienda.cl")
	require.NotNil(t, f.config.cfg, "la configuración queda persistida")
}

func TestFeed_MezclaStockYEntregasOrdenadas(t *testing.T) {
	f := newAlertFixture()

	now := time.Now()
	require.NoError(t, f.alerts.UpsertActive(&entity.Alert{
		ID: "a1", ProductSKU: "ABC-001", Mensaje: "Stock bajo: Café (3/10)",
		Status: entity.AlertStatusActive, CreatedAt: now.Add(-2 * time.Hour),
	}))
	f.deliveries.byID["d1"] = &entity.Delivery{
		ID: "d1", Code: "DEL-1", NombrePersona: "Ana",
		Status: entity.DeliveryStatusPendiente, CreatedAt: now.Add(-1 * time.Hour),
	}
	// Estado fuera de la configuración por defecto: no entra al feed.
	f.deliveries.byID["d2"] = &entity.Delivery{
		ID: "d2", Code: "DEL-2", NombrePersona: "Beto",
		Status: entity.DeliveryStatusEntregado, CreatedAt: now,
	}

	out, err := f.uc.Feed()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// Más reciente primero: la entrega pendiente antes que la alerta de stock.
	assert.Equal(t, "delivery", out.Items[0].Type)
	assert.Equal(t, "Entrega Ana esta pendiente", out.Items[0].Mensaje)
	assert.Equal(t, "stock", out.Items[1].Type)
	assert.Equal(t, "Stock bajo: Café (3/10)", out.Items[1].Mensaje)
}

func TestFeed_SinEstadosConfiguradosSoloStock(t *testing.T) {
	f := newAlertFixture()
	f.config.cfg = &entity.AlertConfig{ID: "cfg-1", StockThreshold: 10}

	require.NoError(t, f.alerts.UpsertActive(&entity.Alert{
		ID: "a1", ProductSKU: "ABC-001", Status: entity.AlertStatusActive,
	}))
	f.deliveries.byID["d1"] = &entity.Delivery{
		ID: "d1", NombrePersona: "Ana", Status: entity.DeliveryStatusPendiente,
	}

	out, err := f.uc.Feed()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "stock", out.Items[0].Type)
}

func TestAlertUpdateConfig_Parcial(t *testing.T) {
	f := newAlertFixture()

	threshold := 4
	out, err := f.uc.UpdateConfig(dto.UpdateAlertConfigRequest{StockThreshold: &threshold})
	require.NoError(t, err)
	assert.Equal(t, 4, out.StockThreshold)
	assert.Equal(t, entity.DefaultNotifyStatuses, out.NotifyStatuses)
}
