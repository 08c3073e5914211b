package alerting

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

// DefaultStockThreshold umbral informativo inicial de la configuración.
const DefaultStockThreshold = 10

// ConfigService administra el documento único de configuración de alertas.
// La configuración se crea de forma perezosa en la primera lectura.
type ConfigService struct {
	repo         repository.AlertConfigRepository
	defaultEmail string
}

// NewConfigService construye el servicio. defaultEmail es el destinatario que
// siempre queda en la lista de notificación (vacío = sin destinatario fijo).
func NewConfigService(repo repository.AlertConfigRepository, defaultEmail string) *ConfigService {
	return &ConfigService{repo: repo, defaultEmail: strings.ToLower(strings.TrimSpace(defaultEmail))}
}

// Ensure devuelve la configuración vigente, creándola con los valores por
// defecto si todavía no existe.
func (s *ConfigService) Ensure() (*entity.AlertConfig, error) {
	cfg, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	cfg = &entity.AlertConfig{
		ID:              uuid.New().String(),
		StockThreshold:  DefaultStockThreshold,
		NotifyStatuses:  append([]string(nil), entity.DefaultNotifyStatuses...),
		EmailRecipients: s.NormalizeRecipients(nil),
	}
	if err := s.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Update aplica los campos presentes de la petición y persiste. Estados de
// notificación desconocidos se descartan en silencio.
func (s *ConfigService) Update(in dto.UpdateAlertConfigRequest) (*entity.AlertConfig, error) {
	cfg, err := s.Ensure()
	if err != nil {
		return nil, err
	}
	if in.StockThreshold != nil && *in.StockThreshold > 0 {
		cfg.StockThreshold = *in.StockThreshold
	}
	if in.NotifyStatuses != nil {
		var statuses []string
		for _, st := range in.NotifyStatuses {
			if entity.ValidDeliveryStatus(strings.ToLower(strings.TrimSpace(st))) {
				statuses = append(statuses, strings.ToLower(strings.TrimSpace(st)))
			}
		}
		cfg.NotifyStatuses = statuses
	}
	if in.EmailRecipients != nil {
		cfg.EmailRecipients = s.NormalizeRecipients(in.EmailRecipients)
	}
	if err := s.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Recipients devuelve la lista vigente de destinatarios de correo.
func (s *ConfigService) Recipients() ([]string, error) {
	cfg, err := s.Ensure()
	if err != nil {
		return nil, err
	}
	return cfg.EmailRecipients, nil
}

// NormalizeRecipients lleva la lista a minúsculas, descarta vacíos y repetidos,
// y garantiza que el destinatario por defecto siempre esté presente.
func (s *ConfigService) NormalizeRecipients(list []string) []string {
	seen := make(map[string]bool, len(list)+1)
	var out []string
	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		out = append(out, email)
	}
	add(s.defaultEmail)
	for _, e := range list {
		add(e)
	}
	return out
}
