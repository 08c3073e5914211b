package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

// DeliveryUseCase casos de uso CRUD para entregas de trazabilidad.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

// Create registra una entrega con código generado (DEL-...).
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest, userID string) (*dto.DeliveryResponse, error) {
	if in.NombrePersona == "" || in.NombreProductos == "" || in.Direccion == "" {
		return nil, fmt.Errorf("%w: nombrePersona, nombreProductos y direccion son obligatorios", domain.ErrInvalidInput)
	}
	if in.FechaEntregaEstimada.IsZero() {
		return nil, fmt.Errorf("%w: fechaEntregaEstimada es obligatoria", domain.ErrInvalidInput)
	}
	if in.Cantidad <= 0 {
		return nil, fmt.Errorf("%w: cantidad debe ser > 0", domain.ErrInvalidInput)
	}
	status := strings.ToLower(in.Status)
	if status == "" {
		status = entity.DeliveryStatusPendiente
	}
	if !entity.ValidDeliveryStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.DeliveryStatuses, ", "))
	}
	plataforma := strings.ToLower(in.Plataforma)
	if plataforma == "" {
		plataforma = "otro"
	}
	if !validDeliveryPlatform(plataforma) {
		return nil, fmt.Errorf("%w: plataforma debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.DeliveryPlatforms, ", "))
	}

	d := &entity.Delivery{
		ID:                   uuid.New().String(),
		Code:                 generateDeliveryCode(),
		NombrePersona:        in.NombrePersona,
		NombreProductos:      in.NombreProductos,
		Cantidad:             in.Cantidad,
		Status:               status,
		Direccion:            in.Direccion,
		FechaEntregaEstimada: in.FechaEntregaEstimada,
		Notas:                in.Notas,
		Plataforma:           plataforma,
		UserID:               userID,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// Get obtiene una entrega por code o ID.
func (uc *DeliveryUseCase) Get(identifier string) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.Find(strings.ToUpper(strings.TrimSpace(identifier)))
	if err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// Update edita una entrega (solo campos presentes).
func (uc *DeliveryUseCase) Update(identifier string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.Find(strings.ToUpper(strings.TrimSpace(identifier)))
	if err != nil {
		return nil, err
	}

	if in.NombrePersona != nil {
		d.NombrePersona = *in.NombrePersona
	}
	if in.NombreProductos != nil {
		d.NombreProductos = *in.NombreProductos
	}
	if in.Cantidad != nil {
		if *in.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser > 0", domain.ErrInvalidInput)
		}
		d.Cantidad = *in.Cantidad
	}
	if in.Status != nil {
		status := strings.ToLower(*in.Status)
		if !entity.ValidDeliveryStatus(status) {
			return nil, fmt.Errorf("%w: status debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.DeliveryStatuses, ", "))
		}
		d.Status = status
	}
	if in.Direccion != nil {
		d.Direccion = *in.Direccion
	}
	if in.FechaEntregaEstimada != nil {
		d.FechaEntregaEstimada = *in.FechaEntregaEstimada
	}
	if in.Notas != nil {
		d.Notas = *in.Notas
	}
	if in.Plataforma != nil {
		plataforma := strings.ToLower(*in.Plataforma)
		if !validDeliveryPlatform(plataforma) {
			return nil, fmt.Errorf("%w: plataforma debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.DeliveryPlatforms, ", "))
		}
		d.Plataforma = plataforma
	}

	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now()
	return toDeliveryResponse(d), nil
}

// Delete elimina una entrega por code o ID.
func (uc *DeliveryUseCase) Delete(identifier string) error {
	deleted, err := uc.repo.Delete(strings.ToUpper(strings.TrimSpace(identifier)))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List lista entregas filtrando opcionalmente por status.
func (uc *DeliveryUseCase) List(status string, page dto.PageRequest) (*dto.DeliveryListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(strings.ToLower(status), page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page.Page, page.Limit, total),
	}, nil
}

func validDeliveryPlatform(p string) bool {
	for _, v := range entity.DeliveryPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// generateDeliveryCode genera un código legible: DEL-<millis>-<4 alfanuméricos>.
func generateDeliveryCode() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = skuRandChars[rand.Intn(len(skuRandChars))]
	}
	return fmt.Sprintf("DEL-%d-%s", time.Now().UnixMilli(), suffix)
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:                   d.ID,
		Code:                 d.Code,
		NombrePersona:        d.NombrePersona,
		NombreProductos:      d.NombreProductos,
		Cantidad:             d.Cantidad,
		Status:               d.Status,
		Direccion:            d.Direccion,
		FechaEntregaEstimada: d.FechaEntregaEstimada,
		Notas:                d.Notas,
		Plataforma:           d.Plataforma,
		UserID:               d.UserID,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}
