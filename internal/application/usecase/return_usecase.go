package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

// ReturnUseCase casos de uso de devoluciones de marketplace.
type ReturnUseCase struct {
	repo repository.ReturnRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(repo repository.ReturnRepository) *ReturnUseCase {
	return &ReturnUseCase{repo: repo}
}

// Create registra una devolución.
func (uc *ReturnUseCase) Create(in dto.CreateReturnRequest, userID string) (*dto.ReturnResponse, error) {
	if in.MarketplaceOrderID == "" || in.Producto == "" || in.Motivo == "" {
		return nil, fmt.Errorf("%w: marketplaceOrderId, producto y motivo son obligatorios", domain.ErrInvalidInput)
	}
	if in.Cantidad <= 0 {
		return nil, fmt.Errorf("%w: cantidad debe ser > 0", domain.ErrInvalidInput)
	}
	estado := strings.ToLower(in.EstadoProducto)
	if estado != "" && !inList(estado, entity.ReturnProductStates) {
		return nil, fmt.Errorf("%w: estadoProducto debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.ReturnProductStates, ", "))
	}
	resultado := strings.ToLower(in.Resultado)
	if resultado != "" && !inList(resultado, entity.ReturnOutcomes) {
		return nil, fmt.Errorf("%w: resultado debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.ReturnOutcomes, ", "))
	}

	ret := &entity.Return{
		ID:                 uuid.New().String(),
		MarketplaceOrderID: in.MarketplaceOrderID,
		Producto:           in.Producto,
		SKU:                normalizeSKU(in.SKU),
		Cantidad:           in.Cantidad,
		Motivo:             in.Motivo,
		EstadoProducto:     estado,
		Resultado:          resultado,
		Comentarios:        in.Comentarios,
		CustomerEmail:      strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		FechaRecoleccion:   in.FechaRecoleccion,
		RecibidoPor:        userID,
	}
	if err := uc.repo.Create(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// Get obtiene una devolución por ID.
func (uc *ReturnUseCase) Get(id string) (*dto.ReturnResponse, error) {
	ret, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// Update edita una devolución (solo campos presentes).
func (uc *ReturnUseCase) Update(id string, in dto.UpdateReturnRequest) (*dto.ReturnResponse, error) {
	ret, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Cantidad != nil {
		if *in.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser > 0", domain.ErrInvalidInput)
		}
		ret.Cantidad = *in.Cantidad
	}
	if in.Motivo != nil {
		ret.Motivo = *in.Motivo
	}
	if in.EstadoProducto != nil {
		estado := strings.ToLower(*in.EstadoProducto)
		if !inList(estado, entity.ReturnProductStates) {
			return nil, fmt.Errorf("%w: estadoProducto debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.ReturnProductStates, ", "))
		}
		ret.EstadoProducto = estado
	}
	if in.Resultado != nil {
		resultado := strings.ToLower(*in.Resultado)
		if !inList(resultado, entity.ReturnOutcomes) {
			return nil, fmt.Errorf("%w: resultado debe ser: %s", domain.ErrInvalidInput, strings.Join(entity.ReturnOutcomes, ", "))
		}
		ret.Resultado = resultado
	}
	if in.Comentarios != nil {
		ret.Comentarios = *in.Comentarios
	}
	if in.CustomerEmail != nil {
		ret.CustomerEmail = strings.ToLower(strings.TrimSpace(*in.CustomerEmail))
	}
	if in.FechaRecoleccion != nil {
		ret.FechaRecoleccion = in.FechaRecoleccion
	}

	if err := uc.repo.Update(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// List lista devoluciones, más recientes primero.
func (uc *ReturnUseCase) List(page dto.PageRequest) (*dto.ReturnListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReturnResponse(r))
	}
	return &dto.ReturnListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page.Page, page.Limit, total),
	}, nil
}

func inList(s string, list []string) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}

func toReturnResponse(r *entity.Return) *dto.ReturnResponse {
	if r == nil {
		return nil
	}
	return &dto.ReturnResponse{
		ID:                 r.ID,
		MarketplaceOrderID: r.MarketplaceOrderID,
		Producto:           r.Producto,
		SKU:                r.SKU,
		Cantidad:           r.Cantidad,
		Motivo:             r.Motivo,
		EstadoProducto:     r.EstadoProducto,
		Resultado:          r.Resultado,
		Comentarios:        r.Comentarios,
		CustomerEmail:      r.CustomerEmail,
		FechaRecoleccion:   r.FechaRecoleccion,
		RecibidoPor:        r.RecibidoPor,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
