package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

// AlertHandler maneja alertas de stock, su configuración y el feed.
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "active (default) | resolved | dismissed | all"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Success      200     {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", entity.AlertStatusActive)
	if status == "all" {
		status = ""
	}
	page := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 20)}
	out, err := h.uc.List(status, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una alerta
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [patch]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetConfig godoc
// @Summary      Configuración de alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertConfigResponse
// @Router       /api/alerts/config [get]
func (h *AlertHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateConfig godoc
// @Summary      Actualizar configuración de alertas
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAlertConfigRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AlertConfigResponse
// @Router       /api/alerts/config [put]
func (h *AlertHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.UpdateAlertConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateConfig(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed unificado de notificaciones
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FeedResponse
// @Router       /api/alerts/feed [get]
func (h *AlertHandler) Feed(c *fiber.Ctx) error {
	out, err := h.uc.Feed()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
