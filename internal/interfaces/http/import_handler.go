package http

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/application/usecase"
	"github.com/ecolvin/tracelink-api/internal/domain"
)

// maxImportSize tamaño máximo del archivo de importación (10 MB).
const maxImportSize = 10 << 20

var allowedImportMIMEs = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
	"application/vnd.ms-excel": true, // .xls
	"application/octet-stream": true, // navegadores viejos
}

// ImportHandler maneja la importación masiva desde Excel y su historial.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Create godoc
// @Summary      Importar productos o paquetes desde Excel
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Archivo .xlsx o .xls (máx. 10 MB)"
// @Param        type  formData  string  false  "products (default) | packages"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/imports [post]
func (h *ImportHandler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "No se recibió archivo"})
	}
	if file.Size > maxImportSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "El archivo supera el máximo de 10MB"})
	}
	if !validImportFile(file.Filename, file.Header.Get("Content-Type")) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Solo se aceptan archivos Excel (.xlsx, .xls)"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "No se pudo leer el archivo"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "No se pudo leer el archivo"})
	}

	importType := strings.ToLower(c.FormValue("type"))
	out, err := h.uc.Import(file.Filename, importType, data, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":     false,
			"error":  "Error procesando archivo",
			"detail": err.Error(),
		})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de importaciones
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.ImportListResponse
// @Router       /api/imports [get]
func (h *ImportHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 20)}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una importación
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la importación"
// @Success      200  {object}  dto.ImportLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imports/{id} [get]
func (h *ImportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// validImportFile acepta por extensión o por MIME declarado; el contenido real
// lo valida el parser al abrir el libro.
func validImportFile(name, mime string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return allowedImportMIMEs[strings.ToLower(strings.TrimSpace(strings.Split(mime, ";")[0]))]
}
