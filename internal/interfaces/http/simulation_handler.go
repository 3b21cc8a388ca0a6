package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	"github.com/jhoicas/Simulacion-api/internal/domain"
)

// SimulationHandler maneja las corridas de simulación y sus exportaciones.
type SimulationHandler struct {
	newsvendor *appsim.NewsvendorUseCase
	inventory  *appsim.InventoryUseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(newsvendor *appsim.NewsvendorUseCase, inventory *appsim.InventoryUseCase) *SimulationHandler {
	return &SimulationHandler{newsvendor: newsvendor, inventory: inventory}
}

// Defaults godoc
// @Summary      Valores por defecto de los simuladores
// @Description  Configuración base de ambos modelos, opciones de producción Q, rango de muestras y formatos de exportación.
// @Tags         simulations
// @Produce      json
// @Success      200  {object}  dto.DefaultsResponse
// @Router       /api/simulations/defaults [get]
func (h *SimulationHandler) Defaults(c *fiber.Ctx) error {
	return c.JSON(appsim.BuildDefaults(h.newsvendor, h.inventory))
}

// RunNewsvendor godoc
// @Summary      Simular producción (vendedor de periódicos)
// @Description  Monte Carlo de N escenarios de demanda normal. Los campos omitidos toman el valor por defecto.
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.NewsvendorRequest  false  "Configuración parcial"
// @Success      200   {object}  dto.NewsvendorRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/simulations/newsvendor [post]
func (h *SimulationHandler) RunNewsvendor(c *fiber.Ctx) error {
	var in dto.NewsvendorRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.newsvendor.Run(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ExportNewsvendor godoc
// @Summary      Exportar corrida de producción
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format  query     string                 false  "csv | xlsx | pdf"
// @Param        body    body      dto.NewsvendorRequest  false  "Configuración parcial"
// @Success      200     {file}    file
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/simulations/newsvendor/export [post]
func (h *SimulationHandler) ExportNewsvendor(c *fiber.Ctx) error {
	var in dto.NewsvendorRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	file, err := h.newsvendor.Export(c.Context(), in, c.Query("format", "csv"))
	if err != nil {
		return errorResponse(c, err)
	}
	return sendFile(c, file)
}

// RunInventory godoc
// @Summary      Simular inventario con revisión periódica
// @Description  Demanda exponencial diaria; cada R días se repone hasta la capacidad. Sin semilla se genera una y se devuelve.
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InventoryRequest  false  "Configuración parcial"
// @Success      200   {object}  dto.InventoryRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/simulations/inventory [post]
func (h *SimulationHandler) RunInventory(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.inventory.Run(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ExportInventory godoc
// @Summary      Exportar corrida de inventario
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format  query     string                false  "csv | xlsx | pdf"
// @Param        body    body      dto.InventoryRequest  false  "Configuración parcial"
// @Success      200     {file}    file
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/simulations/inventory/export [post]
func (h *SimulationHandler) ExportInventory(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	file, err := h.inventory.Export(c.Context(), in, c.Query("format", "csv"))
	if err != nil {
		return errorResponse(c, err)
	}
	return sendFile(c, file)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// parseBody acepta cuerpo vacío: todos los campos toman el valor por defecto.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func sendFile(c *fiber.Ctx, file *appsim.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Data)
}
