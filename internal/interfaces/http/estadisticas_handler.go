package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
)

// EstadisticasHandler expone los agregados de auditoría.
type EstadisticasHandler struct {
	uc *usecase.EstadisticasUseCase
}

// NewEstadisticasHandler construye el handler inyectando el caso de uso.
func NewEstadisticasHandler(uc *usecase.EstadisticasUseCase) *EstadisticasHandler {
	return &EstadisticasHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen de informes por dependencia
// @Description  Totales, validados y porcentaje de avance, opcionalmente por periodo.
// @Tags         estadisticas
// @Produce      json
// @Param        periodo  query  string  false  "Periodo, ej. 2024-1"
// @Success      200      {object}  dto.EstadisticasResponse
// @Router       /api/estadisticas [get]
func (h *EstadisticasHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context(), c.Query("periodo"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Hallazgos godoc
// @Summary      Conteo de hallazgos por numeral ISO
// @Tags         estadisticas
// @Produce      json
// @Param        periodo  query  string  false  "Periodo, ej. 2024-1"
// @Success      200      {object}  dto.HallazgosAgregadosResponse
// @Router       /api/estadisticas/hallazgos [get]
func (h *EstadisticasHandler) Hallazgos(c *fiber.Ctx) error {
	out, err := h.uc.Hallazgos(c.Context(), c.Query("periodo"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
