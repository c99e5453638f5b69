package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
)

// HallazgoHandler maneja fortalezas, oportunidades de mejora y no conformidades.
// Cada ruta fija el tipo mediante un closure, el caso de uso valida el resto.
type HallazgoHandler struct {
	uc *usecase.HallazgoUseCase
}

// NewHallazgoHandler construye el handler inyectando el caso de uso.
func NewHallazgoHandler(uc *usecase.HallazgoUseCase) *HallazgoHandler {
	return &HallazgoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar hallazgo en un informe
// @Tags         hallazgos
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del informe"
// @Param        body  body  dto.CreateHallazgoRequest  true  "Numeral ISO y campo variante (razon/proposito/evidencia)"
// @Success      201   {object}  dto.HallazgoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/informes/{id}/fortalezas [post]
func (h *HallazgoHandler) Create(tipo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		informeID, err := c.ParamsInt("id")
		if err != nil || informeID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de informe inválido"})
		}
		var in dto.CreateHallazgoRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		// Validación de presencia antes de cualquier escritura.
		if in.Norma == "" || in.Capitulo == "" || in.Numeral == "" || in.Descripcion == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "norma, capitulo, numeral y descripcion son requeridos"})
		}
		out, err := h.uc.Create(c.Context(), tipo, informeID, in)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidacion):
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
			case errors.Is(err, domain.ErrNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListByInforme godoc
// @Summary      Listar hallazgos de un informe
// @Tags         hallazgos
// @Produce      json
// @Param        id   path  int  true  "ID del informe"
// @Success      200  {object}  dto.HallazgoListResponse
// @Router       /api/informes/{id}/fortalezas [get]
func (h *HallazgoHandler) ListByInforme(tipo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		informeID, err := c.ParamsInt("id")
		if err != nil || informeID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de informe inválido"})
		}
		out, err := h.uc.ListByInforme(c.Context(), tipo, informeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
}

// Update godoc
// @Summary      Actualizar hallazgo
// @Tags         hallazgos
// @Accept       json
// @Produce      json
// @Param        hallazgoId  path  int                        true  "ID del hallazgo"
// @Param        body        body  dto.UpdateHallazgoRequest  true  "Campos a actualizar"
// @Success      200         {object}  dto.HallazgoResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/informes/{id}/fortalezas/{hallazgoId} [put]
func (h *HallazgoHandler) Update(tipo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("hallazgoId")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de hallazgo inválido"})
		}
		var in dto.UpdateHallazgoRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		out, err := h.uc.Update(c.Context(), tipo, id, in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hallazgo no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if out == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hallazgo no encontrado"})
		}
		return c.JSON(out)
	}
}

// Delete godoc
// @Summary      Eliminar hallazgo
// @Tags         hallazgos
// @Produce      json
// @Param        hallazgoId  path  int  true  "ID del hallazgo"
// @Success      200         {object}  map[string]bool
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/informes/{id}/fortalezas/{hallazgoId} [delete]
func (h *HallazgoHandler) Delete(tipo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("hallazgoId")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de hallazgo inválido"})
		}
		if err := h.uc.Delete(c.Context(), tipo, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "hallazgo no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
