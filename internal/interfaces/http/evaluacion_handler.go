package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
)

// EvaluacionHandler maneja las evaluaciones de auditores.
type EvaluacionHandler struct {
	uc *usecase.EvaluacionUseCase
}

// NewEvaluacionHandler construye el handler inyectando el caso de uso.
func NewEvaluacionHandler(uc *usecase.EvaluacionUseCase) *EvaluacionHandler {
	return &EvaluacionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar evaluación de un auditor
// @Tags         evaluaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEvaluacionRequest  true  "Criterios de evaluación"
// @Success      201   {object}  dto.EvaluacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/evaluaciones [post]
func (h *EvaluacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEvaluacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Validación de presencia antes de cualquier escritura.
	if in.UsuarioID == "" || in.InformeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario_id e informe_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidacion):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrConflicto):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "informe o auditor referenciado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar evaluaciones
// @Tags         evaluaciones
// @Produce      json
// @Param        informe_id  query  int  false  "Filtrar por informe"
// @Success      200         {object}  dto.EvaluacionListResponse
// @Router       /api/evaluaciones [get]
func (h *EvaluacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("informe_id", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CorregirFecha godoc
// @Summary      Corregir la fecha de una evaluación
// @Description  Normaliza la fecha recibida a YYYY-MM-DD antes de guardarla.
// @Tags         evaluaciones
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la evaluación"
// @Param        body  body  dto.CorregirFechaRequest  true  "Nueva fecha"
// @Success      200   {object}  dto.EvaluacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/evaluaciones/{id}/fecha [put]
func (h *EvaluacionHandler) CorregirFecha(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.CorregirFechaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CorregirFecha(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidacion):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evaluación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evaluación no encontrada"})
	}
	return c.JSON(out)
}
