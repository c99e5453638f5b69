package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// InformeHandler maneja las peticiones HTTP para informes de auditoría.
type InformeHandler struct {
	uc *usecase.InformeUseCase
}

// NewInformeHandler construye el handler inyectando el caso de uso.
func NewInformeHandler(uc *usecase.InformeUseCase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear informe de auditoría
// @Tags         informes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInformeRequest  true  "Datos del informe"
// @Success      201   {object}  dto.InformeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/informes [post]
func (h *InformeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInformeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Validación de presencia antes de cualquier escritura.
	if in.UsuarioID == "" || in.DependenciaID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario_id y dependencia_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidacion):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrConflicto):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "usuario o dependencia referenciada no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener informe por ID
// @Tags         informes
// @Produce      json
// @Param        id   path  int  true  "ID del informe"
// @Success      200  {object}  dto.InformeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/informes/{id} [get]
func (h *InformeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar informes
// @Description  Filtra por usuario, dependencia y periodo.
// @Tags         informes
// @Produce      json
// @Param        usuario_id      query  string  false  "ID del auditor"
// @Param        dependencia_id  query  int     false  "ID de la dependencia"
// @Param        periodo         query  string  false  "Periodo, ej. 2024-1"
// @Param        limit           query  int     false  "Límite"  default(20)
// @Param        offset          query  int     false  "Offset"  default(0)
// @Success      200             {object}  dto.InformeListResponse
// @Router       /api/informes [get]
func (h *InformeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	filtro := repository.InformeFiltro{
		UsuarioID:     c.Query("usuario_id"),
		DependenciaID: c.QueryInt("dependencia_id", 0),
		Periodo:       c.Query("periodo"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	}
	out, err := h.uc.List(c.Context(), filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar informe
// @Tags         informes
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del informe"
// @Param        body  body  dto.UpdateInformeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InformeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/informes/{id} [put]
func (h *InformeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateInformeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar informe
// @Tags         informes
// @Produce      json
// @Param        id   path  int  true  "ID del informe"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/informes/{id} [delete]
func (h *InformeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no encontrado"})
		case errors.Is(err, domain.ErrConflicto):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el informe tiene hallazgos o evaluaciones asociadas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Periodos godoc
// @Summary      Listar periodos con informes registrados
// @Tags         informes
// @Produce      json
// @Success      200  {object}  dto.PeriodosResponse
// @Router       /api/periodos [get]
func (h *InformeHandler) Periodos(c *fiber.Ctx) error {
	out, err := h.uc.Periodos(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
