package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
)

// DependenciaHandler maneja las peticiones HTTP para el recurso Dependencia.
type DependenciaHandler struct {
	uc *usecase.DependenciaUseCase
}

// NewDependenciaHandler construye el handler inyectando el caso de uso.
func NewDependenciaHandler(uc *usecase.DependenciaUseCase) *DependenciaHandler {
	return &DependenciaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear dependencia
// @Tags         dependencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDependenciaRequest  true  "Datos de la dependencia"
// @Success      201   {object}  dto.DependenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dependencias [post]
func (h *DependenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDependenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "dependencia con ese nombre ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener dependencia por ID
// @Tags         dependencias
// @Produce      json
// @Param        id   path  int  true  "ID de la dependencia"
// @Success      200  {object}  dto.DependenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dependencias/{id} [get]
func (h *DependenciaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dependencia no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar dependencias
// @Tags         dependencias
// @Produce      json
// @Param        busqueda  query  string  false  "Filtro por nombre o sigla (insensible a tildes)"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.DependenciaListResponse
// @Router       /api/dependencias [get]
func (h *DependenciaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), c.Query("busqueda"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar dependencia
// @Tags         dependencias
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la dependencia"
// @Param        body  body  dto.UpdateDependenciaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DependenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dependencias/{id} [put]
func (h *DependenciaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateDependenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dependencia no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dependencia no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dependencia
// @Tags         dependencias
// @Produce      json
// @Param        id   path  int  true  "ID de la dependencia"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dependencias/{id} [delete]
func (h *DependenciaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dependencia no encontrada"})
		case errors.Is(err, domain.ErrConflicto):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la dependencia está referenciada por usuarios o informes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}
