package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/application/usecase"
)

// AsesorHandler maneja las peticiones HTTP para Asesor (protegido).
type AsesorHandler struct {
	uc *usecase.AsesorUseCase
}

// NewAsesorHandler construye el handler.
func NewAsesorHandler(uc *usecase.AsesorUseCase) *AsesorHandler {
	return &AsesorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asesor
// @Tags         asesores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAsesorRequest  true  "Datos del asesor"
// @Success      201   {object}  dto.AsesorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /asesores/ [post]
func (h *AsesorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAsesorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUsername(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un asesor por ID.
func (h *AsesorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List devuelve todos los asesores.
func (h *AsesorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un asesor.
func (h *AsesorHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateAsesorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUsername(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un asesor.
func (h *AsesorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
