package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/application/usecase"
)

// DetallePedidoHandler maneja el recurso suelto /detalle_pedidos/ (protegido).
type DetallePedidoHandler struct {
	uc *usecase.DetallePedidoUseCase
}

// NewDetallePedidoHandler construye el handler.
func NewDetallePedidoHandler(uc *usecase.DetallePedidoUseCase) *DetallePedidoHandler {
	return &DetallePedidoHandler{uc: uc}
}

// Create crea una línea suelta contra un pedido existente.
func (h *DetallePedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PedidoID == "" || in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idPedido e idProducto son requeridos"})
	}
	out, err := h.uc.Create(GetUsername(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una línea con producto y pedido embebidos.
func (h *DetallePedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List devuelve todas las líneas.
func (h *DetallePedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una línea.
func (h *DetallePedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUsername(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una línea.
func (h *DetallePedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
