package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spncrkm/e-commerce-project/schemas"
	"github.com/spncrkm/e-commerce-project/services"
)

// OrderController handles HTTP requests related to orders and the
// order-product association.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// ListOrders handles GET /orders.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	orders, err := c.orderService.ListOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(orders)
}

// CreateOrder handles POST /orders.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	payload := new(schemas.OrderPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.orderService.CreateOrder(payload)
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "New order successfully added!"})
}

// UpdateOrder handles PUT /orders/:id.
func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	payload := new(schemas.OrderPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.orderService.UpdateOrder(id, payload)
	if errors.Is(err, services.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Order was successfully updated!"})
}

// DeleteOrder handles DELETE /orders/:id.
func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	if err := c.orderService.DeleteOrder(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Order removed successfully"})
}

// AttachProduct handles POST /orders/:id/products.
func (c *OrderController) AttachProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	payload := new(schemas.OrderProductPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.orderService.AttachProduct(id, payload)
	if errors.Is(err, services.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order or product not found"})
	}
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product added to order"})
}

// DetachProduct handles DELETE /orders/:id/products/:productID.
func (c *OrderController) DetachProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}
	productID, err := ctx.ParamsInt("productID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := c.orderService.DetachProduct(id, productID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Product removed from order"})
}
