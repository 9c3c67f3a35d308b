package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spncrkm/e-commerce-project/schemas"
	"github.com/spncrkm/e-commerce-project/services"
)

// CustomerController handles HTTP requests related to customers.
type CustomerController struct {
	customerService services.ICustomerService
}

// NewCustomerController creates a new CustomerController instance.
func NewCustomerController(svc services.ICustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// ListCustomers handles GET /customers.
func (c *CustomerController) ListCustomers(ctx *fiber.Ctx) error {
	customers, err := c.customerService.ListCustomers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(customers)
}

// CreateCustomer handles POST /customers.
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	payload := new(schemas.CustomerPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.customerService.CreateCustomer(payload)
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "New customer added successfully"})
}

// UpdateCustomer handles PUT /customers/:id.
func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}

	payload := new(schemas.CustomerPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.customerService.UpdateCustomer(id, payload)
	if errors.Is(err, services.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer details successfully updated"})
}

// DeleteCustomer handles DELETE /customers/:id.
func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}

	if err := c.customerService.DeleteCustomer(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer removed successfully!"})
}
