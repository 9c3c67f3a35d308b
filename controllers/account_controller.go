package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spncrkm/e-commerce-project/schemas"
	"github.com/spncrkm/e-commerce-project/services"
)

// AccountController handles HTTP requests related to customer accounts.
type AccountController struct {
	accountService services.IAccountService
}

// NewAccountController creates a new AccountController instance.
func NewAccountController(svc services.IAccountService) *AccountController {
	return &AccountController{accountService: svc}
}

// GetAccount handles GET /customers/account/:id.
func (c *AccountController) GetAccount(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account id"})
	}

	account, err := c.accountService.GetAccount(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(account)
}

// CreateAccount handles POST /customers/account/.
func (c *AccountController) CreateAccount(ctx *fiber.Ctx) error {
	payload := new(schemas.AccountPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.accountService.CreateAccount(payload)
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "New customer account added successfully"})
}

// UpdateAccount handles PUT /customers/account/:id.
func (c *AccountController) UpdateAccount(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account id"})
	}

	payload := new(schemas.AccountPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.accountService.UpdateAccount(id, payload)
	if errors.Is(err, services.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
	}
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer account successfully updated"})
}

// DeleteAccount handles DELETE /customers/account/:id.
func (c *AccountController) DeleteAccount(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account id"})
	}

	if err := c.accountService.DeleteAccount(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer account removed successfully"})
}
