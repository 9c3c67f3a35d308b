package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spncrkm/e-commerce-project/schemas"
	"github.com/spncrkm/e-commerce-project/services"
)

// ProductController handles HTTP requests related to products.
type ProductController struct {
	productService services.IProductService
}

// NewProductController creates a new ProductController instance.
func NewProductController(svc services.IProductService) *ProductController {
	return &ProductController{productService: svc}
}

// ListProducts handles GET /products.
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	products, err := c.productService.ListProducts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}

// SearchProductsByName handles GET /products/by-name?name=.
func (c *ProductController) SearchProductsByName(ctx *fiber.Ctx) error {
	products, err := c.productService.SearchProductsByName(ctx.Query("name"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}

// CreateProduct handles POST /products.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	payload := new(schemas.ProductPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.productService.CreateProduct(payload)
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "New product successfully added!"})
}

// UpdateProduct handles PUT /products/:id.
func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	payload := new(schemas.ProductPayload)
	if err := ctx.BodyParser(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	verrs, err := c.productService.UpdateProduct(id, payload)
	if errors.Is(err, services.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found!"})
	}
	if verrs != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(verrs)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Product details successfully updated!"})
}

// DeleteProduct handles DELETE /products/:id.
func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := c.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found!"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Product successfully deleted!"})
}
