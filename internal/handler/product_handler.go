package handler

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts returns all active products
// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(sessionFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, products)
}

// GetProduct returns a single active product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(sessionFromCtx(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, product)
}

// CreateProduct handles product creation (owner only)
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(sessionFromCtx(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, product)
}

// UpdateProduct handles product update (owner only)
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
	}

	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(sessionFromCtx(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, product)
}

// DeleteProduct soft-deletes a product (owner only)
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(sessionFromCtx(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}
