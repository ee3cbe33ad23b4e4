package handler

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// StockMutationRequest covers add and reduce; qty is validated in the service.
type StockMutationRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Qty       int       `json:"qty"`
	Notes     string    `json:"notes"`
}

type StockAdjustRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	NewStock  int       `json:"new_stock"`
	Notes     string    `json:"notes"`
}

// GetLowStock returns active products with stock <= min_stock
// GET /api/v1/stock/low
func (h *StockHandler) GetLowStock(c *fiber.Ctx) error {
	products, err := h.service.GetLowStockProducts(sessionFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, products)
}

// GetStockLogs returns the audit trail, newest first
// GET /api/v1/stock/logs?product_id=&limit=
func (h *StockHandler) GetStockLogs(c *fiber.Ctx) error {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid product ID"})
		}
		productID = &id
	}

	logs, err := h.service.GetStockLogs(sessionFromCtx(c), productID, c.QueryInt("limit"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, logs)
}

// AddStock increases a product's stock
// POST /api/v1/stock/add
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var req StockMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	result, err := h.service.AddStock(sessionFromCtx(c), req.ProductID, req.Qty, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, result)
}

// ReduceStock decreases a product's stock
// POST /api/v1/stock/reduce
func (h *StockHandler) ReduceStock(c *fiber.Ctx) error {
	var req StockMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	result, err := h.service.ReduceStock(sessionFromCtx(c), req.ProductID, req.Qty, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, result)
}

// AdjustStock sets a product's stock to an absolute value
// POST /api/v1/stock/adjust
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var req StockAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	result, err := h.service.AdjustStock(sessionFromCtx(c), req.ProductID, req.NewStock, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, result)
}
