package handler

import (
	"time"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

type CheckoutRequest struct {
	Items []service.CartItem `json:"items"`
}

type ValidateStockRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Qty       int       `json:"qty"`
}

// Checkout processes a cart, all-or-nothing
// POST /api/v1/checkout
func (h *TransactionHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	result, err := h.service.Checkout(sessionFromCtx(c), req.Items)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 201, result)
}

// ValidateStock pre-checks availability of a single cart line
// POST /api/v1/checkout/validate
func (h *TransactionHandler) ValidateStock(c *fiber.Ctx) error {
	var req ValidateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	product, err := h.service.ValidateProductStock(sessionFromCtx(c), req.ProductID, req.Qty)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, fiber.Map{"product": product, "available": product.Stock})
}

// GetTransactions returns the sale history (owner only)
// GET /api/v1/transactions?start_date=2006-01-02&end_date=2006-01-02&limit=
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	filter := service.TransactionFilter{Limit: c.QueryInt("limit")}

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid start_date, use YYYY-MM-DD"})
		}
		filter.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid end_date, use YYYY-MM-DD"})
		}
		filter.EndDate = &t
	}

	transactions, err := h.service.GetTransactions(sessionFromCtx(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, transactions)
}

// GetTodayStats returns today's sale count and revenue (owner only)
// GET /api/v1/transactions/stats/today
func (h *TransactionHandler) GetTodayStats(c *fiber.Ctx) error {
	stats, err := h.service.GetTodayStats(sessionFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, 200, stats)
}
