package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/posting"
)

// TransactionHandler maneja el posteo y consulta de ventas y compras.
// Ambos caminos convergen en el mismo motor de posteo; el handler solo
// traduce la petición al Input del motor.
type TransactionHandler struct {
	uc *posting.PostTransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *posting.PostTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// PostSale godoc
// @Summary      Postear una venta
// @Description  Registra la venta completa de forma atómica: cabecera,
//
//	líneas, movimientos de stock (out) y asiento del libro (credit).
//	Si algún producto no tiene stock suficiente no se persiste nada.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostSaleRequest  true  "invoice_no único, items con product_id o product_name"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *TransactionHandler) PostSale(c *fiber.Ctx) error {
	var in dto.PostSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := posting.Actor{UserID: GetUserID(c), IPAddress: c.IP()}
	resp, err := h.uc.Post(c.Context(), actor, posting.KindSale, posting.Input{
		InvoiceNo:     in.InvoiceNo,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		BranchID:      in.BranchID,
		Discount:      in.Discount,
		PaidAmount:    in.PaidAmount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Items:         in.Items,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PostPurchase godoc
// @Summary      Postear una compra
// @Description  Registra la compra completa de forma atómica: cabecera,
//
//	líneas, movimientos de stock (in) y asiento del libro (debit).
//
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostPurchaseRequest  true  "invoice_no único, vendor_id, items"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *TransactionHandler) PostPurchase(c *fiber.Ctx) error {
	var in dto.PostPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := posting.Actor{UserID: GetUserID(c), IPAddress: c.IP()}
	resp, err := h.uc.Post(c.Context(), actor, posting.KindPurchase, posting.Input{
		InvoiceNo:     in.InvoiceNo,
		VendorID:      in.VendorID,
		BranchID:      in.BranchID,
		Discount:      in.Discount,
		PaidAmount:    in.PaidAmount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Items:         in.Items,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSale godoc
// @Summary      Obtener una venta con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *TransactionHandler) GetSale(c *fiber.Ctx) error {
	resp, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// GetPurchase godoc
// @Summary      Obtener una compra con sus líneas
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *TransactionHandler) GetPurchase(c *fiber.Ctx) error {
	resp, err := h.uc.GetPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Param        limit      query  int     false  "Máximo de resultados (default 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/sales [get]
func (h *TransactionHandler) ListSales(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListSales(c.Context(), c.Query("branch_id"), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Filtrar por sucursal"
// @Param        limit      query  int     false  "Máximo de resultados (default 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/purchases [get]
func (h *TransactionHandler) ListPurchases(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListPurchases(c.Context(), c.Query("branch_id"), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}
