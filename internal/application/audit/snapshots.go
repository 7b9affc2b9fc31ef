package audit

import (
	"strconv"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// Snapshots planos campo → valor serializado. Las referencias a otras
// entidades se reducen a su identificador.

func fmtTime(t time.Time) string { return t.Format(time.RFC3339) }

// ProductSnapshot captura el estado persistido de un producto.
func ProductSnapshot(p *entity.Product) map[string]string {
	return map[string]string{
		"sku":           p.SKU,
		"name":          p.Name,
		"barcode":       p.Barcode,
		"price":         p.Price.String(),
		"cost_price":    p.CostPrice.String(),
		"quantity":      strconv.Itoa(p.Quantity),
		"reorder_level": strconv.Itoa(p.ReorderLevel),
		"branch_id":     p.BranchID,
		"is_active":     strconv.FormatBool(p.IsActive),
		"updated_at":    fmtTime(p.UpdatedAt),
	}
}

// BranchSnapshot captura el estado de una sucursal.
func BranchSnapshot(b *entity.Branch) map[string]string {
	return map[string]string{
		"name":     b.Name,
		"location": b.Location,
		"phone":    b.Phone,
		"email":    b.Email,
	}
}

// VendorSnapshot captura el estado de un proveedor.
func VendorSnapshot(v *entity.Vendor) map[string]string {
	return map[string]string{
		"name":           v.Name,
		"contact_person": v.ContactPerson,
		"email":          v.Email,
		"phone":          v.Phone,
		"gst_number":     v.GSTNumber,
	}
}

// SaleSnapshot captura el estado de una venta posteada.
func SaleSnapshot(s *entity.Sale) map[string]string {
	return map[string]string{
		"invoice_no":     s.InvoiceNo,
		"customer_name":  s.CustomerName,
		"branch_id":      s.BranchID,
		"subtotal":       s.Subtotal.String(),
		"discount":       s.Discount.String(),
		"total_amount":   s.TotalAmount.String(),
		"paid_amount":    s.PaidAmount.String(),
		"payment_method": s.PaymentMethod,
		"created_by":     s.CreatedBy,
		"created_at":     fmtTime(s.CreatedAt),
	}
}

// SaleItemSnapshot captura una línea de venta.
func SaleItemSnapshot(it *entity.SaleItem) map[string]string {
	return map[string]string{
		"sale_id":      it.SaleID,
		"product_id":   it.ProductID,
		"product_name": it.ProductName,
		"quantity":     strconv.Itoa(it.Quantity),
		"unit_price":   it.UnitPrice.String(),
		"total_price":  it.TotalPrice.String(),
	}
}

// PurchaseSnapshot captura el estado de una compra posteada.
func PurchaseSnapshot(p *entity.Purchase) map[string]string {
	return map[string]string{
		"invoice_no":     p.InvoiceNo,
		"vendor_id":      p.VendorID,
		"branch_id":      p.BranchID,
		"subtotal":       p.Subtotal.String(),
		"discount":       p.Discount.String(),
		"total_amount":   p.TotalAmount.String(),
		"paid_amount":    p.PaidAmount.String(),
		"payment_method": p.PaymentMethod,
		"created_by":     p.CreatedBy,
		"created_at":     fmtTime(p.CreatedAt),
	}
}

// PurchaseItemSnapshot captura una línea de compra.
func PurchaseItemSnapshot(it *entity.PurchaseItem) map[string]string {
	return map[string]string{
		"purchase_id":  it.PurchaseID,
		"product_id":   it.ProductID,
		"product_name": it.ProductName,
		"quantity":     strconv.Itoa(it.Quantity),
		"unit_cost":    it.UnitCost.String(),
		"total_price":  it.TotalPrice.String(),
	}
}

// MovementSnapshot captura un movimiento de stock.
func MovementSnapshot(m *entity.StockMovement) map[string]string {
	return map[string]string{
		"product_id":    m.ProductID,
		"product_name":  m.ProductName,
		"quantity":      strconv.Itoa(m.Quantity),
		"movement_type": m.MovementType,
		"branch_id":     m.BranchID,
		"reference":     m.Reference,
		"created_by":    m.CreatedBy,
	}
}

// LedgerSnapshot captura un asiento del libro.
func LedgerSnapshot(e *entity.LedgerEntry) map[string]string {
	return map[string]string{
		"date":             fmtTime(e.Date),
		"description":      e.Description,
		"transaction_type": e.TransactionType,
		"amount":           e.Amount.String(),
		"reference":        e.Reference,
		"branch_id":        e.BranchID,
		"created_by":       e.CreatedBy,
	}
}
