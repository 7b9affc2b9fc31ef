// Package posting contiene la aritmética pura del posteo de transacciones:
// totales derivados de líneas y deltas de stock por tipo de movimiento.
// Son funciones deterministas sin efectos para que los invariantes se
// puedan probar de forma aislada.
package posting

import "github.com/shopspring/decimal"

// LineTotal calcula el total de una línea: cantidad × precio unitario.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// RecomputeTotals deriva subtotal y total de la transacción desde los
// totales de línea: subtotal = Σ línea, total = subtotal − descuento.
func RecomputeTotals(lineTotals []decimal.Decimal, discount decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, lt := range lineTotals {
		subtotal = subtotal.Add(lt)
	}
	return subtotal, subtotal.Sub(discount)
}
