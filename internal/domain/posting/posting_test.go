package posting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/posting"
)

// ─────────────────────────────────────────────
// LineTotal y RecomputeTotals
// ─────────────────────────────────────────────

func TestLineTotal_CantidadPorPrecio(t *testing.T) {
	total := posting.LineTotal(3, decimal.NewFromFloat(1500.50))
	assert.True(t, total.Equal(decimal.NewFromFloat(4501.50)), "total de línea = cantidad × precio")
}

func TestLineTotal_CantidadUno(t *testing.T) {
	price := decimal.NewFromInt(999)
	assert.True(t, posting.LineTotal(1, price).Equal(price))
}

func TestRecomputeTotals_SubtotalEsSumaDeLineas(t *testing.T) {
	lines := []decimal.Decimal{
		decimal.NewFromInt(1000),
		decimal.NewFromInt(2500),
		decimal.NewFromFloat(499.99),
	}
	subtotal, total := posting.RecomputeTotals(lines, decimal.Zero)
	assert.True(t, subtotal.Equal(decimal.NewFromFloat(3999.99)))
	assert.True(t, total.Equal(subtotal), "sin descuento, total == subtotal")
}

func TestRecomputeTotals_DescuentoSoloAfectaTotal(t *testing.T) {
	lines := []decimal.Decimal{decimal.NewFromInt(5000)}
	subtotal, total := posting.RecomputeTotals(lines, decimal.NewFromInt(500))
	assert.True(t, subtotal.Equal(decimal.NewFromInt(5000)), "el descuento no toca el subtotal")
	assert.True(t, total.Equal(decimal.NewFromInt(4500)))
}

func TestRecomputeTotals_SinLineas(t *testing.T) {
	subtotal, total := posting.RecomputeTotals(nil, decimal.Zero)
	assert.True(t, subtotal.IsZero())
	assert.True(t, total.IsZero())
}

// ─────────────────────────────────────────────
// SignedDelta: regla de dirección por tipo
// ─────────────────────────────────────────────

func TestSignedDelta_TablaDeTipos(t *testing.T) {
	cases := []struct {
		name         string
		movementType string
		quantity     int
		want         int
	}{
		{"in suma", entity.MovementTypeIn, 5, 5},
		{"return suma", entity.MovementTypeReturn, 3, 3},
		{"out resta", entity.MovementTypeOut, 5, -5},
		{"damage resta", entity.MovementTypeDamage, 2, -2},
		{"adjustment positivo", entity.MovementTypeAdjustment, 7, 7},
		{"adjustment negativo", entity.MovementTypeAdjustment, -7, -7},
		{"in con magnitud negativa suma igual", entity.MovementTypeIn, -5, 5},
		{"out con magnitud negativa resta igual", entity.MovementTypeOut, -5, -5},
		{"tipo desconocido no mueve", "transfer", 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, posting.SignedDelta(tc.movementType, tc.quantity))
		})
	}
}

func TestFloorGuarded_SoloSalidas(t *testing.T) {
	assert.True(t, posting.FloorGuarded(entity.MovementTypeOut))
	assert.True(t, posting.FloorGuarded(entity.MovementTypeDamage))
	assert.False(t, posting.FloorGuarded(entity.MovementTypeIn))
	assert.False(t, posting.FloorGuarded(entity.MovementTypeReturn))
	assert.False(t, posting.FloorGuarded(entity.MovementTypeAdjustment), "adjustment es override administrativo, sin piso")
}

func TestValidMovementType(t *testing.T) {
	for _, mt := range []string{
		entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeReturn,
		entity.MovementTypeDamage, entity.MovementTypeAdjustment,
	} {
		assert.True(t, posting.ValidMovementType(mt), mt)
	}
	assert.False(t, posting.ValidMovementType("transfer"))
	assert.False(t, posting.ValidMovementType(""))
	assert.False(t, posting.ValidMovementType("IN"), "los tipos son case-sensitive")
}
