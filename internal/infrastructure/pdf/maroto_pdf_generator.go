// Package pdf implementa la generación del reporte PDF del libro contable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal  │  Período + Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Tipo | Referencia | Monto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Créditos / Débitos / Balance                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/reports"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCredit  = &props.Color{Red: 0, Green: 110, Blue: 50}
	colorDebit   = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.LedgerPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.LedgerPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF del libro y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(branchName string, from, to *time.Time, entries []*entity.LedgerEntry) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Libro Contable", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(branchName, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableEntryRows(entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(entries))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: sucursal (izq), período y fecha de emisión (der).
func headerRow(branchName string, from, to *time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("LIBRO CONTABLE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(branchName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodLabel(from, to), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de asientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Referencia", 2, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tableEntryRows: una fila por asiento; créditos en verde, débitos en rojo.
func tableEntryRows(entries []*entity.LedgerEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		amountColor := colorCredit
		label := "CR"
		if e.TransactionType == entity.TransactionTypeDebit {
			amountColor = colorDebit
			label = "DB"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				label,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: amountColor},
			)),
			col.New(2).Add(text.New(
				e.Reference,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(e.Amount.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}

// totalsRow: créditos, débitos y balance (créditos - débitos).
func totalsRow(entries []*entity.LedgerEntry) core.Row {
	credits, debits := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.TransactionType == entity.TransactionTypeCredit {
			credits = credits.Add(e.Amount)
		} else {
			debits = debits.Add(e.Amount)
		}
	}
	balance := credits.Sub(debits)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Créditos:"),
			label("Débitos:"),
			grandLabel("BALANCE:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(credits.StringFixed(2)), colorCredit),
			value("$"+formatMoney(debits.StringFixed(2)), colorDebit),
			grandValue("$"+formatMoney(balance.StringFixed(2))),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(from, to *time.Time) string {
	f, t := "inicio", "hoy"
	if from != nil {
		f = from.Format("02/01/2006")
	}
	if to != nil {
		t = to.Format("02/01/2006")
	}
	return f + " – " + t
}

// formatMoney inserta puntos de miles en la parte entera de un string
// numérico con decimales separados por punto.
// Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	intPart, decPart := s, ""
	for i, c := range s {
		if c == '.' {
			intPart, decPart = s[:i], s[i+1:]
			break
		}
	}
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf)
	if decPart != "" {
		out += "," + decPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
