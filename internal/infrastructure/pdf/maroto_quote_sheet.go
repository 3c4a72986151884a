// Package pdf implementa la hoja de cotización de un RFQ en PDF (Maroto v2).
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa │ N° RFQ + Estado + Fecha tentativa          │
//	│  ──────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto │ Vendedor + propósito            │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: Parte | Cotizada | Cant | Unit$ | Unit₹ | Lead | Obs  │
//	│  ──────────────────────────────────────────────────────────  │
//	│  PIE: nota sobre campos enmascarados según el rol             │
//	└──────────────────────────────────────────────────────────────┘
//
// Recibe el DTO ya enmascarado; los campos monetarios llegan como texto
// (valor o "---") y se imprimen tal cual.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apprfq "github.com/tu-usuario/rfq-tracker/internal/application/rfq"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apprfq.QuoteSheetGenerator = (*MarotoQuoteSheetGenerator)(nil)

// MarotoQuoteSheetGenerator implementa rfq.QuoteSheetGenerator usando Maroto v2.
type MarotoQuoteSheetGenerator struct{}

// NewMarotoQuoteSheetGenerator construye el generador.
func NewMarotoQuoteSheetGenerator() *MarotoQuoteSheetGenerator { return &MarotoQuoteSheetGenerator{} }

// GenerateQuoteSheet genera el PDF y devuelve sus bytes.
func (g *MarotoQuoteSheetGenerator) GenerateQuoteSheet(_ context.Context, rfq *dto.RFQResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("RFQ "+rfq.RFQNo, true).
		WithAuthor(rfq.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rfq))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(rfq))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(rfq.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y N° RFQ + estado + fecha tentativa (der).
func headerRow(rfq *dto.RFQResponse) core.Row {
	tentative := "—"
	if rfq.TentativeDate != nil {
		tentative = rfq.TentativeDate.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(rfq.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Solicitud de cotización", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RFQ "+rfq.RFQNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+rfq.Status, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha tentativa: "+tentative, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y vendedor.
func customerRow(rfq *dto.RFQResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(rfq.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(rfq.CustomerEmail, "—"),
				nonEmpty(rfq.CustomerPhone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
			}),
			text.New(rfq.SalesPerson, props.Text{Size: 10, Top: 6, Align: align.Right}),
			text.New("Propósito: "+nonEmpty(rfq.Purpose, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Parte RFQ", 2, align.Left),
		h("Parte cotizada", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Unit $", 1, align.Right),
		h("Unit ₹", 1, align.Right),
		h("Flete", 1, align.Right),
		h("Margen", 1, align.Right),
		h("Reventa", 1, align.Right),
		h("Lead", 1, align.Center),
		h("Observaciones", 1, align.Left),
	)
}

// tableLineRows: una fila por línea de parte. Los montos llegan ya renderizados
// (valor o placeholder) desde la política de enmascaramiento.
func tableLineRows(items []dto.PartLineResponse) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(it.RFQPartNo, 2, align.Left),
			cell(it.QuotedPartNo, 2, align.Left),
			cell(fmt.Sprintf("%d", it.QuotedQty), 1, align.Center),
			cell(it.UnitPriceUSD, 1, align.Right),
			cell(it.UnitPriceINR, 1, align.Right),
			cell(it.Freight, 1, align.Right),
			cell(it.Margin, 1, align.Right),
			cell(it.Resale, 1, align.Right),
			cell(it.LeadTime, 1, align.Center),
			cell(it.Remarks, 1, align.Left),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Los montos marcados \"---\" están restringidos para el rol del usuario que generó este documento.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
