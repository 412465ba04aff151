// Package pdf genera el listado de managers en PDF (A4 horizontal).
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación + total de registros  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Email | Teléfono | Cargo | Salario | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: suma de salarios                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/manager-api/internal/application/manager"
	"github.com/jhoicas/manager-api/internal/domain/entity"
)

var _ manager.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// MarotoRosterGenerator implementa manager.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct {
	appName string
}

// NewMarotoRosterGenerator construye el generador; appName se usa como autor del documento.
func NewMarotoRosterGenerator(appName string) *MarotoRosterGenerator {
	return &MarotoRosterGenerator{appName: appName}
}

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(
	_ context.Context,
	managers []*entity.Manager,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Managers", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(len(managers), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(managers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(managers))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(total int, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Listado de managers", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d registros", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre", 3, align.Left),
		h("Email", 3, align.Left),
		h("Teléfono", 2, align.Left),
		h("Cargo", 2, align.Left),
		h("Salario", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

func tableRows(managers []*entity.Manager) []core.Row {
	result := make([]core.Row, 0, len(managers))
	for i, mg := range managers {
		cell := func(value string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		r := row.New(7).Add(
			cell(mg.Name, 3, align.Left),
			cell(mg.Email, 3, align.Left),
			cell(nonEmpty(mg.Phone, "—"), 2, align.Left),
			cell(mg.Designation, 2, align.Left),
			cell(formatSalary(mg.Salary), 1, align.Right),
			cell(statusLabel(mg.Status), 1, align.Center),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func totalsRow(managers []*entity.Manager) core.Row {
	sum := decimal.Zero
	for _, mg := range managers {
		if d, err := decimal.NewFromString(mg.Salary); err == nil {
			sum = sum.Add(d)
		}
	}
	return row.New(10).Add(
		col.New(10).Add(text.New("Total salarios", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(sum.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func formatSalary(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

func statusLabel(active bool) string {
	if active {
		return "Activo"
	}
	return "Inactivo"
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
