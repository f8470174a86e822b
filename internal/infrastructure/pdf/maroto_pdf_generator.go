// Package pdf genera el relatório de clientes en PDF con Maroto v2.
//
// Layout A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  Título + fecha de emisión          │  Filtros aplicados     │
//	│  ─────────────────────────────────────────────────────────── │
//	│  TABLA: Código | Nome | CPF/CNPJ | Cidade/UF | Telefone | ... │
//	│  ─────────────────────────────────────────────────────────── │
//	│  Total de registros                                          │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
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

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

var _ ports.CustomerReportGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const gridSize = 16

type column struct {
	label string
	size  int
	align align.Type
	value func(c *entity.Customer) string
}

var columns = []column{
	{"Código", 2, align.Left, func(c *entity.Customer) string { return c.Code }},
	{"Nome", 3, align.Left, func(c *entity.Customer) string { return c.Name }},
	{"CPF/CNPJ", 2, align.Left, func(c *entity.Customer) string { return brdoc.FormatTaxID(c.TaxID) }},
	{"Cidade/UF", 2, align.Left, cityState},
	{"Telefone", 2, align.Left, func(c *entity.Customer) string { return brdoc.FormatPhone(c.Phone) }},
	{"CEP", 1, align.Center, func(c *entity.Customer) string { return brdoc.FormatPostalCode(c.PostalCode.String()) }},
	{"Limite", 2, align.Right, func(c *entity.Customer) string { return brdoc.FormatBRL(c.CreditLimit) }},
	{"Validade", 2, align.Center, func(c *entity.Customer) string { return c.ExpiresAt.Format("02/01/2006") }},
}

// MarotoPDFGenerator implementa ports.CustomerReportGenerator.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// Generate arma el documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(report ports.CustomerReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Customers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report ports.CustomerReport, now time.Time) core.Row {
	return row.New(16).Add(
		col.New(10).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(filterSummary(report.Filter), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(customers []*entity.Customer) []core.Row {
	rows := make([]core.Row, 0, len(customers))
	for _, cust := range customers {
		cols := make([]core.Col, 0, len(columns))
		for _, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(c.value(cust), props.Text{
				Size: 7, Align: c.align, Top: 1,
			})))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

func totalRow(report ports.CustomerReport) core.Row {
	label := fmt.Sprintf("Total: %d cliente(s)", report.Total)
	if len(report.Customers) < report.Total {
		label += fmt.Sprintf(" (exibindo %d)", len(report.Customers))
	}
	return row.New(8).Add(col.New(gridSize).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
	})))
}

// filterSummary texto con los filtros activos, o "Sem filtros".
func filterSummary(f entity.CustomerFilter) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Código", f.Code)
	add("Nome", f.Name)
	add("Cidade", f.City)
	add("CEP", f.PostalCode)
	if len(parts) == 0 {
		return "Sem filtros"
	}
	return strings.Join(parts, "  |  ")
}

func cityState(c *entity.Customer) string {
	switch {
	case c.City == "":
		return c.State
	case c.State == "":
		return c.City
	default:
		return c.City + "/" + c.State
	}
}
