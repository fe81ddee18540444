// Package pdf genera el reporte de asistencia del personal en PDF.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la escuela │ Período + fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: días totales / días presentes / horas promedio     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Personal | Entrada | Salida | Horas | Notas  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	appattendance "github.com/jhoicas/tanpopo-api/internal/application/attendance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 219, Green: 142, Blue: 0} // amarillo diente de león
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 250, Green: 245, Blue: 230}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appattendance.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa attendance.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// AttendanceReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) AttendanceReport(data appattendance.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de asistencia", true).
		WithAuthor(data.SchoolName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(data.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin registros en el período.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(tableRows(data.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: escuela (izq) y período + emisión (der).
func headerRow(data appattendance.ReportData) core.Row {
	period := "Todo el historial"
	if data.StartDate != "" && data.EndDate != "" {
		period = data.StartDate + " a " + data.EndDate
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.SchoolName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de asistencia del personal", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+period, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Emitido: %s por %s",
				data.GeneratedAt.Format("02/01/2006 15:04"), nonEmpty(data.GeneratedBy, "-"),
			), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

// summaryRow: estadísticas del conjunto.
func summaryRow(data appattendance.ReportData) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return row.New(16).Add(
		cell("Días registrados", fmt.Sprintf("%d", data.Stats.TotalDays)),
		cell("Días completos", fmt.Sprintf("%d", data.Stats.PresentDays)),
		cell("Horas promedio", fmt.Sprintf("%.2f", data.Stats.AverageHours)),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Personal", 3, align.Left),
		h("Entrada", 1, align.Center),
		h("Salida", 1, align.Center),
		h("Horas", 1, align.Right),
		h("Notas", 4, align.Left),
	)
}

// tableRows: una fila por registro, con fondo alternado.
func tableRows(rows []appattendance.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		checkOut := "-"
		if r.CheckOutTime != nil {
			checkOut = r.CheckOutTime.Format("15:04")
		}
		who := nonEmpty(r.FullName, r.Username)
		if r.FullName != "" && r.Username != "" {
			who = fmt.Sprintf("%s (%s)", r.FullName, r.Username)
		}

		cell := props.Text{Size: 8, Top: 1, Left: 1, Right: 1}
		centered := cell
		centered.Align = align.Center
		right := cell
		right.Align = align.Right

		rw := row.New(7).Add(
			col.New(2).Add(text.New(r.WorkDate, cell)),
			col.New(3).Add(text.New(who, cell)),
			col.New(1).Add(text.New(r.CheckInTime.Format("15:04"), centered)),
			col.New(1).Add(text.New(checkOut, centered)),
			col.New(1).Add(text.New(fmt.Sprintf("%.2f", r.Hours), right)),
			col.New(4).Add(text.New(r.Notes, cell)),
		)
		if i%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rw)
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
