package rendering

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/axon-report-cli/internal/domain"
)

// TableRenderer imprime o relatório como tabela alinhada no terminal
type TableRenderer struct {
	Out io.Writer
}

func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{Out: out}
}

func (r *TableRenderer) Render(rows []*domain.ReportRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(r.Out, "No data found.")
		return nil
	}

	headers := domain.ReportHeaders

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, row.Cells())
	}

	// Largura de cada coluna: máximo entre cabeçalho e células
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	separator := buildSeparator(widths)

	fmt.Fprintln(r.Out, separator)
	fmt.Fprintln(r.Out, buildLine(headers, widths))
	fmt.Fprintln(r.Out, separator)
	for _, row := range cells {
		fmt.Fprintln(r.Out, buildLine(row, widths))
	}
	fmt.Fprintln(r.Out, separator)

	fmt.Fprintf(r.Out, "\n%d rows\n", len(rows))

	return nil
}

func buildSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func buildLine(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
	}
	return "|" + strings.Join(parts, "|") + "|"
}
