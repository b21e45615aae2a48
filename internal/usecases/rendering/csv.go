package rendering

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/axon-report-cli/internal/domain"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

// CSVExporter grava o relatório em um arquivo CSV.
// O documento inteiro é montado em memória e gravado de uma só vez,
// para nunca deixar um arquivo parcialmente escrito em caso de falha.
type CSVExporter struct {
	Path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

func (e *CSVExporter) Render(rows []*domain.ReportRow) error {
	var buffer bytes.Buffer

	writer := csv.NewWriter(&buffer)

	if err := writer.Write(domain.ReportHeaders); err != nil {
		return clierrors.Wrap(err, clierrors.ErrOutputWrite, "falha ao montar o CSV")
	}

	for _, row := range rows {
		record := row.Cells()
		// No CSV o gasto vai com o valor bruto, sem formatação de exibição
		record[len(record)-1] = row.Spend.String()

		if err := writer.Write(record); err != nil {
			return clierrors.Wrap(err, clierrors.ErrOutputWrite, "falha ao montar o CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return clierrors.Wrap(err, clierrors.ErrOutputWrite, "falha ao montar o CSV")
	}

	if err := os.WriteFile(e.Path, buffer.Bytes(), 0o644); err != nil {
		return clierrors.Wrap(err, clierrors.ErrOutputWrite, "falha ao gravar %q", e.Path)
	}

	logrus.WithFields(logrus.Fields{
		"rows": len(rows),
		"path": e.Path,
	}).Info("report: exported rows to CSV")

	return nil
}
