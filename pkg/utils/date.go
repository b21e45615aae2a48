package utils

import (
	"time"

	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

// NowLiteral é o valor aceito nos argumentos de data para a data corrente
const NowLiteral = "now"

// ResolveDate converte um argumento de data em uma data concreta.
// Aceita o literal "now" (data local no momento da invocação) ou uma
// data no formato YYYY-MM-DD.
func ResolveDate(dateStr string) (*time.Time, error) {
	if dateStr == NowLiteral {
		now := time.Now()
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		return &date, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.ErrInvalidDate,
			"data inválida: %q (formato esperado: YYYY-MM-DD ou %q)", dateStr, NowLiteral)
	}

	return &date, nil
}
