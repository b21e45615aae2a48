package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilters define o intervalo de datas do relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ReportRow representa uma linha do relatório de anunciante:
// o gasto de uma campanha em um país em uma data.
type ReportRow struct {
	Date         time.Time
	CampaignName string
	CampaignID   string
	Country      string
	Spend        decimal.Decimal
}

// Cabeçalho fixo compartilhado pela tabela e pelo CSV
var ReportHeaders = []string{"Date", "campaign_name", "campaign_id", "country", "spend"}

// Cells retorna as células da linha na ordem do cabeçalho.
// O gasto é formatado com duas casas decimais para exibição.
func (r *ReportRow) Cells() []string {
	return []string{
		r.Date.Format(time.DateOnly),
		r.CampaignName,
		r.CampaignID,
		r.Country,
		r.Spend.StringFixed(2),
	}
}
