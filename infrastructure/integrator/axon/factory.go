package axon

import (
	"time"

	axondomain "github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/domain"
	"github.com/vfg2006/axon-report-cli/internal/domain"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

// FactoryReportRow converte uma entrada bruta da API em uma linha do relatório.
// Campos obrigatórios ausentes resultam em erro nomeando o campo e a posição.
func FactoryReportRow(entry *axondomain.ReportEntry, index int) (*domain.ReportRow, error) {
	missing := ""

	switch {
	case entry.Day == "":
		missing = "day"
	case entry.Campaign == "":
		missing = "campaign"
	case entry.CampaignIDExternal == "":
		missing = "campaign_id_external"
	case entry.Country == "":
		missing = "country"
	case entry.Cost == nil:
		missing = "cost"
	}

	if missing != "" {
		return nil, clierrors.New(clierrors.ErrMalformedResponse,
			"campo obrigatório %q ausente na entrada %d do relatório", missing, index)
	}

	date, err := time.Parse(time.DateOnly, entry.Day)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.ErrMalformedResponse,
			"campo \"day\" inválido na entrada %d do relatório: %q", index, entry.Day)
	}

	return &domain.ReportRow{
		Date:         date,
		CampaignName: entry.Campaign,
		CampaignID:   entry.CampaignIDExternal.String(),
		Country:      entry.Country,
		Spend:        *entry.Cost,
	}, nil
}
