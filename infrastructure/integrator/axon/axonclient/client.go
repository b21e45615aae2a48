package axonclient

import (
	"net/http"

	axondomain "github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/domain"
	"github.com/vfg2006/axon-report-cli/internal/config"
	"github.com/vfg2006/axon-report-cli/internal/domain"
)

const userAgent = "AxonReportFetcher/1.0"

type Client interface {
	GetAdvertiserReport(filters *domain.ReportFilters) ([]axondomain.ReportEntry, error)
}

type AxonClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &AxonClient{
		Cfg: cfg,
		// Timeout explícito para limitar o pior caso de espera na API
		HTTPClient: &http.Client{Timeout: cfg.Axon.Timeout},
	}
	return client
}
