package axon

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/axonclient"
	"github.com/vfg2006/axon-report-cli/internal/config"
	"github.com/vfg2006/axon-report-cli/internal/domain"
)

// ReportIntegrator define a interface para obter linhas do relatório da Axon
type ReportIntegrator interface {
	// GetReportRows obtém as linhas do relatório de anunciante para o intervalo informado
	GetReportRows(filters *domain.ReportFilters) ([]*domain.ReportRow, error)
}

type AxonIntegrator struct {
	cfg    *config.Config
	Client axonclient.Client
}

func New(cfg *config.Config, client axonclient.Client) *AxonIntegrator {
	return &AxonIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AxonIntegrator) GetReportRows(filters *domain.ReportFilters) ([]*domain.ReportRow, error) {
	entries, err := s.Client.GetAdvertiserReport(filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start": filters.StartDate,
			"end":   filters.EndDate,
			"error": err.Error(),
		}).Error("report: failed to get advertiser report from API")
		return nil, err
	}

	// A ordem retornada pela API é preservada
	rows := make([]*domain.ReportRow, 0, len(entries))
	for i := range entries {
		row, err := FactoryReportRow(&entries[i], i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	logrus.WithField("rows", len(rows)).Debug("report: successfully retrieved advertiser report")

	return rows, nil
}
