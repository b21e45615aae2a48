package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon"
	"github.com/vfg2006/axon-report-cli/internal/domain"
)

// Service implementa a interface Reporter
type Service struct {
	axonService axon.ReportIntegrator
	renderer    Renderer
}

// NewService cria uma nova instância do serviço de relatório
func NewService(axonService axon.ReportIntegrator, renderer Renderer) Reporter {
	return &Service{
		axonService: axonService,
		renderer:    renderer,
	}
}

// Run busca o relatório e o entrega ao renderer configurado
func (s *Service) Run(filters *domain.ReportFilters) error {
	// Verificar se os filtros têm datas válidas
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	logrus.WithFields(logrus.Fields{
		"start": filters.StartDate.Format(time.DateOnly),
		"end":   filters.EndDate.Format(time.DateOnly),
	}).Debug("report: fetching advertiser report")

	rows, err := s.axonService.GetReportRows(filters)
	if err != nil {
		return err
	}

	return s.renderer.Render(rows)
}
