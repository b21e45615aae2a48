package reporting

import (
	"github.com/vfg2006/axon-report-cli/internal/domain"
)

// Renderer define a interface de saída do relatório (tabela ou CSV)
type Renderer interface {
	// Render consome as linhas do relatório na ordem recebida
	Render(rows []*domain.ReportRow) error
}

// Reporter define a interface do caso de uso de geração de relatório
type Reporter interface {
	// Run busca o relatório do intervalo informado e o entrega ao renderer
	Run(filters *domain.ReportFilters) error
}
