package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/mocks"
	"github.com/vfg2006/axon-report-cli/internal/domain"
	"go.uber.org/mock/gomock"
)

type captureRenderer struct {
	rows []*domain.ReportRow
	err  error
}

func (r *captureRenderer) Render(rows []*domain.ReportRow) error {
	r.rows = rows
	return r.err
}

func datePtr(value string) *time.Time {
	date, _ := time.Parse(time.DateOnly, value)
	return &date
}

func sampleRows() []*domain.ReportRow {
	return []*domain.ReportRow{
		{Date: *datePtr("2025-12-24"), CampaignName: "Campanha A", CampaignID: "1", Country: "BR", Spend: decimal.RequireFromString("1.10")},
		{Date: *datePtr("2025-12-25"), CampaignName: "Campanha B", CampaignID: "2", Country: "US", Spend: decimal.RequireFromString("2.20")},
	}
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := &domain.ReportFilters{
		StartDate: datePtr("2025-12-24"),
		EndDate:   datePtr("2025-12-27"),
	}

	tests := []struct {
		name     string
		filters  *domain.ReportFilters
		setup    func(integrator *mocks.MockReportIntegrator)
		validate func(t *testing.T, renderer *captureRenderer, err error)
	}{
		{
			name:    "Linhas são entregues ao renderer na ordem recebida",
			filters: filters,
			setup: func(integrator *mocks.MockReportIntegrator) {
				integrator.EXPECT().
					GetReportRows(filters).
					Return(sampleRows(), nil)
			},
			validate: func(t *testing.T, renderer *captureRenderer, err error) {
				require.NoError(t, err)
				require.Len(t, renderer.rows, 2)
				assert.Equal(t, "Campanha A", renderer.rows[0].CampaignName)
				assert.Equal(t, "Campanha B", renderer.rows[1].CampaignName)
			},
		},
		{
			name:    "Erro do integrador interrompe antes do renderer",
			filters: filters,
			setup: func(integrator *mocks.MockReportIntegrator) {
				integrator.EXPECT().
					GetReportRows(filters).
					Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, renderer *captureRenderer, err error) {
				require.Error(t, err)
				assert.Nil(t, renderer.rows)
			},
		},
		{
			name:    "Filtros sem datas falham sem chamar a API",
			filters: &domain.ReportFilters{},
			setup:   func(integrator *mocks.MockReportIntegrator) {},
			validate: func(t *testing.T, renderer *captureRenderer, err error) {
				require.Error(t, err)
				assert.Nil(t, renderer.rows)
			},
		},
		{
			name:    "Relatório vazio ainda é entregue ao renderer",
			filters: filters,
			setup: func(integrator *mocks.MockReportIntegrator) {
				integrator.EXPECT().
					GetReportRows(filters).
					Return([]*domain.ReportRow{}, nil)
			},
			validate: func(t *testing.T, renderer *captureRenderer, err error) {
				require.NoError(t, err)
				require.NotNil(t, renderer.rows)
				assert.Empty(t, renderer.rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := mocks.NewMockReportIntegrator(ctrl)
			renderer := &captureRenderer{}
			tt.setup(integrator)

			service := NewService(integrator, renderer)
			err := service.Run(tt.filters)

			tt.validate(t, renderer, err)
		})
	}
}
