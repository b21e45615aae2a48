package commands

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon"
	"github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/axonclient"
	"github.com/vfg2006/axon-report-cli/internal/config"
	"github.com/vfg2006/axon-report-cli/internal/domain"
	"github.com/vfg2006/axon-report-cli/internal/usecases/reporting"
	"github.com/vfg2006/axon-report-cli/internal/usecases/rendering"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
	"github.com/vfg2006/axon-report-cli/pkg/utils"
)

const (
	defaultStartDate = "2025-12-24"
	defaultEndDate   = utils.NowLiteral
)

// NewReportCommand cria o comando raiz da CLI
func NewReportCommand() *cobra.Command {
	var (
		apiKey     string
		startDate  string
		endDate    string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "axon-report",
		Short: "Busca relatórios de anunciante da API da Axon (AppLovin)",
		Long: `Busca o relatório de performance de campanhas da API de relatórios da Axon
para um intervalo de datas e o exibe como tabela no terminal ou exporta para CSV.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			applyLogLevel(cfg)

			// Flag tem precedência sobre AXON_API_KEY do ambiente/.env
			if apiKey != "" {
				cfg.Axon.APIKey = apiKey
			}

			if cfg.Axon.APIKey == "" {
				_ = cmd.Usage()
				return clierrors.New(clierrors.ErrMissingAPIKey,
					"chave de API ausente (use --api-key ou a variável AXON_API_KEY)")
			}

			// Datas são resolvidas antes de qualquer chamada à API
			start, err := utils.ResolveDate(startDate)
			if err != nil {
				return err
			}

			end, err := utils.ResolveDate(endDate)
			if err != nil {
				return err
			}

			filters := &domain.ReportFilters{
				StartDate: start,
				EndDate:   end,
			}

			logger := logrus.WithField("correlation_id", uuid.New().String())
			logger.WithFields(logrus.Fields{
				"start":  startDate,
				"end":    endDate,
				"output": outputPath,
			}).Debug("report: starting run")

			axonClient := axonclient.NewClient(cfg)
			axonIntegrator := axon.New(cfg, axonClient)

			// Os modos de saída são mutuamente exclusivos:
			// com --output grava CSV, sem --output imprime tabela
			var renderer reporting.Renderer
			if outputPath != "" {
				renderer = rendering.NewCSVExporter(outputPath)
			} else {
				renderer = rendering.NewTableRenderer(cmd.OutOrStdout())
			}

			reportService := reporting.NewService(axonIntegrator, renderer)

			if err := reportService.Run(filters); err != nil {
				logger.WithError(err).Error("report: run failed")
				return err
			}

			logger.Debug("report: run finished")

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return clierrors.Wrap(err, clierrors.ErrInvalidFlag, "argumentos inválidos")
	})

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Chave de API da Axon (obrigatória; pode vir de AXON_API_KEY)")
	cmd.Flags().StringVar(&startDate, "start", defaultStartDate, "Data inicial no formato YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end", defaultEndDate, "Data final no formato YYYY-MM-DD ou 'now'")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Caminho do arquivo CSV de saída (sem ele, imprime tabela)")

	return cmd
}

// applyLogLevel define o nível de log com base na configuração
func applyLogLevel(cfg *config.Config) {
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}
