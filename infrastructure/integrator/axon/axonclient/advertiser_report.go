package axonclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	axondomain "github.com/vfg2006/axon-report-cli/infrastructure/integrator/axon/domain"
	"github.com/vfg2006/axon-report-cli/internal/domain"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ResponseAdvertiserReport struct {
	Results []axondomain.ReportEntry `json:"results"`
	Error   string                   `json:"error"`
}

// GetAdvertiserReport busca o relatório de anunciante para o intervalo de datas.
// A autenticação é feita via parâmetro api_key, conforme a API da Axon.
func (c *AxonClient) GetAdvertiserReport(filters *domain.ReportFilters) ([]axondomain.ReportEntry, error) {
	params := url.Values{}
	params.Add("api_key", c.Cfg.Axon.APIKey)
	params.Add("start", filters.StartDate.Format(time.DateOnly))
	params.Add("end", filters.EndDate.Format(time.DateOnly))
	params.Add("columns", strings.Join(axondomain.ReportColumns, ","))
	params.Add("format", "json")
	params.Add("report_type", c.Cfg.Axon.ReportType)

	url := c.Cfg.Axon.BaseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, clierrors.Wrap(err, clierrors.ErrNetwork, "falha ao criar a requisição")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, clierrors.Wrap(err, clierrors.ErrNetwork, "falha de conexão com a API da Axon")
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	return decodeReportBody(body)
}

// handleResponse lê o corpo e classifica respostas não-2xx
func (c *AxonClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.ErrNetwork, "falha ao ler a resposta da API")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("report: non-2xx response from Axon API")

		return nil, clierrors.New(clierrors.ErrAPIResponse,
			"HTTP %d da API da Axon: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// decodeReportBody aceita os formatos de resposta observados na API:
// objeto com "results", lista pura, ou objeto com "error".
func decodeReportBody(body []byte) ([]axondomain.ReportEntry, error) {
	var response ResponseAdvertiserReport
	if err := json.Unmarshal(body, &response); err == nil {
		if response.Error != "" {
			return nil, clierrors.New(clierrors.ErrAPIResponse, "erro retornado pela API: %s", response.Error)
		}

		if response.Results != nil {
			return response.Results, nil
		}
	}

	var entries []axondomain.ReportEntry
	if err := json.Unmarshal(body, &entries); err == nil {
		return entries, nil
	}

	logrus.WithField("body", truncateForLog(body)).Error("Erro ao decodificar JSON")

	return nil, clierrors.New(clierrors.ErrMalformedResponse,
		"formato de resposta inesperado (nem objeto com \"results\" nem lista)")
}

func truncateForLog(body []byte) string {
	const max = 512
	if len(body) <= max {
		return string(body)
	}
	return fmt.Sprintf("%s... (%d bytes)", body[:max], len(body))
}
