package axondomain

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// Colunas solicitadas à API de relatórios, na ordem do relatório final
var ReportColumns = []string{"day", "campaign", "campaign_id_external", "country", "cost"}

// FlexString aceita valores JSON string ou numéricos.
// A API retorna campaign_id_external ora como string, ora como inteiro.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = FlexString(unquoted)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// ReportEntry representa uma entrada bruta do relatório de anunciante
type ReportEntry struct {
	Day                string           `json:"day"`
	Campaign           string           `json:"campaign"`
	CampaignIDExternal FlexString       `json:"campaign_id_external"`
	Country            string           `json:"country"`
	Cost               *decimal.Decimal `json:"cost"`
}
