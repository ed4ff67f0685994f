package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

type responseAdInsights struct {
	Data []metadomain.AdInsight `json:"data"`
}

// GetAdInsightsByCampaignID busca os insights da campanha agregados no nível
// de anúncio (level=ad), somados no intervalo dos filtros.
func (c *MetaClient) GetAdInsightsByCampaignID(campaignExternalID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "ad_id,spend,impressions,clicks,reach,actions,action_values")
	params.Add("level", "ad")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
		params.Add("time_range", timeRange)
	}

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, campaignExternalID, params.Encode())

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetAdInsightsByCampaignID(campaignExternalID, filters)
		}
		return nil, err
	}

	var response responseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
