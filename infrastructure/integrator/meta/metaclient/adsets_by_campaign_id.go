package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/domain"
)

type responseAdSets struct {
	Data []metadomain.AdSet `json:"data"`
}

// GetAdSetsByCampaignID busca os conjuntos de anúncios com o bloco de
// segmentação completo.
func (c *MetaClient) GetAdSetsByCampaignID(campaignExternalID string) ([]metadomain.AdSet, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,name,targeting")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/adsets?%s", c.Cfg.Meta.URL, campaignExternalID, params.Encode())

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
			return c.GetAdSetsByCampaignID(campaignExternalID)
		}
		return nil, err
	}

	var response responseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
