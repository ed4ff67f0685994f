package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/domain"
)

type responseCreatives struct {
	Data []struct {
		ID       string              `json:"id"`
		Status   string              `json:"status"`
		Creative metadomain.Creative `json:"creative"`
	} `json:"data"`
}

// GetCreativesByCampaignID busca os criativos dos anúncios da campanha.
func (c *MetaClient) GetCreativesByCampaignID(campaignExternalID string) ([]metadomain.Creative, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,status,creative{id,name,title,body,call_to_action_type,thumbnail_url,object_type}")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/ads?%s", c.Cfg.Meta.URL, campaignExternalID, params.Encode())

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
			return c.GetCreativesByCampaignID(campaignExternalID)
		}
		return nil, err
	}

	var response responseCreatives
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	creatives := make([]metadomain.Creative, 0, len(response.Data))
	for _, ad := range response.Data {
		creative := ad.Creative
		// O status vem do anúncio, não do criativo
		creative.Status = ad.Status
		creatives = append(creatives, creative)
	}

	return creatives, nil
}
