package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type responseCampaignList struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// ListCampaigns busca as campanhas da conta, incluindo pausadas
// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) ListCampaigns(accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,objective,daily_budget,lifetime_budget,special_ad_categories,created_time")
	params.Add("limit", "100")

	var response responseCampaignList
	if err := c.get(fmt.Sprintf("act_%s/campaigns", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// CreateCampaign cria uma campanha na conta informada
func (c *MetaClient) CreateCampaign(accountID string, params url.Values) (*metadomain.CreatedObject, error) {
	var created metadomain.CreatedObject
	if err := c.postForm(fmt.Sprintf("act_%s/campaigns", accountID), params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateObjectStatus altera o status de qualquer objeto do Graph
// (campanha, conjunto ou anúncio compartilham o mesmo formato)
func (c *MetaClient) UpdateObjectStatus(objectID, status string) error {
	params := url.Values{}
	params.Add("status", status)
	return c.postForm(objectID, params, nil)
}

// DeleteObject remove um objeto do Graph pelo id
func (c *MetaClient) DeleteObject(objectID string) error {
	return c.del(objectID, nil)
}
