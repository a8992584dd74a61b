package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type responseAdSetList struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// ListAdSets busca os conjuntos de anúncios da conta
func (c *MetaClient) ListAdSets(accountID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,campaign_id,optimization_goal,billing_event,daily_budget,start_time,end_time")
	params.Add("limit", "100")

	var response responseAdSetList
	if err := c.get(fmt.Sprintf("act_%s/adsets", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// CreateAdSet cria um conjunto de anúncios na conta informada
func (c *MetaClient) CreateAdSet(accountID string, params url.Values) (*metadomain.CreatedObject, error) {
	var created metadomain.CreatedObject
	if err := c.postForm(fmt.Sprintf("act_%s/adsets", accountID), params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
