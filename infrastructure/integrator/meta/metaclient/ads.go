package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type responseAdList struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// ListAds busca os anúncios da conta
func (c *MetaClient) ListAds(accountID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,adset_id,creative")
	params.Add("limit", "100")

	var response responseAdList
	if err := c.get(fmt.Sprintf("act_%s/ads", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// CreateAd cria um anúncio na conta informada
func (c *MetaClient) CreateAd(accountID string, params url.Values) (*metadomain.CreatedObject, error) {
	var created metadomain.CreatedObject
	if err := c.postForm(fmt.Sprintf("act_%s/ads", accountID), params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
