package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type responseBusinessList struct {
	Data   []metadomain.Business `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// ListBusinesses busca os portfólios empresariais do usuário conectado
func (c *MetaClient) ListBusinesses() ([]metadomain.Business, error) {
	params := url.Values{}
	params.Add("fields", "id,name")

	var response responseBusinessList
	if err := c.get("me/businesses", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// DebugToken inspeciona o token atual para derivar o status da conexão
func (c *MetaClient) DebugToken() (*metadomain.DebugTokenData, error) {
	return GetDebugTokenInfo(
		c.Cfg.Meta.AccessToken,
		c.Cfg.Meta.AppID,
		c.Cfg.Meta.AppSecret,
		c.Cfg.Meta.BaseURL,
		c.Cfg.Meta.Version,
	)
}
