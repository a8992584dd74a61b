package metaclient

import (
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

// Tipos de busca aceitos pelo endpoint /search do Graph
const (
	TargetingSearchGeo      = "adgeolocation"
	TargetingSearchInterest = "adinterest"
)

type responseTargetingSearch struct {
	Data   []metadomain.TargetingOption `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// SearchTargeting faz a busca de geolocalizações ou interesses para segmentação
func (c *MetaClient) SearchTargeting(kind, query string, limit int) ([]metadomain.TargetingOption, error) {
	if kind != TargetingSearchGeo && kind != TargetingSearchInterest {
		return nil, fmt.Errorf("tipo de busca de segmentação inválido: %q", kind)
	}

	params := url.Values{}
	params.Add("type", kind)
	params.Add("q", query)
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var response responseTargetingSearch
	if err := c.get("search", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

type responseAdLibrary struct {
	Data   []metadomain.ArchivedAd `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// SearchAdLibrary consulta a Ad Library pública (/ads_archive)
func (c *MetaClient) SearchAdLibrary(query, country string, limit int) ([]metadomain.ArchivedAd, error) {
	params := url.Values{}
	params.Add("search_terms", query)
	params.Add("ad_reached_countries", fmt.Sprintf(`["%s"]`, country))
	params.Add("ad_active_status", "ALL")
	params.Add("fields", "id,page_id,page_name,ad_creative_bodies,ad_creative_link_titles,ad_delivery_start_time,ad_delivery_stop_time,ad_snapshot_url,publisher_platforms")
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var response responseAdLibrary
	if err := c.get("ads_archive", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
