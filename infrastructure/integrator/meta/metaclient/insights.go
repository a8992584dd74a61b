package metaclient

import (
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type responseAccountInsights struct {
	Data   []metadomain.AccountInsight `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

type responseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetAccountInsights busca o resumo de métricas da conta no período
func (c *MetaClient) GetAccountInsights(accountID string, filters *domain.InsightFilters) (*metadomain.AccountInsight, error) {
	params := url.Values{}
	params.Add("fields", "account_id,account_name,spend,impressions,reach,clicks,frequency,cpc,ctr")
	applyInsightFilters(params, filters)

	var response responseAccountInsights
	if err := c.get(fmt.Sprintf("act_%s/insights", accountID), params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

// GetCampaignInsights busca métricas por campanha no período
func (c *MetaClient) GetCampaignInsights(accountID string, filters *domain.InsightFilters) ([]metadomain.CampaignInsight, error) {
	params := url.Values{}
	params.Add("fields", "campaign_id,campaign_name,objective,spend,impressions,reach,clicks,actions,cost_per_action_type")
	params.Add("level", "campaign")
	applyInsightFilters(params, filters)

	var response responseCampaignInsights
	if err := c.get(fmt.Sprintf("act_%s/insights", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func applyInsightFilters(params url.Values, filters *domain.InsightFilters) {
	if filters == nil {
		return
	}

	if filters.StartDate != nil && filters.EndDate != nil {
		timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`,
			filters.StartDate.Format(time.DateOnly),
			filters.EndDate.Format(time.DateOnly),
		)
		params.Add("time_range", timeRange)
		return
	}

	if filters.Preset != "" {
		params.Add("date_preset", filters.Preset)
	}
}
