package insighting

import (
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// MetaInsighter define a interface para obter métricas de anúncios no Graph
type MetaInsighter interface {
	// GetAccountMetrics obtém o resumo de métricas de uma conta de anúncios
	GetAccountMetrics(accountID string, filters *domain.InsightFilters) (*domain.AccountMetrics, error)

	// GetCampaignMetrics obtém as métricas por campanha de uma conta
	GetCampaignMetrics(accountID string, filters *domain.InsightFilters) ([]domain.CampaignMetrics, error)
}

// Insighter é o serviço de analytics do painel
type Insighter interface {
	GetAccountMetrics(accountID string, filters *domain.InsightFilters) (*domain.AccountMetrics, error)
	GetCampaignMetrics(accountID string, filters *domain.InsightFilters) ([]domain.CampaignMetrics, error)
	PruneCache() (int64, error)
}
