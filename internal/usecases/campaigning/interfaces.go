package campaigning

import (
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// MetaCampaigner define as operações de campanha usadas no Graph
type MetaCampaigner interface {
	ListCampaigns(accountID string) ([]domain.Campaign, error)
	CreateCampaign(accountID string, req *domain.CreateCampaignRequest) (string, error)
	ListAdSets(accountID string) ([]domain.AdSet, error)
	CreateAdSet(accountID string, req *domain.CreateAdSetRequest) (string, error)
	ListAds(accountID string) ([]domain.Ad, error)
	CreateAd(accountID string, req *domain.CreateAdRequest) (string, error)
	UpdateObjectStatus(objectID, status string) error
	DeleteObject(objectID string) error
	ListAudiences(accountID string) ([]domain.CustomAudience, error)
}
