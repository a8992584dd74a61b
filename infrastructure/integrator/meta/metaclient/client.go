package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type Client interface {
	// Campanhas, conjuntos e anúncios
	ListCampaigns(accountID string) ([]metadomain.Campaign, error)
	CreateCampaign(accountID string, params url.Values) (*metadomain.CreatedObject, error)
	ListAdSets(accountID string) ([]metadomain.AdSet, error)
	CreateAdSet(accountID string, params url.Values) (*metadomain.CreatedObject, error)
	ListAds(accountID string) ([]metadomain.Ad, error)
	CreateAd(accountID string, params url.Values) (*metadomain.CreatedObject, error)
	UpdateObjectStatus(objectID, status string) error
	DeleteObject(objectID string) error

	// Audiências
	ListCustomAudiences(accountID string) ([]metadomain.CustomAudience, error)
	CreateCustomAudience(accountID string, params *metadomain.CreateAudienceParams) (*metadomain.CreatedObject, error)
	CreateLookalikeAudience(accountID, name string, spec *metadomain.LookalikeSpec) (*metadomain.CreatedObject, error)
	DeleteCustomAudience(audienceID string) error
	AddAudienceUsers(audienceID string, payload *metadomain.AudienceUsersPayload) (*metadomain.AudienceUsersResult, error)

	// Criativos
	UploadAdImage(accountID, filename string, data []byte) (*metadomain.UploadedImage, error)
	ListAdCreatives(accountID string) ([]metadomain.AdCreative, error)

	// Insights
	GetAccountInsights(accountID string, filters *domain.InsightFilters) (*metadomain.AccountInsight, error)
	GetCampaignInsights(accountID string, filters *domain.InsightFilters) ([]metadomain.CampaignInsight, error)

	// Portfólios, busca e conexão
	ListBusinesses() ([]metadomain.Business, error)
	SearchTargeting(kind, query string, limit int) ([]metadomain.TargetingOption, error)
	SearchAdLibrary(query, country string, limit int) ([]metadomain.ArchivedAd, error)
	DebugToken() (*metadomain.DebugTokenData, error)

	RefreshToken() error
	EnsureValidToken() error
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}
