package meta

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListCampaigns(accountID string) ([]domain.Campaign, error) {
	resp, err := s.Client.ListCampaigns(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to list campaigns from API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, c := range resp {
		campaigns = append(campaigns, domain.Campaign(c))
	}

	return campaigns, nil
}

func (s *MetaIntegrator) CreateCampaign(accountID string, req *domain.CreateCampaignRequest) (string, error) {
	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("objective", req.Objective)

	status := domain.EntityStatusActive
	if req.StartPaused {
		status = domain.EntityStatusPaused
	}
	params.Add("status", status)

	if req.DailyBudget != nil {
		params.Add("daily_budget", strconv.FormatInt(*req.DailyBudget, 10))
	}
	if req.LifetimeBudget != nil {
		params.Add("lifetime_budget", strconv.FormatInt(*req.LifetimeBudget, 10))
	}
	if req.BidStrategy != "" {
		params.Add("bid_strategy", req.BidStrategy)
	}

	// O Graph exige o campo mesmo sem categoria especial
	categories := req.SpecialAdCategory
	if categories == nil {
		categories = []string{}
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return "", err
	}
	params.Add("special_ad_categories", string(categoriesJSON))

	created, err := s.Client.CreateCampaign(accountID, params)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (s *MetaIntegrator) ListAdSets(accountID string) ([]domain.AdSet, error) {
	resp, err := s.Client.ListAdSets(accountID)
	if err != nil {
		return nil, err
	}

	adSets := make([]domain.AdSet, 0, len(resp))
	for _, a := range resp {
		adSets = append(adSets, domain.AdSet(a))
	}

	return adSets, nil
}

func (s *MetaIntegrator) CreateAdSet(accountID string, req *domain.CreateAdSetRequest) (string, error) {
	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("campaign_id", req.CampaignID)
	params.Add("optimization_goal", req.OptimizationGoal)
	params.Add("billing_event", req.BillingEvent)
	params.Add("status", domain.EntityStatusPaused)

	if req.DailyBudget != nil {
		params.Add("daily_budget", strconv.FormatInt(*req.DailyBudget, 10))
	}
	if req.StartTime != "" {
		params.Add("start_time", req.StartTime)
	}
	if req.EndTime != "" {
		params.Add("end_time", req.EndTime)
	}

	targetingJSON, err := json.Marshal(buildTargeting(req))
	if err != nil {
		return "", err
	}
	params.Add("targeting", string(targetingJSON))

	created, err := s.Client.CreateAdSet(accountID, params)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (s *MetaIntegrator) ListAds(accountID string) ([]domain.Ad, error) {
	resp, err := s.Client.ListAds(accountID)
	if err != nil {
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, a := range resp {
		ad := domain.Ad{
			ID:              a.ID,
			Name:            a.Name,
			Status:          a.Status,
			EffectiveStatus: a.EffectiveStatus,
			AdSetID:         a.AdSetID,
		}
		if a.Creative != nil {
			ad.CreativeID = a.Creative.CreativeID
			if ad.CreativeID == "" {
				ad.CreativeID = a.Creative.ID
			}
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

func (s *MetaIntegrator) CreateAd(accountID string, req *domain.CreateAdRequest) (string, error) {
	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("adset_id", req.AdSetID)
	params.Add("status", domain.EntityStatusPaused)

	creativeJSON, err := json.Marshal(metadomain.AdBinding{CreativeID: req.CreativeID})
	if err != nil {
		return "", err
	}
	params.Add("creative", string(creativeJSON))

	created, err := s.Client.CreateAd(accountID, params)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (s *MetaIntegrator) UpdateObjectStatus(objectID, status string) error {
	return s.Client.UpdateObjectStatus(objectID, status)
}

func (s *MetaIntegrator) DeleteObject(objectID string) error {
	return s.Client.DeleteObject(objectID)
}

// buildTargeting monta a spec de segmentação do conjunto a partir da
// requisição
func buildTargeting(req *domain.CreateAdSetRequest) *metadomain.Targeting {
	targeting := &metadomain.Targeting{
		AgeMin: req.AgeMin,
		AgeMax: req.AgeMax,
	}

	if len(req.Countries) > 0 {
		targeting.GeoLocations = &metadomain.GeoLocations{Countries: req.Countries}
	}

	for _, id := range req.CustomAudienceIDs {
		targeting.CustomAudiences = append(targeting.CustomAudiences, metadomain.AudienceRef{ID: id})
	}

	return targeting
}
