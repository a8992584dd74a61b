package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func (s *MetaIntegrator) ListAudiences(accountID string) ([]domain.CustomAudience, error) {
	resp, err := s.Client.ListCustomAudiences(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audiences: failed to list custom audiences from API")
		return nil, err
	}

	audiences := make([]domain.CustomAudience, 0, len(resp))
	for _, a := range resp {
		audiences = append(audiences, factoryCustomAudience(a))
	}

	return audiences, nil
}

func (s *MetaIntegrator) CreateAudience(accountID string, params *metadomain.CreateAudienceParams) (string, error) {
	created, err := s.Client.CreateCustomAudience(accountID, params)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *MetaIntegrator) CreateLookalike(accountID string, req *domain.CreateLookalikeRequest) (string, error) {
	spec := &metadomain.LookalikeSpec{
		Type:    "similarity",
		Ratio:   req.Ratio,
		Country: req.Country,
		Origin: []metadomain.Origin{
			{ID: req.OriginAudienceID, Type: "custom_audience"},
		},
	}

	created, err := s.Client.CreateLookalikeAudience(accountID, req.Name, spec)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (s *MetaIntegrator) DeleteAudience(audienceID string) error {
	return s.Client.DeleteCustomAudience(audienceID)
}

func (s *MetaIntegrator) AddAudienceUsers(audienceID string, payload *metadomain.AudienceUsersPayload) (*metadomain.AudienceUsersResult, error) {
	return s.Client.AddAudienceUsers(audienceID, payload)
}

func factoryCustomAudience(a metadomain.CustomAudience) domain.CustomAudience {
	audience := domain.CustomAudience{
		ID:               a.ID,
		Name:             a.Name,
		Subtype:          a.Subtype,
		Description:      a.Description,
		ApproximateCount: a.ApproximateCount,
		RetentionDays:    a.RetentionDays,
		TimeCreated:      a.TimeCreated,
	}

	if a.DeliveryStatus != nil {
		audience.DeliveryStatus = a.DeliveryStatus.Description
	}
	if a.OperationStatus != nil {
		audience.OperationStatus = a.OperationStatus.Description
	}
	if a.LookalikeSpec != nil && len(a.LookalikeSpec.Origin) > 0 {
		audience.LookalikeOriginID = a.LookalikeSpec.Origin[0].ID
	}

	return audience
}
