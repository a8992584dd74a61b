package audiencing

import (
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// MetaAudiencer define as operações de audiência usadas no Graph
type MetaAudiencer interface {
	ListAudiences(accountID string) ([]domain.CustomAudience, error)
	CreateAudience(accountID string, params *metadomain.CreateAudienceParams) (string, error)
	CreateLookalike(accountID string, req *domain.CreateLookalikeRequest) (string, error)
	DeleteAudience(audienceID string) error
	AddAudienceUsers(audienceID string, payload *metadomain.AudienceUsersPayload) (*metadomain.AudienceUsersResult, error)
}
