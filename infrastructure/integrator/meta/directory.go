package meta

import (
	"time"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func (s *MetaIntegrator) ListBusinesses() ([]domain.Business, error) {
	resp, err := s.Client.ListBusinesses()
	if err != nil {
		return nil, err
	}

	businesses := make([]domain.Business, 0, len(resp))
	for _, b := range resp {
		businesses = append(businesses, domain.Business(b))
	}

	return businesses, nil
}

func (s *MetaIntegrator) SearchTargeting(kind, query string, limit int) ([]domain.TargetingOption, error) {
	resp, err := s.Client.SearchTargeting(kind, query, limit)
	if err != nil {
		return nil, err
	}

	options := make([]domain.TargetingOption, 0, len(resp))
	for _, o := range resp {
		id := o.ID
		if id == "" {
			id = o.Key
		}
		options = append(options, domain.TargetingOption{
			ID:           id,
			Name:         o.Name,
			Type:         o.Type,
			CountryCode:  o.CountryCode,
			CountryName:  o.CountryName,
			Region:       o.Region,
			AudienceSize: o.AudienceSize,
			Path:         o.Path,
		})
	}

	return options, nil
}

func (s *MetaIntegrator) SearchAdLibrary(query, country string, limit int) ([]domain.ArchivedAd, error) {
	resp, err := s.Client.SearchAdLibrary(query, country, limit)
	if err != nil {
		return nil, err
	}

	ads := make([]domain.ArchivedAd, 0, len(resp))
	for _, a := range resp {
		ads = append(ads, domain.ArchivedAd(a))
	}

	return ads, nil
}

// CheckConnection deriva o status da conexão a partir do debug do token
func (s *MetaIntegrator) CheckConnection(workspaceID string) (*domain.ConnectionStatus, error) {
	data, err := s.Client.DebugToken()
	if err != nil {
		return nil, err
	}

	status := &domain.ConnectionStatus{
		WorkspaceID:   workspaceID,
		State:         domain.ConnectionStateExpired,
		Scopes:        data.Scopes,
		AppID:         data.AppID,
		LastCheckedAt: time.Now(),
	}

	if data.IsValid {
		status.State = domain.ConnectionStateActive
	}

	if data.ExpiresAt > 0 {
		expires := time.Unix(data.ExpiresAt, 0)
		status.TokenExpires = &expires
	}

	return status, nil
}
