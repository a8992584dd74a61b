package meta

import (
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func (s *MetaIntegrator) UploadImage(accountID, filename string, data []byte) (*domain.UploadImageResponse, error) {
	image, err := s.Client.UploadAdImage(accountID, filename, data)
	if err != nil {
		return nil, err
	}

	return &domain.UploadImageResponse{
		Hash: image.Hash,
		Name: image.Name,
		URL:  image.URL,
	}, nil
}

func (s *MetaIntegrator) ListCreatives(accountID string) ([]domain.AdCreative, error) {
	resp, err := s.Client.ListAdCreatives(accountID)
	if err != nil {
		return nil, err
	}

	creatives := make([]domain.AdCreative, 0, len(resp))
	for _, c := range resp {
		creatives = append(creatives, domain.AdCreative(c))
	}

	return creatives, nil
}
