package creative

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Limite de upload aceito pelo Graph para imagens de anúncio
const maxImageSize = 30 << 20

var (
	ErrEmptyImage       = errors.New("arquivo de imagem vazio")
	ErrImageTooLarge    = errors.New("imagem excede o tamanho máximo de 30MB")
	ErrUnsupportedImage = errors.New("formato de imagem não suportado")
)

// Extensões aceitas pelo Graph para ad images
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// MetaCreativer define as operações de criativo usadas no Graph
type MetaCreativer interface {
	UploadImage(accountID, filename string, data []byte) (*domain.UploadImageResponse, error)
	ListCreatives(accountID string) ([]domain.AdCreative, error)
}

// Creativer é o serviço de gestão de criativos
type Creativer interface {
	UploadImage(accountID, filename string, data []byte) (*domain.UploadImageResponse, error)
	ListCreatives(accountID string) ([]domain.AdCreative, error)
}

type Service struct {
	metaService MetaCreativer
}

func NewService(metaService MetaCreativer) Creativer {
	return &Service{
		metaService: metaService,
	}
}

func (s *Service) UploadImage(accountID, filename string, data []byte) (*domain.UploadImageResponse, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	if len(data) > maxImageSize {
		return nil, ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedExtensions[ext] {
		return nil, ErrUnsupportedImage
	}

	image, err := s.metaService.UploadImage(accountID, filename, data)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"filename":   filename,
		"hash":       image.Hash,
	}).Info("Imagem de anúncio enviada com sucesso")

	return image, nil
}

func (s *Service) ListCreatives(accountID string) ([]domain.AdCreative, error) {
	return s.metaService.ListCreatives(accountID)
}
