package creative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type fakeMeta struct {
	uploaded string
}

func (f *fakeMeta) UploadImage(accountID, filename string, data []byte) (*domain.UploadImageResponse, error) {
	f.uploaded = filename
	return &domain.UploadImageResponse{Hash: "abc123", Name: filename}, nil
}

func (f *fakeMeta) ListCreatives(accountID string) ([]domain.AdCreative, error) {
	return []domain.AdCreative{{ID: "cr_1"}}, nil
}

func TestService_UploadImage(t *testing.T) {
	fake := &fakeMeta{}
	service := NewService(fake)

	resp, err := service.UploadImage("act_1", "banner.png", []byte{0x89, 0x50})
	require.NoError(t, err)

	assert.Equal(t, "abc123", resp.Hash)
	assert.Equal(t, "banner.png", fake.uploaded)
}

func TestService_UploadImage_Validacoes(t *testing.T) {
	fake := &fakeMeta{}
	service := NewService(fake)

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{
			name:     "Arquivo vazio",
			filename: "banner.png",
			data:     nil,
			wantErr:  ErrEmptyImage,
		},
		{
			name:     "Extensão não suportada",
			filename: "video.mp4",
			data:     []byte{0x01},
			wantErr:  ErrUnsupportedImage,
		},
		{
			name:     "Sem extensão",
			filename: "banner",
			data:     []byte{0x01},
			wantErr:  ErrUnsupportedImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.UploadImage("act_1", tt.filename, tt.data)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)

			// Nada chega ao Graph quando a validação falha
			assert.Empty(t, fake.uploaded)
		})
	}
}
