package audiencing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/audiencing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_CreateAudience(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaAudiencer(ctrl)
	service := NewService(mockMeta)

	mockMeta.EXPECT().
		CreateAudience("act_1", gomock.Any()).
		DoAndReturn(func(_ string, params *metadomain.CreateAudienceParams) (string, error) {
			assert.Equal(t, "WEBSITE", params.Subtype)
			assert.NotEmpty(t, params.Rule)
			return "aud_99", nil
		})

	audience, err := service.CreateAudience("act_1", &domain.AudienceForm{
		Name:          "Visitantes",
		Subtype:       domain.AudienceSubtypeWebsite,
		PixelID:       "px_1",
		RetentionDays: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "aud_99", audience.ID)
	assert.Equal(t, "Visitantes", audience.Name)
}

func TestService_CreateAudience_ValidacaoNaoChamaORede(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa registrada: qualquer chamada ao Graph falha o teste
	mockMeta := mocks.NewMockMetaAudiencer(ctrl)
	service := NewService(mockMeta)

	audience, err := service.CreateAudience("act_1", &domain.AudienceForm{
		Subtype: domain.AudienceSubtypeWebsite,
	})

	assert.Nil(t, audience)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "pixel_id", validationErr.Field)
}

func TestService_CreateLookalike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaAudiencer(ctrl)
	service := NewService(mockMeta)

	tests := []struct {
		name    string
		req     *domain.CreateLookalikeRequest
		setup   func()
		wantErr bool
	}{
		{
			name: "Criação com sucesso",
			req: &domain.CreateLookalikeRequest{
				Name:             "LAL 3% BR",
				OriginAudienceID: "aud_1",
				Country:          "BR",
				Ratio:            0.03,
			},
			setup: func() {
				mockMeta.EXPECT().
					CreateLookalike("act_1", gomock.Any()).
					Return("aud_lal", nil)
			},
		},
		{
			name: "Sem audiência de origem",
			req: &domain.CreateLookalikeRequest{
				Name:  "LAL",
				Ratio: 0.05,
			},
			setup:   func() {},
			wantErr: true,
		},
		{
			name: "Alcance fora do intervalo",
			req: &domain.CreateLookalikeRequest{
				Name:             "LAL",
				OriginAudienceID: "aud_1",
				Ratio:            0.5,
			},
			setup:   func() {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			audience, err := service.CreateLookalike("act_1", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, audience)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "aud_lal", audience.ID)
			assert.Equal(t, "aud_1", audience.LookalikeOriginID)
		})
	}
}

func TestService_ImportMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaAudiencer(ctrl)
	service := NewService(mockMeta)

	mockMeta.EXPECT().
		AddAudienceUsers("aud_1", gomock.Any()).
		DoAndReturn(func(_ string, payload *metadomain.AudienceUsersPayload) (*metadomain.AudienceUsersResult, error) {
			assert.Equal(t, []string{"EMAIL"}, payload.Schema)
			assert.Len(t, payload.Data, 2)
			return &metadomain.AudienceUsersResult{NumReceived: 2}, nil
		})

	result, err := service.ImportMembers(&domain.AudienceImportRequest{
		AudienceID:    "aud_1",
		ColumnMapping: map[int]string{0: "EMAIL"},
		CSV:           "ana@email.com\nbeto@email.com\n",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsImported)
	assert.Equal(t, 1, result.Batches)
}

func TestService_ImportMembers_ErroDoGraphInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaAudiencer(ctrl)
	service := NewService(mockMeta)

	mockMeta.EXPECT().
		AddAudienceUsers("aud_1", gomock.Any()).
		Return(nil, errors.New("erro do graph"))

	result, err := service.ImportMembers(&domain.AudienceImportRequest{
		AudienceID:    "aud_1",
		ColumnMapping: map[int]string{0: "EMAIL"},
		CSV:           "ana@email.com\n",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}
