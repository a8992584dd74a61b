package campaigning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	mockMeta.EXPECT().
		ListCampaigns("act_1").
		Return([]domain.Campaign{{ID: "c1", Name: "Campanha 1"}}, nil)
	mockMeta.EXPECT().
		ListAudiences("act_1").
		Return([]domain.CustomAudience{{ID: "a1", Name: "Audiência 1"}}, nil)

	overview, err := service.Overview(context.Background(), "act_1")
	require.NoError(t, err)

	assert.Len(t, overview.Campaigns, 1)
	assert.Len(t, overview.Audiences, 1)
	assert.Equal(t, "c1", overview.Campaigns[0].ID)
	assert.Equal(t, "a1", overview.Audiences[0].ID)
}

func TestService_Overview_ErroEmUmaDasLeituras(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	mockMeta.EXPECT().
		ListCampaigns("act_1").
		Return([]domain.Campaign{}, nil).
		AnyTimes()
	mockMeta.EXPECT().
		ListAudiences("act_1").
		Return(nil, errors.New("erro do graph"))

	overview, err := service.Overview(context.Background(), "act_1")
	assert.Error(t, err)
	assert.Nil(t, overview)
}

func TestService_CreateCampaign_RecarregaColecao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	req := &domain.CreateCampaignRequest{
		Name:      "Nova campanha",
		Objective: "OUTCOME_SALES",
	}

	gomock.InOrder(
		mockMeta.EXPECT().CreateCampaign("act_1", req).Return("c_new", nil),
		mockMeta.EXPECT().ListCampaigns("act_1").Return([]domain.Campaign{
			{ID: "c_old"},
			{ID: "c_new"},
		}, nil),
	)

	campaigns, err := service.CreateCampaign("act_1", req)
	require.NoError(t, err)

	// A mutação devolve o estado recarregado da coleção
	assert.Len(t, campaigns, 2)
}

func TestService_CreateCampaign_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	_, err := service.CreateCampaign("act_1", &domain.CreateCampaignRequest{Objective: "OUTCOME_SALES"})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = service.CreateCampaign("act_1", &domain.CreateCampaignRequest{Name: "Campanha"})
	assert.ErrorIs(t, err, ErrMissingObjective)
}

func TestService_CreateAdSet_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	_, err := service.CreateAdSet("act_1", &domain.CreateAdSetRequest{Name: "Conjunto"})
	assert.ErrorIs(t, err, ErrMissingCampaign)
}

func TestService_CreateAd_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	_, err := service.CreateAd("act_1", &domain.CreateAdRequest{Name: "Anúncio", AdSetID: "as_1"})
	assert.ErrorIs(t, err, ErrMissingCreative)
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	mockMeta.EXPECT().UpdateObjectStatus("c1", "PAUSED").Return(nil)
	require.NoError(t, service.UpdateStatus("c1", domain.EntityStatusPaused))

	// Só pausa e reativação passam pela API de status
	assert.ErrorIs(t, service.UpdateStatus("c1", "ARCHIVED"), ErrInvalidStatus)
	assert.ErrorIs(t, service.UpdateStatus("c1", "banana"), ErrInvalidStatus)
}

func TestService_SaveDraft_GeraIDQuandoAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	mockDrafts.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(draft *domain.CampaignDraft) error {
			assert.NotEmpty(t, draft.ID)
			return nil
		})

	draft, err := service.SaveDraft(&domain.CampaignDraft{
		WorkspaceID: "ws_1",
		Name:        "Rascunho",
		Payload:     `{"objective":"OUTCOME_SALES"}`,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
}

func TestService_DeleteDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaCampaigner(ctrl)
	mockDrafts := repomocks.NewMockDraftRepository(ctrl)
	service := NewService(mockMeta, mockDrafts)

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "Exclusão com sucesso",
			setup: func() {
				gomock.InOrder(
					mockDrafts.EXPECT().GetByID("d1").Return(&domain.CampaignDraft{
						ID:          "d1",
						WorkspaceID: "ws_1",
					}, nil),
					mockDrafts.EXPECT().Delete("ws_1", "d1").Return(nil),
				)
			},
		},
		{
			name: "Rascunho inexistente",
			setup: func() {
				mockDrafts.EXPECT().GetByID("d1").Return(nil, nil)
			},
			wantErr: ErrDraftNotFound,
		},
		{
			name: "Rascunho de outro workspace",
			setup: func() {
				mockDrafts.EXPECT().GetByID("d1").Return(&domain.CampaignDraft{
					ID:          "d1",
					WorkspaceID: "ws_2",
				}, nil)
			},
			wantErr: ErrDraftNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.DeleteDraft("ws_1", "d1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
