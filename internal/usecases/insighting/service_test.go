package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func singleDayFilters(day time.Time) *domain.InsightFilters {
	d := day.Truncate(24 * time.Hour)
	return &domain.InsightFilters{StartDate: &d, EndDate: &d}
}

func testConfig() *config.Config {
	return &config.Config{
		InsightsCache: config.InsightsCache{
			TTLHours:      6,
			RetentionDays: 90,
		},
	}
}

func TestService_GetAccountMetrics_CacheFresco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	mockRepo := repomocks.NewMockInsightRepository(ctrl)
	service := NewService(testConfig(), mockMeta).WithCache(mockRepo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	cached := &domain.AccountMetrics{AccountID: "act_1", Spend: 150.5}

	// Linha fresca no cache: o Graph não é consultado
	mockRepo.EXPECT().
		GetByAccountIDAndDate("act_1", day).
		Return(&domain.InsightEntry{
			AccountID: "act_1",
			Date:      day,
			Metrics:   cached,
			UpdatedAt: time.Now().Add(-1 * time.Hour),
		}, nil)

	metrics, err := service.GetAccountMetrics("act_1", singleDayFilters(day))
	require.NoError(t, err)
	assert.Equal(t, cached, metrics)
}

func TestService_GetAccountMetrics_CacheExpiradoVaiAoGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	mockRepo := repomocks.NewMockInsightRepository(ctrl)
	service := NewService(testConfig(), mockMeta).WithCache(mockRepo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	fresh := &domain.AccountMetrics{AccountID: "act_1", Spend: 200}

	gomock.InOrder(
		mockRepo.EXPECT().
			GetByAccountIDAndDate("act_1", day).
			Return(&domain.InsightEntry{
				AccountID: "act_1",
				Date:      day,
				Metrics:   &domain.AccountMetrics{Spend: 1},
				UpdatedAt: time.Now().Add(-48 * time.Hour),
			}, nil),
		mockMeta.EXPECT().
			GetAccountMetrics("act_1", gomock.Any()).
			Return(fresh, nil),
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.InsightEntry) error {
				assert.Equal(t, "act_1", entry.AccountID)
				assert.Equal(t, fresh, entry.Metrics)
				return nil
			}),
	)

	metrics, err := service.GetAccountMetrics("act_1", singleDayFilters(day))
	require.NoError(t, err)
	assert.Equal(t, fresh, metrics)
}

func TestService_GetAccountMetrics_PeriodoNaoPassaPeloCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	mockRepo := repomocks.NewMockInsightRepository(ctrl)
	service := NewService(testConfig(), mockMeta).WithCache(mockRepo)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{StartDate: &start, EndDate: &end}

	expected := &domain.AccountMetrics{AccountID: "act_1"}
	mockMeta.EXPECT().
		GetAccountMetrics("act_1", filters).
		Return(expected, nil)

	metrics, err := service.GetAccountMetrics("act_1", filters)
	require.NoError(t, err)
	assert.Equal(t, expected, metrics)
}

func TestService_GetAccountMetrics_ValidacaoDeFiltros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	service := NewService(testConfig(), mockMeta)

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *domain.InsightFilters
	}{
		{name: "Sem filtros"},
		{
			name:    "Só data inicial",
			filters: &domain.InsightFilters{StartDate: &start},
		},
		{
			name:    "Data final antes da inicial",
			filters: &domain.InsightFilters{StartDate: &start, EndDate: &end},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := service.GetAccountMetrics("act_1", tt.filters)
			assert.Error(t, err)
			assert.Nil(t, metrics)
		})
	}
}

func TestService_GetAccountMetrics_PresetDispensaDatas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	service := NewService(testConfig(), mockMeta)

	filters := &domain.InsightFilters{Preset: "last_7d"}
	mockMeta.EXPECT().
		GetAccountMetrics("act_1", filters).
		Return(&domain.AccountMetrics{}, nil)

	_, err := service.GetAccountMetrics("act_1", filters)
	assert.NoError(t, err)
}

func TestService_PruneCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	mockRepo := repomocks.NewMockInsightRepository(ctrl)
	service := NewService(testConfig(), mockMeta).WithCache(mockRepo)

	mockRepo.EXPECT().DeleteOlderThan(90).Return(int64(12), nil)

	removed, err := service.PruneCache()
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
}

func TestService_PruneCache_SemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaInsighter(ctrl)
	service := NewService(testConfig(), mockMeta)

	removed, err := service.PruneCache()
	require.NoError(t, err)
	assert.Zero(t, removed)
}
