package audiencing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func TestBuildCreateParams_Website(t *testing.T) {
	form := &domain.AudienceForm{
		Name:          "Visitantes do site",
		Subtype:       domain.AudienceSubtypeWebsite,
		PixelID:       "px_123",
		RetentionDays: 30,
	}

	params, err := BuildCreateParams(form)
	require.NoError(t, err)

	assert.Equal(t, "Visitantes do site", params.Name)
	assert.Equal(t, "WEBSITE", params.Subtype)
	assert.Empty(t, params.CustomerFileSource)

	var rule metadomain.AudienceRule
	require.NoError(t, json.Unmarshal([]byte(params.Rule), &rule))

	require.Len(t, rule.Inclusions.Rules, 1)
	entry := rule.Inclusions.Rules[0]
	assert.Equal(t, "px_123", entry.EventSources[0].ID)
	assert.Equal(t, "pixel", entry.EventSources[0].Type)

	// 30 dias em segundos
	assert.Equal(t, int64(2592000), entry.RetentionSeconds)

	require.NotNil(t, entry.Filter)
	require.Len(t, entry.Filter.Filters, 1)
	assert.Equal(t, "url", entry.Filter.Filters[0].Field)
	assert.Equal(t, "i_contains", entry.Filter.Filters[0].Operator)
	assert.Equal(t, "", entry.Filter.Filters[0].Value)
}

func TestBuildCreateParams_SubtypeAbsenteParaEngajamento(t *testing.T) {
	tests := []struct {
		name    string
		subtype domain.AudienceSubtype
		event   string
	}{
		{
			name:    "Engajamento de página não envia subtype",
			subtype: domain.AudienceSubtypeEngagement,
			event:   "page_engaged",
		},
		{
			name:    "Lead ad não envia subtype",
			subtype: domain.AudienceSubtypeLeadAd,
			event:   "lead_generation_submitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := &domain.AudienceForm{
				Name:          "Engajados",
				Subtype:       tt.subtype,
				PageID:        "pg_1",
				RetentionDays: 60,
			}

			params, err := BuildCreateParams(form)
			require.NoError(t, err)

			// O campo subtype precisa estar ausente do JSON enviado ao Graph
			assert.Empty(t, params.Subtype)
			serialized, err := json.Marshal(params)
			require.NoError(t, err)
			assert.NotContains(t, string(serialized), `"subtype"`)

			var rule metadomain.AudienceRule
			require.NoError(t, json.Unmarshal([]byte(params.Rule), &rule))
			entry := rule.Inclusions.Rules[0]
			assert.Equal(t, "pg_1", entry.EventSources[0].ID)
			assert.Equal(t, "page", entry.EventSources[0].Type)
			assert.Equal(t, tt.event, entry.Filter.Filters[0].Value)
		})
	}
}

func TestBuildCreateParams_Video(t *testing.T) {
	form := &domain.AudienceForm{
		Name:          "Assistiram vídeos",
		Subtype:       domain.AudienceSubtypeVideo,
		PageID:        "pg_9",
		RetentionDays: 14,
	}

	params, err := BuildCreateParams(form)
	require.NoError(t, err)

	var rule metadomain.AudienceRule
	require.NoError(t, json.Unmarshal([]byte(params.Rule), &rule))

	clause := rule.Inclusions.Rules[0].Filter.Filters[0]
	assert.Equal(t, "video_watched", clause.Field)
	assert.Equal(t, ">=", clause.Operator)
	assert.Equal(t, float64(3), clause.Value)
}

func TestBuildCreateParams_App(t *testing.T) {
	form := &domain.AudienceForm{
		Name:    "Usuários do app",
		Subtype: domain.AudienceSubtypeApp,
		AppID:   "app_7",
	}

	params, err := BuildCreateParams(form)
	require.NoError(t, err)
	assert.Equal(t, "APP", params.Subtype)

	var rule metadomain.AudienceRule
	require.NoError(t, json.Unmarshal([]byte(params.Rule), &rule))

	entry := rule.Inclusions.Rules[0]
	assert.Equal(t, "app", entry.EventSources[0].Type)
	assert.Equal(t, "fb_mobile_activate_app", entry.Filter.Filters[0].Value)

	// Sem retenção no formulário, aplica a janela padrão de 30 dias
	assert.Equal(t, int64(2592000), entry.RetentionSeconds)
}

func TestBuildCreateParams_Custom(t *testing.T) {
	form := &domain.AudienceForm{
		Name:    "Lista de clientes",
		Subtype: domain.AudienceSubtypeCustom,
	}

	params, err := BuildCreateParams(form)
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM", params.Subtype)
	assert.Equal(t, "USER_PROVIDED_ONLY", params.CustomerFileSource)
	assert.Empty(t, params.Rule)
}

func TestBuildCreateParams_ValidacaoAntesDaRede(t *testing.T) {
	tests := []struct {
		name  string
		form  *domain.AudienceForm
		field string
	}{
		{
			name:  "Site sem pixel",
			form:  &domain.AudienceForm{Subtype: domain.AudienceSubtypeWebsite},
			field: "pixel_id",
		},
		{
			name:  "Engajamento sem página",
			form:  &domain.AudienceForm{Subtype: domain.AudienceSubtypeEngagement},
			field: "page_id",
		},
		{
			name:  "Lead ad sem página",
			form:  &domain.AudienceForm{Subtype: domain.AudienceSubtypeLeadAd},
			field: "page_id",
		},
		{
			name:  "Vídeo sem página",
			form:  &domain.AudienceForm{Subtype: domain.AudienceSubtypeVideo},
			field: "page_id",
		},
		{
			name:  "App sem app id",
			form:  &domain.AudienceForm{Subtype: domain.AudienceSubtypeApp},
			field: "app_id",
		},
		{
			name:  "Subtipo desconhecido",
			form:  &domain.AudienceForm{Subtype: "BANANA"},
			field: "subtype",
		},
		{
			name: "Retenção acima do limite",
			form: &domain.AudienceForm{
				Subtype:       domain.AudienceSubtypeWebsite,
				PixelID:       "px_1",
				RetentionDays: 365,
			},
			field: "retention_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := BuildCreateParams(tt.form)
			assert.Nil(t, params)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name     string
		form     *domain.AudienceForm
		expected string
	}{
		{
			name: "Site com retenção explícita",
			form: &domain.AudienceForm{
				Subtype:       domain.AudienceSubtypeWebsite,
				RetentionDays: 90,
			},
			expected: "Site - Visitantes - 90D",
		},
		{
			name: "Engajamento usa retenção padrão",
			form: &domain.AudienceForm{
				Subtype: domain.AudienceSubtypeEngagement,
			},
			expected: "Página - Engajamento - 30D",
		},
		{
			name: "Lista de clientes não tem retenção",
			form: &domain.AudienceForm{
				Subtype: domain.AudienceSubtypeCustom,
			},
			expected: "Lista - Clientes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveName(tt.form))
		})
	}
}

func TestBuildCreateParams_NomeExplicitoPrevalece(t *testing.T) {
	form := &domain.AudienceForm{
		Name:          "Meu nome editado",
		Subtype:       domain.AudienceSubtypeWebsite,
		PixelID:       "px_1",
		RetentionDays: 7,
	}

	params, err := BuildCreateParams(form)
	require.NoError(t, err)
	assert.Equal(t, "Meu nome editado", params.Name)

	form.Name = ""
	params, err = BuildCreateParams(form)
	require.NoError(t, err)
	assert.Equal(t, "Site - Visitantes - 7D", params.Name)
}
