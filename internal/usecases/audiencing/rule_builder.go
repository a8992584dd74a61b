package audiencing

import (
	"encoding/json"
	"fmt"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	defaultRetentionDays = 30
	maxRetentionDays     = 180

	secondsPerDay = 86400
)

// BuildCreateParams deriva os parâmetros de criação no Graph a partir do
// estado do formulário. É uma função pura: toda a validação acontece aqui,
// antes de qualquer chamada de rede, e o payload é construído de uma vez só
// em vez de ser mutado campo a campo.
func BuildCreateParams(form *domain.AudienceForm) (*metadomain.CreateAudienceParams, error) {
	retention, err := resolveRetention(form)
	if err != nil {
		return nil, err
	}

	params := &metadomain.CreateAudienceParams{
		Name:        form.Name,
		Description: form.Description,
	}

	if params.Name == "" {
		params.Name = DeriveName(form)
	}

	switch form.Subtype {
	case domain.AudienceSubtypeWebsite:
		if form.PixelID == "" {
			return nil, newValidationError("pixel_id", ErrMissingPixel)
		}
		params.Subtype = string(domain.AudienceSubtypeWebsite)
		params.Rule = serializeRule(websiteRule(form.PixelID, retention))

	case domain.AudienceSubtypeEngagement:
		if form.PageID == "" {
			return nil, newValidationError("page_id", ErrMissingPage)
		}
		// O Graph rejeita o campo subtype para audiências de engajamento:
		// o campo fica ausente e o tipo é inferido da regra.
		params.Rule = serializeRule(pageEventRule(form.PageID, "page_engaged", retention))

	case domain.AudienceSubtypeLeadAd:
		if form.PageID == "" {
			return nil, newValidationError("page_id", ErrMissingPage)
		}
		// Mesma restrição do Graph que se aplica a audiências de engajamento.
		params.Rule = serializeRule(pageEventRule(form.PageID, "lead_generation_submitted", retention))

	case domain.AudienceSubtypeVideo:
		if form.PageID == "" {
			return nil, newValidationError("page_id", ErrMissingPage)
		}
		params.Subtype = string(domain.AudienceSubtypeVideo)
		params.Rule = serializeRule(videoRule(form.PageID, retention))

	case domain.AudienceSubtypeApp:
		if form.AppID == "" {
			return nil, newValidationError("app_id", ErrMissingApp)
		}
		params.Subtype = string(domain.AudienceSubtypeApp)
		params.Rule = serializeRule(appRule(form.AppID, retention))

	case domain.AudienceSubtypeCustom:
		params.Subtype = string(domain.AudienceSubtypeCustom)
		params.CustomerFileSource = "USER_PROVIDED_ONLY"

	default:
		return nil, newValidationError("subtype", ErrUnknownSubtype)
	}

	return params, nil
}

// DeriveName recalcula o nome sugerido a partir dos campos do formulário.
// Só é usado quando a requisição não traz um nome explícito: um nome
// editado pelo usuário sempre prevalece.
func DeriveName(form *domain.AudienceForm) string {
	var source, criteria string

	switch form.Subtype {
	case domain.AudienceSubtypeWebsite:
		source, criteria = "Site", "Visitantes"
	case domain.AudienceSubtypeEngagement:
		source, criteria = "Página", "Engajamento"
	case domain.AudienceSubtypeLeadAd:
		source, criteria = "Página", "Lead Ads"
	case domain.AudienceSubtypeVideo:
		source, criteria = "Página", "Vídeos assistidos"
	case domain.AudienceSubtypeApp:
		source, criteria = "App", "Usuários ativos"
	case domain.AudienceSubtypeCustom:
		return "Lista - Clientes"
	default:
		return ""
	}

	retention := form.RetentionDays
	if retention <= 0 {
		retention = defaultRetentionDays
	}

	return fmt.Sprintf("%s - %s - %dD", source, criteria, retention)
}

func resolveRetention(form *domain.AudienceForm) (int64, error) {
	if form.Subtype == domain.AudienceSubtypeCustom {
		// Listas de clientes não têm janela de retenção
		return 0, nil
	}

	days := form.RetentionDays
	if days == 0 {
		days = defaultRetentionDays
	}
	if days < 0 || days > maxRetentionDays {
		return 0, newValidationError("retention_days", ErrInvalidRetention)
	}

	return int64(days) * secondsPerDay, nil
}

func websiteRule(pixelID string, retentionSeconds int64) *metadomain.AudienceRule {
	return inclusionRule(metadomain.RuleEntry{
		EventSources:     []metadomain.EventSource{{ID: pixelID, Type: "pixel"}},
		RetentionSeconds: retentionSeconds,
		Filter: &metadomain.RuleFilter{
			Operator: "and",
			Filters: []metadomain.RuleClause{
				{Field: "url", Operator: "i_contains", Value: ""},
			},
		},
	})
}

func pageEventRule(pageID, event string, retentionSeconds int64) *metadomain.AudienceRule {
	return inclusionRule(metadomain.RuleEntry{
		EventSources:     []metadomain.EventSource{{ID: pageID, Type: "page"}},
		RetentionSeconds: retentionSeconds,
		Filter: &metadomain.RuleFilter{
			Operator: "and",
			Filters: []metadomain.RuleClause{
				{Field: "event", Operator: "eq", Value: event},
			},
		},
	})
}

func videoRule(pageID string, retentionSeconds int64) *metadomain.AudienceRule {
	return inclusionRule(metadomain.RuleEntry{
		EventSources:     []metadomain.EventSource{{ID: pageID, Type: "page"}},
		RetentionSeconds: retentionSeconds,
		Filter: &metadomain.RuleFilter{
			Operator: "and",
			Filters: []metadomain.RuleClause{
				{Field: "video_watched", Operator: ">=", Value: 3},
			},
		},
	})
}

func appRule(appID string, retentionSeconds int64) *metadomain.AudienceRule {
	return inclusionRule(metadomain.RuleEntry{
		EventSources:     []metadomain.EventSource{{ID: appID, Type: "app"}},
		RetentionSeconds: retentionSeconds,
		Filter: &metadomain.RuleFilter{
			Operator: "and",
			Filters: []metadomain.RuleClause{
				{Field: "event", Operator: "eq", Value: "fb_mobile_activate_app"},
			},
		},
	})
}

func inclusionRule(entry metadomain.RuleEntry) *metadomain.AudienceRule {
	return &metadomain.AudienceRule{
		Inclusions: metadomain.RuleSet{
			Operator: "or",
			Rules:    []metadomain.RuleEntry{entry},
		},
	}
}

func serializeRule(rule *metadomain.AudienceRule) string {
	// A estrutura da regra é fechada: a serialização nunca falha
	data, _ := json.Marshal(rule)
	return string(data)
}
