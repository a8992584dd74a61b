package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// Limite padrão de resultados das buscas no diretório do Meta
const defaultSearchLimit = 25

// DirectoryService expõe as consultas de diretório da Graph API usadas nos
// formulários do painel (portfólios, segmentação e biblioteca de anúncios)
type DirectoryService interface {
	ListBusinesses() ([]domain.Business, error)
	SearchTargeting(kind, query string, limit int) ([]domain.TargetingOption, error)
	SearchAdLibrary(query, country string, limit int) ([]domain.ArchivedAd, error)
}

// ListBusinesses lista os portfólios empresariais do usuário conectado
func ListBusinesses(service DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businesses, err := service.ListBusinesses()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar portfólios")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar portfólios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(businesses)
	}
}

// SearchTargeting busca opções de segmentação (interesses ou geolocalização)
func SearchTargeting(service DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Termo de busca não fornecido", nil)
			return
		}

		kind := r.URL.Query().Get("type")
		if kind == "" {
			kind = "adinterest"
		}

		options, err := service.SearchTargeting(kind, query, searchLimit(r))
		if err != nil {
			logrus.WithError(err).WithField("query", query).Error("Erro na busca de segmentação")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro na busca de segmentação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(options)
	}
}

// SearchAdLibrary busca anúncios públicos na biblioteca de anúncios do Meta
func SearchAdLibrary(service DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Termo de busca não fornecido", nil)
			return
		}

		country := r.URL.Query().Get("country")
		if country == "" {
			country = "BR"
		}

		ads, err := service.SearchAdLibrary(query, country, searchLimit(r))
		if err != nil {
			logrus.WithError(err).WithField("query", query).Error("Erro na busca da biblioteca de anúncios")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro na busca da biblioteca de anúncios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ads)
	}
}

func searchLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		return defaultSearchLimit
	}
	return limit
}
