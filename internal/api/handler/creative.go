package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/creative"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// Limite do corpo multipart aceito no upload de imagens
const maxUploadBodySize = 32 << 20

// UploadImage recebe uma imagem via multipart e a envia para a biblioteca da conta
func UploadImage(service creative.Creativer, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UploadImage")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBodySize)
		if err := r.ParseMultipartForm(maxUploadBodySize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao processar o formulário de upload", nil)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo de imagem não fornecido", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("Erro ao ler o arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}

		resp, err := service.UploadImage(accountID, header.Filename, data)
		if err != nil {
			logger.WithError(err).WithField("filename", header.Filename).Error("Erro ao enviar imagem")
			writeCreativeError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityCreativeUploaded, "creative", resp.Hash, header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

// ListCreatives lista os criativos de anúncio da conta
func ListCreatives(service creative.Creativer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		creatives, err := service.ListCreatives(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar criativos")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar criativos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(creatives)
	}
}

// writeCreativeError traduz os erros do serviço de criativos para a resposta HTTP
func writeCreativeError(w http.ResponseWriter, err error) {
	if writeGraphError(w, err) {
		return
	}

	switch {
	case errors.Is(err, creative.ErrEmptyImage):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, creative.ErrImageTooLarge),
		errors.Is(err, creative.ErrUnsupportedImage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o Meta", nil)
	}
}
