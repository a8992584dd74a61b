package handler

import (
	"net/http"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// writeGraphError repassa ao cliente o status HTTP devolvido pela Graph API.
// Retorna false quando o erro não veio do Meta, para o handler tratar o caso.
func writeGraphError(w http.ResponseWriter, err error) bool {
	var graphErr *metadomain.GraphError
	if !errors.As(err, &graphErr) {
		return false
	}

	if graphErr.IsTokenExpired() {
		apiErrors.WriteError(w, apiErrors.ErrMetaTokenExpired, "Token de acesso do Meta expirado", nil)
		return true
	}

	message := graphErr.Details.UserMessage
	if message == "" {
		message = graphErr.Details.Message
	}

	apiErrors.WriteErrorWithStatus(w, graphErr.StatusCode, apiErrors.ErrGraphAPI, message, map[string]any{
		"type":       graphErr.Details.Type,
		"code":       graphErr.Details.Code,
		"fbtrace_id": graphErr.Details.FBTraceID,
	})
	return true
}
