package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func TestWriteGraphError(t *testing.T) {
	t.Run("repassa status, código e fbtrace_id do Graph", func(t *testing.T) {
		graphErr := &metadomain.GraphError{
			StatusCode: http.StatusForbidden,
			Details: metadomain.ErrorDetails{
				Message:   "(#200) Permissions error",
				Type:      "OAuthException",
				Code:      200,
				FBTraceID: "AbCdEf123",
			},
		}

		recorder := httptest.NewRecorder()
		handled := writeGraphError(recorder, errors.Wrap(graphErr, "erro ao criar campanha"))

		assert.True(t, handled)
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrGraphAPI, apiErr.Code)
		assert.Equal(t, "(#200) Permissions error", apiErr.Message)

		details, ok := apiErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "OAuthException", details["type"])
		assert.Equal(t, float64(200), details["code"])
		assert.Equal(t, "AbCdEf123", details["fbtrace_id"])
	})

	t.Run("mensagem amigável tem prioridade quando presente", func(t *testing.T) {
		graphErr := &metadomain.GraphError{
			StatusCode: http.StatusBadRequest,
			Details: metadomain.ErrorDetails{
				Message:     "Invalid parameter",
				UserMessage: "O orçamento diário é muito baixo",
				Code:        100,
			},
		}

		recorder := httptest.NewRecorder()
		assert.True(t, writeGraphError(recorder, graphErr))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
		assert.Equal(t, "O orçamento diário é muito baixo", apiErr.Message)
	})

	t.Run("código 190 vira erro de token expirado", func(t *testing.T) {
		graphErr := &metadomain.GraphError{
			StatusCode: http.StatusUnauthorized,
			Details: metadomain.ErrorDetails{
				Message: "Error validating access token",
				Type:    "OAuthException",
				Code:    190,
			},
		}

		recorder := httptest.NewRecorder()
		assert.True(t, writeGraphError(recorder, graphErr))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrMetaTokenExpired, apiErr.Code)
	})

	t.Run("erro que não veio do Graph não é tratado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handled := writeGraphError(recorder, errors.New("falha de rede"))

		assert.False(t, handled)
		assert.Empty(t, recorder.Body.Bytes())
	})
}
