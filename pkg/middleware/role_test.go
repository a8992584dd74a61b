package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/recurso", nil)
	ctx := context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{
		UserID:     10,
		UserRoleID: roleID,
	})
	return req.WithContext(ctx)
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		roleID     int
		wantStatus int
		wantCode   string
	}{
		{
			name:       "administrador acessa rota restrita",
			middleware: AdminOnly(),
			roleID:     RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "gestor não acessa rota de administrador",
			middleware: AdminOnly(),
			roleID:     RoleManager,
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "analista não acessa rota de administrador",
			middleware: AdminOnly(),
			roleID:     RoleAnalyst,
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "gestor acessa rota de escrita",
			middleware: AdminOrManager(),
			roleID:     RoleManager,
			wantStatus: http.StatusOK,
		},
		{
			name:       "analista não acessa rota de escrita",
			middleware: AdminOrManager(),
			roleID:     RoleAnalyst,
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "analista acessa rota de leitura",
			middleware: AllRoles(),
			roleID:     RoleAnalyst,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := tt.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, requestWithRole(tt.roleID))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, handlerCalled)

			if tt.wantCode != "" {
				apiErr := decodeAPIError(t, recorder)
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestRoleMiddleware_SemAutenticacao(t *testing.T) {
	handler := AllRoles()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado sem claims no contexto")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/recurso", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	apiErr := decodeAPIError(t, recorder)
	assert.Equal(t, apiErrors.ErrInvalidToken, apiErr.Code)
}
