package meta

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// debugTokenClient responde só a chamada de debug do token; os demais
// métodos do cliente não são usados por CheckConnection
type debugTokenClient struct {
	metaclient.Client
	data *metadomain.DebugTokenData
	err  error
}

func (c *debugTokenClient) DebugToken() (*metadomain.DebugTokenData, error) {
	return c.data, c.err
}

func newCheckConnectionIntegrator(data *metadomain.DebugTokenData, err error) *MetaIntegrator {
	return New(&config.Config{}, &debugTokenClient{data: data, err: err})
}

func TestMetaIntegrator_CheckConnection(t *testing.T) {
	t.Run("token válido deriva status ativo", func(t *testing.T) {
		integrator := newCheckConnectionIntegrator(&metadomain.DebugTokenData{
			AppID:   "app_1",
			IsValid: true,
			Scopes:  []string{"ads_read", "ads_management"},
		}, nil)

		status, err := integrator.CheckConnection("ws_1")
		require.NoError(t, err)

		assert.Equal(t, "ws_1", status.WorkspaceID)
		assert.Equal(t, domain.ConnectionStateActive, status.State)
		assert.Equal(t, "app_1", status.AppID)
		assert.Equal(t, []string{"ads_read", "ads_management"}, status.Scopes)
		assert.WithinDuration(t, time.Now(), status.LastCheckedAt, time.Minute)

		// Token sem prazo definido não tem data de expiração
		assert.Nil(t, status.TokenExpires)
	})

	t.Run("token inválido deriva status expirado", func(t *testing.T) {
		integrator := newCheckConnectionIntegrator(&metadomain.DebugTokenData{
			AppID:   "app_1",
			IsValid: false,
		}, nil)

		status, err := integrator.CheckConnection("ws_1")
		require.NoError(t, err)
		assert.Equal(t, domain.ConnectionStateExpired, status.State)
	})

	t.Run("expires_at preenche a data de expiração do token", func(t *testing.T) {
		expiresAt := time.Now().Add(48 * time.Hour).Unix()

		integrator := newCheckConnectionIntegrator(&metadomain.DebugTokenData{
			IsValid:   true,
			ExpiresAt: expiresAt,
		}, nil)

		status, err := integrator.CheckConnection("ws_1")
		require.NoError(t, err)

		require.NotNil(t, status.TokenExpires)
		assert.Equal(t, time.Unix(expiresAt, 0), *status.TokenExpires)
	})

	t.Run("erro do Graph é propagado", func(t *testing.T) {
		integrator := newCheckConnectionIntegrator(nil, errors.New("graph indisponível"))

		status, err := integrator.CheckConnection("ws_1")
		assert.Error(t, err)
		assert.Nil(t, status)
	})
}
