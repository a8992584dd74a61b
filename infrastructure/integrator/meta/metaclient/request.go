package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

// errTokenRenewed sinaliza que o token expirou durante a chamada e já foi
// renovado; a requisição deve ser repetida uma única vez
var errTokenRenewed = errors.New("token expirado e renovado, repetir requisição")

var httpClient = &http.Client{Timeout: 30 * time.Second}

// get faz uma chamada GET autenticada ao Graph e decodifica o resultado em out
func (c *MetaClient) get(path string, params url.Values, out any) error {
	return c.call(http.MethodGet, path, params, out)
}

// postForm faz uma chamada POST form-encoded autenticada ao Graph
func (c *MetaClient) postForm(path string, params url.Values, out any) error {
	return c.call(http.MethodPost, path, params, out)
}

// del faz uma chamada DELETE autenticada ao Graph
func (c *MetaClient) del(path string, out any) error {
	return c.call(http.MethodDelete, path, url.Values{}, out)
}

func (c *MetaClient) call(method, path string, params url.Values, out any) error {
	err := c.doCall(method, path, params, out)
	if errors.Is(err, errTokenRenewed) {
		// Token renovado no meio da chamada, repetir uma vez
		err = c.doCall(method, path, params, out)
	}
	return err
}

func (c *MetaClient) doCall(method, path string, params url.Values, out any) error {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, strings.TrimPrefix(path, "/"))

	var req *http.Request
	var err error
	if method == http.MethodPost {
		req, err = http.NewRequest(method, endpoint, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequest(method, endpoint+"?"+params.Encode(), nil)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// handleResponse lê o corpo e converte respostas não-2xx no erro tipado do
// Graph. Quando detecta token expirado, dispara a renovação e devolve
// errTokenRenewed para a chamada ser repetida.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, fmt.Errorf("meta api: status %d, resposta não estruturada: %s", resp.StatusCode, string(body))
	}

	if errorResp.IsTokenExpired() {
		logrus.Warn("Token do Meta expirado detectado na resposta, iniciando renovação")
		if err := c.RefreshToken(); err != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", err)
		}
		return nil, errTokenRenewed
	}

	return nil, &metadomain.GraphError{
		StatusCode: resp.StatusCode,
		Details:    errorResp.Error,
	}
}
