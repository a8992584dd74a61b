package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func GetLongLivedToken(shortLivedToken, appID, appSecret, baseURL, version string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/%s/oauth/access_token", baseURL, version)

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	body, err := tokenGet(endpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// GetDebugTokenInfo consulta /debug_token para inspecionar validade, escopos
// e expiração do token informado
func GetDebugTokenInfo(token, appID, appSecret, baseURL, version string) (*metadomain.DebugTokenData, error) {
	endpoint := fmt.Sprintf("%s/%s/debug_token", baseURL, version)

	params := url.Values{}
	params.Add("input_token", token)
	params.Add("access_token", fmt.Sprintf("%s|%s", appID, appSecret))

	body, err := tokenGet(endpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar debug_token: %w", err)
	}

	var debugResp metadomain.DebugTokenResponse
	if err := json.Unmarshal(body, &debugResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de debug_token: %w", err)
	}

	return &debugResp.Data, nil
}

// CheckTokenValidity devolve se o token informado ainda é aceito pelo Graph
func CheckTokenValidity(token, appID, appSecret, baseURL, version string) (bool, error) {
	data, err := GetDebugTokenInfo(token, appID, appSecret, baseURL, version)
	if err != nil {
		return false, err
	}
	return data.IsValid, nil
}

// CalculateTokenExpiration converte o expires_in da resposta em uma data
// absoluta, com folga de um dia para renovar antes do limite
func CalculateTokenExpiration(expiresIn int64) time.Time {
	if expiresIn <= 0 {
		// Tokens de longa duração sem expires_in costumam valer ~60 dias
		return time.Now().Add(59 * 24 * time.Hour)
	}
	return time.Now().Add(time.Duration(expiresIn) * time.Second).Add(-24 * time.Hour)
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func tokenGet(requestURL string) ([]byte, error) {
	resp, err := httpClient.Get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na chamada de token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
