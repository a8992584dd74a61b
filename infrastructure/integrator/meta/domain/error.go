package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	UserTitle    string      `json:"error_user_title,omitempty"`
	UserMessage  string      `json:"error_user_msg,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// GraphError é o erro retornado para as camadas superiores quando o Meta
// responde com não-2xx. Preserva o status HTTP para ser repassado ao cliente.
type GraphError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *GraphError) Error() string {
	if e.Details.UserMessage != "" {
		return fmt.Sprintf("meta api: %s (%s)", e.Details.UserMessage, e.Details.Type)
	}
	return fmt.Sprintf("meta api: %s (code %d)", e.Details.Message, e.Details.Code)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsTokenExpired verifica se o erro do Graph indica token de acesso expirado
func (e *GraphError) IsTokenExpired() bool {
	resp := &ErrorResponse{Error: e.Details}
	return resp.IsTokenExpired()
}
