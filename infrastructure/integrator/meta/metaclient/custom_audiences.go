package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type responseAudienceList struct {
	Data   []metadomain.CustomAudience `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

// ListCustomAudiences busca as audiências da conta (custom e lookalike)
func (c *MetaClient) ListCustomAudiences(accountID string) ([]metadomain.CustomAudience, error) {
	params := url.Values{}
	params.Add("fields", "id,name,subtype,description,approximate_count_lower_bound,delivery_status,operation_status,retention_days,time_created,lookalike_spec")
	params.Add("limit", "100")

	var response responseAudienceList
	if err := c.get(fmt.Sprintf("act_%s/customaudiences", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// CreateCustomAudience cria uma audiência a partir dos parâmetros já
// montados pelo construtor de regras. O corpo vai form-encoded, com a
// regra serializada em JSON no campo `rule`.
func (c *MetaClient) CreateCustomAudience(accountID string, audienceParams *metadomain.CreateAudienceParams) (*metadomain.CreatedObject, error) {
	params := url.Values{}
	params.Add("name", audienceParams.Name)

	// Subtype ausente para os subtipos que o Graph rejeita com o campo presente
	if audienceParams.Subtype != "" {
		params.Add("subtype", audienceParams.Subtype)
	}

	if audienceParams.Description != "" {
		params.Add("description", audienceParams.Description)
	}

	if audienceParams.CustomerFileSource != "" {
		params.Add("customer_file_source", audienceParams.CustomerFileSource)
	}

	if audienceParams.Rule != "" {
		params.Add("rule", audienceParams.Rule)
	}

	var created metadomain.CreatedObject
	if err := c.postForm(fmt.Sprintf("act_%s/customaudiences", accountID), params, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// CreateLookalikeAudience cria uma audiência lookalike a partir de uma origem
func (c *MetaClient) CreateLookalikeAudience(accountID, name string, spec *metadomain.LookalikeSpec) (*metadomain.CreatedObject, error) {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar lookalike_spec: %w", err)
	}

	params := url.Values{}
	params.Add("name", name)
	params.Add("subtype", "LOOKALIKE")
	params.Add("lookalike_spec", string(specJSON))

	var created metadomain.CreatedObject
	if err := c.postForm(fmt.Sprintf("act_%s/customaudiences", accountID), params, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteCustomAudience remove uma audiência pelo id
func (c *MetaClient) DeleteCustomAudience(audienceID string) error {
	return c.del(audienceID, nil)
}

// AddAudienceUsers envia um lote de membros hasheados para a audiência
func (c *MetaClient) AddAudienceUsers(audienceID string, payload *metadomain.AudienceUsersPayload) (*metadomain.AudienceUsersResult, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload de membros: %w", err)
	}

	params := url.Values{}
	params.Add("payload", string(payloadJSON))

	var result metadomain.AudienceUsersResult
	if err := c.postForm(fmt.Sprintf("%s/users", audienceID), params, &result); err != nil {
		return nil, err
	}

	if result.AudienceID == "" {
		result.AudienceID = audienceID
	}
	if result.NumReceived == 0 {
		result.NumReceived = len(payload.Data)
	}

	return &result, nil
}
