package metaclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

// UploadAdImage envia os bytes da imagem para /adimages via multipart.
// O Graph devolve as imagens indexadas pelo nome do arquivo.
func (c *MetaClient) UploadAdImage(accountID, filename string, data []byte) (*metadomain.UploadedImage, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("filename", filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("erro ao escrever bytes da imagem: %w", err)
	}

	if err := writer.WriteField("access_token", c.Cfg.Meta.AccessToken); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/act_%s/adimages", c.Cfg.Meta.URL, accountID)

	req, err := http.NewRequest(http.MethodPost, endpoint, &buf)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de upload")
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar imagem para o Meta")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var uploadResp metadomain.UploadImageResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de upload")
		return nil, err
	}

	image, ok := uploadResp.Images[filename]
	if !ok {
		return nil, fmt.Errorf("resposta de upload não contém a imagem %q", filename)
	}

	if image.Name == "" {
		image.Name = filename
	}

	return &image, nil
}

type responseCreativeList struct {
	Data   []metadomain.AdCreative `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// ListAdCreatives busca os criativos da conta
func (c *MetaClient) ListAdCreatives(accountID string) ([]metadomain.AdCreative, error) {
	params := url.Values{}
	params.Add("fields", "id,name,title,body,image_hash,thumbnail_url,status")
	params.Add("limit", "100")

	var response responseCreativeList
	if err := c.get(fmt.Sprintf("act_%s/adcreatives", accountID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
