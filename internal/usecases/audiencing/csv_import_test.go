package audiencing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func sha(t *testing.T, s string) string {
	t.Helper()
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestParseImport_MapeamentoENormalizacao(t *testing.T) {
	req := &domain.AudienceImportRequest{
		AudienceID: "aud_1",
		HasHeader:  true,
		ColumnMapping: map[int]string{
			0: "EMAIL",
			1: "PHONE",
			2: "FN",
		},
		CSV: "email,telefone,nome\n" +
			"  Joao@Email.COM ,+55 (11) 99999-0000,João\n" +
			"maria@email.com,11 98888-1111,Maria\n",
	}

	batches, result, err := parseImport(req)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsRead)
	assert.Equal(t, 2, result.RowsImported)
	assert.Equal(t, 0, result.RowsSkipped)
	assert.Equal(t, 1, result.Batches)

	require.Len(t, batches, 1)
	batch := batches[0]
	assert.Equal(t, []string{"EMAIL", "PHONE", "FN"}, batch.Schema)
	require.Len(t, batch.Data, 2)

	// Email em minúsculas e sem espaços; telefone só dígitos
	assert.Equal(t, sha(t, "joao@email.com"), batch.Data[0][0])
	assert.Equal(t, sha(t, "5511999990000"), batch.Data[0][1])
	assert.Equal(t, sha(t, "joão"), batch.Data[0][2])
	assert.Equal(t, sha(t, "maria@email.com"), batch.Data[1][0])
}

func TestParseImport_CamposEntreAspas(t *testing.T) {
	req := &domain.AudienceImportRequest{
		AudienceID: "aud_1",
		HasHeader:  false,
		ColumnMapping: map[int]string{
			0: "LN",
			1: "EMAIL",
		},
		CSV: `"Silva, Junior",ana@email.com` + "\n" +
			`"Costa ""Neto""",beto@email.com` + "\n",
	}

	batches, result, err := parseImport(req)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsImported)
	require.Len(t, batches, 1)

	// Vírgula e aspas escapadas dentro do campo são preservadas
	assert.Equal(t, sha(t, "silva, junior"), batches[0].Data[0][0])
	assert.Equal(t, sha(t, `costa "neto"`), batches[0].Data[1][0])
}

func TestParseImport_LinhasSemValorMapeavelSaoPuladas(t *testing.T) {
	req := &domain.AudienceImportRequest{
		AudienceID: "aud_1",
		HasHeader:  false,
		ColumnMapping: map[int]string{
			0: "EMAIL",
		},
		CSV: "ana@email.com,11999990000\n" +
			",11988881111\n" +
			"   ,11977772222\n" +
			"beto@email.com,\n",
	}

	batches, result, err := parseImport(req)
	require.NoError(t, err)

	assert.Equal(t, 4, result.RowsRead)
	assert.Equal(t, 2, result.RowsImported)
	assert.Equal(t, 2, result.RowsSkipped)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].Data, 2)
}

func TestParseImport_LoteamentoRespeitaTamanhoMaximo(t *testing.T) {
	var b strings.Builder
	total := importBatchSize + 10
	for i := 0; i < total; i++ {
		b.WriteString("user")
		b.WriteString(strings.Repeat("x", i%3))
		b.WriteString("@email.com\n")
	}

	req := &domain.AudienceImportRequest{
		AudienceID:    "aud_1",
		HasHeader:     false,
		ColumnMapping: map[int]string{0: "EMAIL"},
		CSV:           b.String(),
	}

	batches, result, err := parseImport(req)
	require.NoError(t, err)

	assert.Equal(t, total, result.RowsImported)
	assert.Equal(t, 2, result.Batches)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Data, importBatchSize)
	assert.Len(t, batches[1].Data, 10)
}

func TestParseImport_Validacoes(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.AudienceImportRequest
	}{
		{
			name: "CSV vazio",
			req: &domain.AudienceImportRequest{
				ColumnMapping: map[int]string{0: "EMAIL"},
				CSV:           "   \n",
			},
		},
		{
			name: "Sem mapeamento de colunas",
			req: &domain.AudienceImportRequest{
				CSV: "ana@email.com\n",
			},
		},
		{
			name: "Chave de schema desconhecida",
			req: &domain.AudienceImportRequest{
				ColumnMapping: map[int]string{0: "CPF"},
				CSV:           "123\n",
			},
		},
		{
			name: "Só cabeçalho",
			req: &domain.AudienceImportRequest{
				HasHeader:     true,
				ColumnMapping: map[int]string{0: "EMAIL"},
				CSV:           "email\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches, result, err := parseImport(tt.req)
			assert.Error(t, err)
			assert.Nil(t, batches)
			assert.Nil(t, result)
		})
	}
}
