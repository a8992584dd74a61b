package audiencing

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"io"
	"sort"
	"strings"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Tamanho máximo de lote aceito pelo endpoint /users do Graph
const importBatchSize = 5000

// Chaves de schema aceitas no mapeamento de colunas
var supportedSchemaKeys = map[string]bool{
	"EMAIL":   true,
	"PHONE":   true,
	"FN":      true,
	"LN":      true,
	"CT":      true,
	"ST":      true,
	"ZIP":     true,
	"COUNTRY": true,
}

// parseImport lê o CSV e produz os lotes hasheados prontos para envio.
// Campos entre aspas podem conter vírgulas e aspas escapadas; linhas sem
// nenhum valor mapeável são puladas e contabilizadas.
func parseImport(req *domain.AudienceImportRequest) ([]*metadomain.AudienceUsersPayload, *domain.AudienceImportResult, error) {
	if strings.TrimSpace(req.CSV) == "" {
		return nil, nil, newValidationError("csv", ErrEmptyImport)
	}

	if len(req.ColumnMapping) == 0 {
		return nil, nil, newValidationError("column_mapping", ErrNoMappedColumns)
	}

	schema, columns, err := resolveSchema(req.ColumnMapping)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(strings.NewReader(req.CSV))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &domain.AudienceImportResult{AudienceID: req.AudienceID}

	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		if first && req.HasHeader {
			first = false
			continue
		}
		first = false

		result.RowsRead++

		row := make([]string, len(columns))
		empty := true
		for i, col := range columns {
			if col >= len(record) {
				continue
			}

			value := normalizeValue(schema[i], record[col])
			if value == "" {
				continue
			}

			row[i] = hashValue(value)
			empty = false
		}

		if empty {
			result.RowsSkipped++
			continue
		}

		rows = append(rows, row)
		result.RowsImported++
	}

	if result.RowsImported == 0 {
		return nil, nil, newValidationError("csv", ErrEmptyImport)
	}

	var batches []*metadomain.AudienceUsersPayload
	for start := 0; start < len(rows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		batches = append(batches, &metadomain.AudienceUsersPayload{
			Schema: schema,
			Data:   rows[start:end],
		})
	}

	result.Batches = len(batches)
	return batches, result, nil
}

// resolveSchema ordena o mapeamento por índice de coluna para que schema e
// dados fiquem alinhados posição a posição.
func resolveSchema(mapping map[int]string) ([]string, []int, error) {
	columns := make([]int, 0, len(mapping))
	for col := range mapping {
		columns = append(columns, col)
	}
	sort.Ints(columns)

	schema := make([]string, 0, len(columns))
	for _, col := range columns {
		key := strings.ToUpper(strings.TrimSpace(mapping[col]))
		if !supportedSchemaKeys[key] {
			return nil, nil, newValidationError("column_mapping", ErrUnsupportedSchemaKey)
		}
		schema = append(schema, key)
	}

	return schema, columns, nil
}

// normalizeValue aplica a normalização exigida pelo Meta antes do hash
func normalizeValue(key, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	switch key {
	case "PHONE":
		return digitsOnly(value)
	default:
		return strings.ToLower(value)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hashValue(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
