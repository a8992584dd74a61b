package audiencing

import (
	"errors"
	"fmt"
)

// Erros de validação do construtor de audiências
var (
	ErrMissingName          = errors.New("nome da audiência é obrigatório")
	ErrMissingPixel         = errors.New("pixel é obrigatório para audiências de site")
	ErrMissingPage          = errors.New("página é obrigatória para este tipo de audiência")
	ErrMissingApp           = errors.New("app é obrigatório para audiências de aplicativo")
	ErrInvalidRetention     = errors.New("janela de retenção inválida")
	ErrUnknownSubtype       = errors.New("subtipo de audiência desconhecido")
	ErrMissingOrigin        = errors.New("audiência de origem é obrigatória para lookalikes")
	ErrInvalidRatio         = errors.New("o alcance do lookalike deve estar entre 0.01 e 0.20")
	ErrEmptyImport          = errors.New("arquivo de importação vazio")
	ErrNoMappedColumns      = errors.New("nenhuma coluna do arquivo foi mapeada")
	ErrUnsupportedSchemaKey = errors.New("chave de schema não suportada")
)

// ValidationError associa o erro ao campo do formulário que o causou
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
