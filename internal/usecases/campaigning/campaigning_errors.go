package campaigning

import "errors"

var (
	ErrMissingName      = errors.New("nome é obrigatório")
	ErrMissingObjective = errors.New("objetivo da campanha é obrigatório")
	ErrMissingCampaign  = errors.New("campanha é obrigatória para o conjunto de anúncios")
	ErrMissingAdSet     = errors.New("conjunto de anúncios é obrigatório para o anúncio")
	ErrMissingCreative  = errors.New("criativo é obrigatório para o anúncio")
	ErrInvalidStatus    = errors.New("status inválido")
	ErrDraftNotFound    = errors.New("rascunho não encontrado")
)
