package workspacing

import "errors"

var (
	ErrWorkspaceNotFound   = errors.New("workspace não encontrado")
	ErrMissingName         = errors.New("nome do workspace é obrigatório")
	ErrMissingEmail        = errors.New("email do convidado é obrigatório")
	ErrInvalidRole         = errors.New("perfil de acesso inválido")
	ErrInviteNotFound      = errors.New("convite não encontrado")
	ErrInviteExpired       = errors.New("convite expirado")
	ErrInviteNotPending    = errors.New("convite já utilizado ou revogado")
	ErrMemberNotFound      = errors.New("membro não encontrado no workspace")
	ErrLastAdmin           = errors.New("não é possível remover o último administrador")
	ErrPendingInviteExists = errors.New("já existe convite pendente para este email")
)
