package domain

import "time"

type WorkspaceStatus string

const (
	WorkspaceStatusActive    WorkspaceStatus = "ACTIVE"
	WorkspaceStatusSuspended WorkspaceStatus = "SUSPENDED"
)

type Workspace struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Status           WorkspaceStatus `json:"status"`
	ActiveBusinessID *string         `json:"active_business_id"`
	AdAccountID      *string         `json:"ad_account_id"`
	PixelID          *string         `json:"pixel_id"`
	PageID           *string         `json:"page_id"`
	AppID            *string         `json:"app_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// UpdateWorkspaceRequest carrega apenas os campos que podem ser alterados
type UpdateWorkspaceRequest struct {
	ID               string  `json:"id"`
	Name             *string `json:"name"`
	ActiveBusinessID *string `json:"active_business_id"`
	AdAccountID      *string `json:"ad_account_id"`
	PixelID          *string `json:"pixel_id"`
	PageID           *string `json:"page_id"`
	AppID            *string `json:"app_id"`
}

type Member struct {
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	Active    bool      `json:"active"`
	JoinedAt  time.Time `json:"joined_at"`
	AvatarURL *string   `json:"avatar_url"`
}

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRevoked  InviteStatus = "REVOKED"
	InviteStatusExpired  InviteStatus = "EXPIRED"
)

type Invite struct {
	ID          string       `json:"id"`
	WorkspaceID string       `json:"workspace_id"`
	Email       string       `json:"email"`
	RoleID      int          `json:"role_id"`
	Token       string       `json:"-"`
	Status      InviteStatus `json:"status"`
	InvitedBy   int          `json:"invited_by"`
	ExpiresAt   time.Time    `json:"expires_at"`
	CreatedAt   time.Time    `json:"created_at"`
	AcceptedAt  *time.Time   `json:"accepted_at"`
}

// IsExpired considera expirado todo convite pendente cujo prazo já passou
func (i *Invite) IsExpired(now time.Time) bool {
	return i.Status == InviteStatusPending && now.After(i.ExpiresAt)
}

type ActivityEntry struct {
	ID          int64     `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      int       `json:"user_id"`
	UserName    string    `json:"user_name"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Ações registradas no log de atividades
const (
	ActivityCampaignCreated  = "campaign.created"
	ActivityCampaignPaused   = "campaign.paused"
	ActivityCampaignResumed  = "campaign.resumed"
	ActivityCampaignDeleted  = "campaign.deleted"
	ActivityAudienceCreated  = "audience.created"
	ActivityAudienceDeleted  = "audience.deleted"
	ActivityAudienceImported = "audience.imported"
	ActivityCreativeUploaded = "creative.uploaded"
	ActivityMemberInvited    = "member.invited"
	ActivityMemberRemoved    = "member.removed"
	ActivityInviteRevoked    = "invite.revoked"
	ActivitySettingsUpdated  = "workspace.settings_updated"
)
