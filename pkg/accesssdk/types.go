package accesssdk

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_invite")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// IssueInviteRequest creates a new invite code bound to one email address.
type IssueInviteRequest struct {
	// IntendedEmail is the only address allowed to redeem the code
	IntendedEmail string `json:"intended_email"`

	// MaxUses is the redemption cap. Zero selects the default of 1.
	MaxUses int `json:"max_uses,omitempty"`

	// TTLSeconds is the code lifetime. Zero selects the server default.
	TTLSeconds int64 `json:"ttl_seconds,omitempty"`
}

// InviteResponse describes one invite code. Status is derived from the
// row's state at the time of the request.
type InviteResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	IntendedEmail string `json:"intended_email"`
	CreatedBy     string `json:"created_by"`
	Status        string `json:"status"`
	MaxUses       int    `json:"max_uses"`
	CurrentUses   int    `json:"current_uses"`
	ExpiresAt     int64  `json:"expires_at"`
	CreatedAt     int64  `json:"created_at"`
}

// ListInvitesResponse wraps the invite listing.
type ListInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// RedeemInviteRequest is the anonymous signup form. It is submitted
// form-encoded, not JSON, so the form tags are the wire names.
type RedeemInviteRequest struct {
	Code        string `json:"code"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// AccountResponse describes a provisioned account. The password hash never
// leaves the server.
type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	IsProtected bool   `json:"is_protected"`
	CreatedAt   int64  `json:"created_at"`
}

// RoleResponse reports the caller's current privilege flags, resolved fresh
// from storage on every request.
type RoleResponse struct {
	AccountID   string `json:"account_id"`
	IsAdmin     bool   `json:"is_admin"`
	IsProtected bool   `json:"is_protected"`
}

// RoleChangeResponse is one audit entry for an admin grant or revocation.
type RoleChangeResponse struct {
	ID        string `json:"id"`
	ActorID   string `json:"actor_id"`
	TargetID  string `json:"target_id"`
	OldValue  bool   `json:"old_value"`
	NewValue  bool   `json:"new_value"`
	CreatedAt int64  `json:"created_at"`
}

// RoleHistoryResponse wraps the audit listing for one account.
type RoleHistoryResponse struct {
	Changes []RoleChangeResponse `json:"changes"`
}

// BootstrapRequest creates the first, protected super-admin account.
type BootstrapRequest struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
