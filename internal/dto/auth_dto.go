package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PasswordLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PasswordLoginResponse struct {
	Success bool `json:"success"`
}
