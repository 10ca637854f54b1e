package dto

type RegisterRequestDTO struct {
	Name            string `json:"name" example:"Ana Gómez"`
	Email           string `json:"email" example:"ana@bicpop.co"`
	Password        string `json:"password" example:"secret1"`
	ConfirmPassword string `json:"confirm_password" example:"secret1"`
	AcceptTerms     bool   `json:"accept_terms" example:"true"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required" example:"ana@bicpop.co"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

type SessionResponseDTO struct {
	Message   string `json:"message" example:"Session opened"`
	SessionID string `json:"session_id" example:"6f1c2a4e-8d8e-4d1f-9a4b-1f0f3f6c2b7a"`
	Email     string `json:"email" example:"ana@bicpop.co"`
}
