package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cr3tpass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"user registered"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cr3tpass"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"authentication successful"`
}
