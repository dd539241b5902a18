package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token string     `json:"token"`
	User  ProfileDTO `json:"user"`
}

type ProfileDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	IsManager  bool    `json:"isManager"`
}
