package dto

type CreateSalesPersonDTO struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	IsManager  *bool   `json:"isManager"`
}

// UpdateSalesPersonDTO: an empty password means "no change"; a nil isManager
// preserves the current value.
type UpdateSalesPersonDTO struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"omitempty,min=8"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	IsManager  *bool   `json:"isManager"`
}

type SalesPersonDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	IsManager  bool    `json:"isManager"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

// SalesPersonListFilter is parsed from list query parameters.
type SalesPersonListFilter struct {
	Name       string
	Department string
	Page       int
	PerPage    int
}
