package dto

type CreateCustomerDTO struct {
	CompanyName   string  `json:"companyName" validate:"required,min=1,max=200"`
	CompanyPerson *string `json:"companyPerson" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateCustomerDTO carries the same schema as create.
type UpdateCustomerDTO = CreateCustomerDTO

type CustomerDTO struct {
	ID            int64   `json:"id"`
	CompanyName   string  `json:"companyName"`
	CompanyPerson *string `json:"companyPerson"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CustomerListFilter is parsed from the customer list query parameters.
type CustomerListFilter struct {
	CompanyName string
	Page        int
	PerPage     int
}

// MasterCustomerDTO is the lightweight id+name pair for dropdowns.
type MasterCustomerDTO struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
}
