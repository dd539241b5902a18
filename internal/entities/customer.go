package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Customer struct {
	ID            int64       `json:"id" db:"id"`
	CompanyName   string      `json:"companyName" db:"company_name"`
	CompanyPerson null.String `json:"companyPerson" db:"company_person"`
	Email         null.String `json:"email" db:"email"`
	Address       null.String `json:"address" db:"address"`
	Phone         null.String `json:"phone" db:"phone"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
