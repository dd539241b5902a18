package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type SalesPerson struct {
	ID         int64       `json:"id" db:"id"`
	Name       string      `json:"name" db:"name"`
	Email      string      `json:"email" db:"email"`
	Password   string      `json:"-" db:"password"`
	Department null.String `json:"department" db:"department"`
	IsManager  bool        `json:"isManager" db:"is_manager"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`
}
