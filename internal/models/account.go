package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a transporter account that transactions belong to.
type Account struct {
	ID        uuid.UUID `json:"id" db:"account_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
