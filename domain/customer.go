package domain

import (
	"time"

	"gorm.io/gorm"
)

// CREATE TABLE public.customers (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     full_name   TEXT NOT NULL,
//     email       TEXT UNIQUE NOT NULL,
//     role        TEXT DEFAULT 'customer',
//     is_curator  BOOLEAN DEFAULT FALSE,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"column:full_name;not null" json:"full_name"`
	Email     string         `gorm:"column:email;unique;not null" json:"email"`
	Role      string         `gorm:"column:role;default:customer" json:"role"`
	IsCurator bool           `gorm:"column:is_curator;default:false;index" json:"is_curator"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
