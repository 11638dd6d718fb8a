package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Description string          `json:"description,omitempty" gorm:"size:1000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(19,4);not null"`
	Stock       int             `json:"stock" gorm:"not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
