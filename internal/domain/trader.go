package domain

import "time"

// Trader is a merchant account on the catalog side, distinct from the buyer
// accounts the user service owns.
type Trader struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Email       string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password    string    `json:"-" gorm:"size:100;not null"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:20;not null"`
	Company     string    `json:"company" gorm:"size:255;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
