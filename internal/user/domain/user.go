package domain

import "time"

type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Password         string    `json:"-" gorm:"not null"` // Never return password in JSON
	Avatar           string    `json:"avatar,omitempty"`
	About            string    `json:"about,omitempty"`
	RecoveryKey      int       `json:"-"`
	StripeCustomerID string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DeviceToken represents a push-notification token for one installed client.
// A user may hold several (one per device); the token value itself is unique
// and re-registering it moves ownership to the registering user.
type DeviceToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"` // Don't expose token in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
