package models

import (
	"time"

	"gorm.io/gorm"
)

// AnonymousUserID is the placeholder identity used until real session
// identity is wired in. Every aggregation operation already takes a user id
// parameter, so swapping this out is a boundary-only change.
const AnonymousUserID uint = 1

type User struct {
	gorm.Model
	OpenID       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"openId"`
	Name         string    `json:"name"`
	Email        string    `gorm:"type:varchar(320)" json:"email"`
	LoginMethod  string    `gorm:"type:varchar(64)" json:"loginMethod"`
	Role         string    `gorm:"type:varchar(16);default:user" json:"role"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}
