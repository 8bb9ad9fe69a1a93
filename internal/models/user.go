package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account on the network.
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // Never serialized
	FirstName   string     `json:"first_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	LastName    string     `json:"last_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Age returns the user's age in whole years at the given reference date,
// or -1 if the user has no date of birth on record.
func (u *User) Age(today time.Time) int {
	if u.DateOfBirth == nil {
		return -1
	}
	dob := *u.DateOfBirth
	years := today.Year() - dob.Year()
	// Birthday not reached yet this year.
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}
