package models

import "time"

// Hobby is an entry in the shared hobby catalog. Names are unique across the
// whole catalog and matched case-sensitively.
type Hobby struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
}

// UserHobby links a user to a hobby. The composite primary key makes the
// membership unique, so inserts can be made idempotent with an
// ON CONFLICT DO NOTHING clause instead of a check-then-insert.
type UserHobby struct {
	UserID    string `gorm:"primaryKey;type:varchar(36)"`
	HobbyID   uint   `gorm:"primaryKey"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Hobby     Hobby  `gorm:"foreignKey:HobbyID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
