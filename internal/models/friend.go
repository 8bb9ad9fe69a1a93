package models

import "time"

// FriendRequest status values.
const (
	FriendRequestStatusPending  = "pending"
	FriendRequestStatusAccepted = "accepted"
	FriendRequestStatusRejected = "rejected"
)

// Friendship stores one direction of a confirmed connection. An accepted
// pair always exists as exactly two rows, one per direction, created inside
// the same transaction. The unique index on the ordered pair prevents
// duplicates for the same direction.
type Friendship struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_friendship_pair"`
	FriendID  string `json:"friend_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_friendship_pair"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Friend    User   `json:"-" gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// FriendRequest is a directed proposal to form a Friendship. The partial
// unique index allows at most one pending row per (sender, receiver) pair at
// the storage layer, closing the race between the application-level
// existence check and the insert.
type FriendRequest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   string    `json:"sender_id" gorm:"type:varchar(36);not null;index:idx_pending_request,unique,where:status = 'pending'"`
	ReceiverID string    `json:"receiver_id" gorm:"type:varchar(36);not null;index:idx_pending_request,unique,where:status = 'pending'"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Sender     User      `json:"-" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver   User      `json:"-" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"timestamp"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}
