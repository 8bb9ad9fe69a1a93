package repositories

import "hobbyhub/internal/models"

// FriendRepository defines the interface for friendship and friend-request
// data access.
type FriendRepository interface {
	CreateRequest(request *models.FriendRequest) error
	GetRequestByID(id uint) (*models.FriendRequest, error)
	// PendingExists reports whether a pending request exists in exactly the
	// given direction.
	PendingExists(senderID, receiverID string) (bool, error)
	// HasPendingBetween reports whether a pending request exists in either
	// direction between the two users.
	HasPendingBetween(userID, otherID string) (bool, error)
	ListPendingFor(receiverID string) ([]models.FriendRequest, error)
	// Accept marks the request accepted and creates both directions of the
	// Friendship as a single transaction. Re-creating an already existing
	// direction is a no-op.
	Accept(request *models.FriendRequest) error
	Reject(request *models.FriendRequest) error
	AreFriends(userID, otherID string) (bool, error)
	ListFriends(userID string) ([]models.User, error)
	// Unfriend deletes both directions of the friendship in one transaction.
	Unfriend(userID, otherID string) error
}
