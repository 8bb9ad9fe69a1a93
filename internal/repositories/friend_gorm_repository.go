package repositories

import (
	"fmt"

	"hobbyhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMFriendRepository is a GORM implementation of FriendRepository.
type GORMFriendRepository struct {
	db *gorm.DB
}

// NewGORMFriendRepository creates a new instance of GORMFriendRepository.
func NewGORMFriendRepository(db *gorm.DB) *GORMFriendRepository {
	return &GORMFriendRepository{
		db: db,
	}
}

// CreateRequest inserts a new friend request row.
func (r *GORMFriendRepository) CreateRequest(request *models.FriendRequest) error {
	if request.Status == "" {
		request.Status = models.FriendRequestStatusPending
	}
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

// GetRequestByID retrieves a friend request with its sender preloaded.
func (r *GORMFriendRepository) GetRequestByID(id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.Preload("Sender").First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("friend request with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get friend request by ID %d: %w", id, err)
	}
	return &request, nil
}

// PendingExists checks for a pending request in exactly the given direction.
func (r *GORMFriendRepository) PendingExists(senderID, receiverID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.FriendRequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}
	return count > 0, nil
}

// HasPendingBetween checks for a pending request in either direction.
func (r *GORMFriendRepository) HasPendingBetween(userID, otherID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FriendRequest{}).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status = ?",
			userID, otherID, otherID, userID, models.FriendRequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending request between users: %w", err)
	}
	return count > 0, nil
}

// ListPendingFor retrieves the pending requests addressed to a user, oldest
// first, with senders preloaded.
func (r *GORMFriendRepository) ListPendingFor(receiverID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendRequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests for %s: %w", receiverID, err)
	}
	return requests, nil
}

// Accept transitions the request to accepted and creates both directions of
// the friendship. All three writes happen inside one transaction: a partial
// state (status flipped but a direction missing) can never be observed. The
// friendship inserts use ON CONFLICT DO NOTHING so a direction that already
// exists does not fail the accept.
func (r *GORMFriendRepository) Accept(request *models.FriendRequest) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", request.ID, models.FriendRequestStatusPending).
			Update("status", models.FriendRequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("friend request %d is not pending: %w", request.ID, ErrNotFound)
		}

		pair := []models.Friendship{
			{UserID: request.SenderID, FriendID: request.ReceiverID},
			{UserID: request.ReceiverID, FriendID: request.SenderID},
		}
		for i := range pair {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&pair[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to accept friend request %d: %w", request.ID, err)
	}
	request.Status = models.FriendRequestStatusAccepted
	return nil
}

// Reject transitions the request to rejected. No friendship is created.
func (r *GORMFriendRepository) Reject(request *models.FriendRequest) error {
	res := r.db.Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", request.ID, models.FriendRequestStatusPending).
		Update("status", models.FriendRequestStatusRejected)
	if res.Error != nil {
		return fmt.Errorf("failed to reject friend request %d: %w", request.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("friend request %d is not pending: %w", request.ID, ErrNotFound)
	}
	request.Status = models.FriendRequestStatusRejected
	return nil
}

// AreFriends checks whether a friendship row exists in either direction.
func (r *GORMFriendRepository) AreFriends(userID, otherID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return count > 0, nil
}

// ListFriends retrieves the users connected to userID, ordered by username.
func (r *GORMFriendRepository) ListFriends(userID string) ([]models.User, error) {
	var friends []models.User
	err := r.db.Table("users").
		Select("users.*").
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Where("users.deleted_at IS NULL").
		Order("users.username ASC").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friends for %s: %w", userID, err)
	}
	return friends, nil
}

// Unfriend removes both directions of the friendship in one transaction.
func (r *GORMFriendRepository) Unfriend(userID, otherID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, otherID, otherID, userID).
			Delete(&models.Friendship{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("no friendship between %s and %s: %w", userID, otherID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to unfriend: %w", err)
	}
	return nil
}
