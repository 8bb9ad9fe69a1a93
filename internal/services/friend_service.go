package services

import (
	"errors"
	"fmt"
	"log"

	"hobbyhub/internal/models"
	"hobbyhub/internal/repositories"
	"hobbyhub/pkg/rabbitmq"
)

// FriendService handles business logic for friend requests and friendships.
type FriendService struct {
	friendRepo repositories.FriendRepository
	userRepo   repositories.UserRepository
	mqClient   *rabbitmq.Client // RabbitMQ client, optional
}

// NewFriendService creates a new FriendService.
func NewFriendService(friendRepo repositories.FriendRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		mqClient:   mqClient,
	}
}

// SendRequest creates a pending friend request from sender to receiver.
// Requests to yourself or to an existing friend are rejected outright.
// A pending request in the same direction is rejected as a duplicate send.
// A pending request in the reverse direction also blocks the send: the
// sender should answer the request they already have instead of opening a
// second one.
func (s *FriendService) SendRequest(senderID, receiverID string) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}

	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	friends, err := s.friendRepo.AreFriends(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	exists, err := s.friendRepo.PendingExists(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRequestAlreadySent
	}
	reverse, err := s.friendRepo.PendingExists(receiverID, senderID)
	if err != nil {
		return nil, err
	}
	if reverse {
		return nil, ErrReversePending
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestStatusPending,
	}
	if err := s.friendRepo.CreateRequest(request); err != nil {
		return nil, fmt.Errorf("failed to send friend request: %w", err)
	}

	s.publishEvent("friend.request.sent", request)
	return request, nil
}

// ListPending returns the pending requests addressed to the user.
func (s *FriendService) ListPending(userID string) ([]models.FriendRequest, error) {
	return s.friendRepo.ListPendingFor(userID)
}

// Respond accepts or rejects a pending request on behalf of userID. The
// request must be pending and addressed to userID; anything else reads as
// not found, so a caller cannot probe for requests between other users.
func (s *FriendService) Respond(requestID uint, userID string, accept bool) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if request.ReceiverID != userID || request.Status != models.FriendRequestStatusPending {
		return nil, ErrRequestNotFound
	}

	if accept {
		if err := s.friendRepo.Accept(request); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, err
		}
		s.publishEvent("friend.request.accepted", request)
	} else {
		if err := s.friendRepo.Reject(request); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, err
		}
	}
	return request, nil
}

// ListFriends returns the users connected to userID.
func (s *FriendService) ListFriends(userID string) ([]models.User, error) {
	return s.friendRepo.ListFriends(userID)
}

// Unfriend removes the connection between userID and otherID.
func (s *FriendService) Unfriend(userID, otherID string) error {
	if err := s.friendRepo.Unfriend(userID, otherID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFriends
		}
		return err
	}
	return nil
}

// publishEvent pushes a friend event onto the queue. Publishing is best
// effort: a missing client or a broker failure never fails the request that
// triggered the event.
func (s *FriendService) publishEvent(event string, request *models.FriendRequest) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.PublishFriendEvent(map[string]interface{}{
		"event":       event,
		"request_id":  request.ID,
		"sender_id":   request.SenderID,
		"receiver_id": request.ReceiverID,
		"status":      request.Status,
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for request %d: %v", event, request.ID, err)
	}
}
