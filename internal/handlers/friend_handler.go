package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"hobbyhub/internal/middleware"
	"hobbyhub/internal/models"
	"hobbyhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FriendHandler handles HTTP requests for friend requests and friendships.
type FriendHandler struct {
	friendService *services.FriendService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// RegisterRoutes registers the friend routes with the Fiber app.
func (h *FriendHandler) RegisterRoutes(router fiber.Router) {
	friendRoutes := router.Group("/friends")
	friendRoutes.Get("/", h.HandleListFriends)
	friendRoutes.Delete("/:id", h.HandleUnfriend)
	friendRoutes.Post("/requests", h.HandleSendRequest)
	friendRoutes.Get("/requests", h.HandleListRequests)
	friendRoutes.Post("/requests/:id", h.HandleRespondRequest)
}

// SendFriendRequestRequest represents the request body for sending a
// friend request.
type SendFriendRequestRequest struct {
	ReceiverID string `json:"receiver_id"`
}

// HandleSendRequest creates a pending friend request.
func (h *FriendHandler) HandleSendRequest(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req SendFriendRequestRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing friend request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ReceiverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Field 'receiver_id' is required",
		})
	}

	request, err := h.friendService.SendRequest(userID, req.ReceiverID)
	if err != nil {
		log.Printf("Error sending friend request from %s to %s: %v", userID, req.ReceiverID, err)
		switch {
		case errors.Is(err, services.ErrRequestAlreadySent),
			errors.Is(err, services.ErrReversePending),
			errors.Is(err, services.ErrAlreadyFriends),
			errors.Is(err, services.ErrSelfRequest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send friend request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Friend request sent",
		"request": request,
	})
}

// pendingRequestResponse is one pending request as served to the receiver.
type pendingRequestResponse struct {
	ID        uint      `json:"id"`
	Sender    fiber.Map `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// HandleListRequests lists the pending requests addressed to the caller.
func (h *FriendHandler) HandleListRequests(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	requests, err := h.friendService.ListPending(userID)
	if err != nil {
		log.Printf("Error listing friend requests for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve friend requests",
		})
	}

	results := make([]pendingRequestResponse, 0, len(requests))
	for _, request := range requests {
		results = append(results, pendingRequestResponse{
			ID: request.ID,
			Sender: fiber.Map{
				"id":       request.Sender.ID,
				"username": request.Sender.Username,
			},
			Timestamp: request.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{
		"requests": results,
	})
}

// RespondFriendRequestRequest represents the request body for accepting or
// rejecting a friend request.
type RespondFriendRequestRequest struct {
	Action string `json:"action"`
}

// HandleRespondRequest accepts or rejects a pending request addressed to
// the caller.
func (h *FriendHandler) HandleRespondRequest(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Friend request not found",
		})
	}

	var req RespondFriendRequestRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing friend request response body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Action != "accept" && req.Action != "reject" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Field 'action' must be 'accept' or 'reject'",
		})
	}

	request, err := h.friendService.Respond(uint(requestID), userID, req.Action == "accept")
	if err != nil {
		log.Printf("Error responding to friend request %d: %v", requestID, err)
		if errors.Is(err, services.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Friend request not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not handle friend request",
		})
	}

	message := "Friend request rejected"
	if request.Status == models.FriendRequestStatusAccepted {
		message = "Friend request accepted"
	}
	return c.JSON(fiber.Map{
		"message": message,
	})
}

// HandleListFriends lists the caller's friends.
func (h *FriendHandler) HandleListFriends(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		log.Printf("Error listing friends for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve friends",
		})
	}
	return c.JSON(fiber.Map{
		"friends": friends,
	})
}

// HandleUnfriend removes the connection between the caller and the user in
// the path.
func (h *FriendHandler) HandleUnfriend(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	otherID := c.Params("id")

	if err := h.friendService.Unfriend(userID, otherID); err != nil {
		log.Printf("Error unfriending %s and %s: %v", userID, otherID, err)
		if errors.Is(err, services.ErrNotFriends) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Friendship not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not unfriend",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Friend removed",
	})
}
