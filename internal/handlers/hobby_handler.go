package handlers

import (
	"errors"
	"log"
	"strings"

	"hobbyhub/internal/middleware"
	"hobbyhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HobbyHandler handles HTTP requests for the hobby catalog and the current
// user's hobby set.
type HobbyHandler struct {
	hobbyService *services.HobbyService
}

// NewHobbyHandler creates a new HobbyHandler.
func NewHobbyHandler(hobbyService *services.HobbyService) *HobbyHandler {
	return &HobbyHandler{
		hobbyService: hobbyService,
	}
}

// RegisterRoutes registers the hobby routes with the Fiber app.
func (h *HobbyHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/hobbies", h.HandleListCatalog)
	router.Get("/profile/hobbies", h.HandleListOwn)
	router.Put("/profile/hobbies", h.HandleUpdateOwn)
}

// HandleListCatalog returns every hobby in the shared catalog.
func (h *HobbyHandler) HandleListCatalog(c *fiber.Ctx) error {
	hobbies, err := h.hobbyService.ListCatalog()
	if err != nil {
		log.Printf("Error listing hobby catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve hobbies",
		})
	}
	return c.JSON(fiber.Map{
		"hobbies": hobbies,
	})
}

// HandleListOwn returns the authenticated user's hobby set.
func (h *HobbyHandler) HandleListOwn(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	hobbies, err := h.hobbyService.ListForUser(userID)
	if err != nil {
		log.Printf("Error listing hobbies for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve hobbies",
		})
	}
	return c.JSON(fiber.Map{
		"hobbies": hobbies,
	})
}

// UpdateHobbiesRequest represents the request body for hobby updates.
// Adding takes a hobby name (created lazily in the catalog), removing takes
// a catalog id.
type UpdateHobbiesRequest struct {
	Action  string `json:"action"`
	Hobby   string `json:"hobby"`
	HobbyID uint   `json:"hobby_id"`
}

// HandleUpdateOwn adds or removes one hobby and returns the updated set.
func (h *HobbyHandler) HandleUpdateOwn(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req UpdateHobbiesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing hobby update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	switch req.Action {
	case "add":
		hobbyName := strings.TrimSpace(req.Hobby)
		if hobbyName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Field 'hobby' is required for action 'add'",
			})
		}
		hobbies, err := h.hobbyService.AddHobby(userID, hobbyName)
		if err != nil {
			log.Printf("Error adding hobby for %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add hobby",
			})
		}
		return c.JSON(fiber.Map{
			"message": "Hobby added",
			"hobbies": hobbies,
		})
	case "remove":
		if req.HobbyID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Field 'hobby_id' is required for action 'remove'",
			})
		}
		hobbies, err := h.hobbyService.RemoveHobby(userID, req.HobbyID)
		if err != nil {
			log.Printf("Error removing hobby for %s: %v", userID, err)
			if errors.Is(err, services.ErrHobbyNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "Hobby not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not remove hobby",
			})
		}
		return c.JSON(fiber.Map{
			"message": "Hobby removed",
			"hobbies": hobbies,
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Field 'action' must be 'add' or 'remove'",
		})
	}
}
