package handlers

import (
	"log"
	"strconv"
	"time"

	"hobbyhub/internal/middleware"
	"hobbyhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SimilarHandler handles HTTP requests for the similar-users feature.
type SimilarHandler struct {
	similarityService *services.SimilarityService
}

// NewSimilarHandler creates a new SimilarHandler.
func NewSimilarHandler(similarityService *services.SimilarityService) *SimilarHandler {
	return &SimilarHandler{
		similarityService: similarityService,
	}
}

// RegisterRoutes registers the similar-users route with the Fiber app.
func (h *SimilarHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/similar", h.HandleGetSimilarUsers)
}

// HandleGetSimilarUsers serves one page of users ranked by shared hobbies
// within the requested age window. Absent or non-numeric min_age, max_age
// and page fall back to their defaults instead of failing the request.
func (h *SimilarHandler) HandleGetSimilarUsers(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	minAge := queryInt(c, "min_age", services.DefaultMinAge)
	maxAge := queryInt(c, "max_age", services.DefaultMaxAge)
	page := queryInt(c, "page", 1)

	result, err := h.similarityService.FindSimilarUsers(userID, minAge, maxAge, page, time.Now().UTC())
	if err != nil {
		log.Printf("Error finding similar users for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve similar users",
		})
	}
	return c.JSON(result)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not numeric.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
