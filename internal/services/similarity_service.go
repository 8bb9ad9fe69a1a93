package services

import (
	"fmt"
	"time"

	"hobbyhub/internal/models"
	"hobbyhub/internal/repositories"
)

// SimilarPageSize is the fixed number of candidates per page.
const SimilarPageSize = 10

// Defaults applied when min_age/max_age are absent or not numeric.
const (
	DefaultMinAge = 0
	DefaultMaxAge = 100
)

// SimilarityService ranks other users by shared hobbies inside an age
// window and serves the result one page at a time.
type SimilarityService struct {
	userRepo   repositories.UserRepository
	friendRepo repositories.FriendRepository
}

// NewSimilarityService creates a new SimilarityService.
func NewSimilarityService(userRepo repositories.UserRepository, friendRepo repositories.FriendRepository) *SimilarityService {
	return &SimilarityService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// AgeWindow converts an age range at a reference date into the closed
// date-of-birth interval [earliest, latest]: someone born on either bound is
// inside the window. The reference date is truncated to UTC midnight first,
// since dates of birth are stored as UTC midnights and a clock-time bound
// would push someone born exactly maxAge years ago outside the interval.
func AgeWindow(today time.Time, minAge, maxAge int) (earliest, latest time.Time) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	earliest = today.AddDate(-maxAge, 0, 0)
	latest = today.AddDate(-minAge, 0, 0)
	return earliest, latest
}

// FindSimilarUsers returns the requested page of users ranked by shared
// hobby count within [minAge, maxAge] at the given reference date.
//
// Pagination is clamping, not erroring: a page below 1 serves the first
// page and a page beyond the end serves the last. With no candidates at all
// the response is an empty page 1 of 1. Relationship state is resolved only
// for the candidates actually on the served page.
func (s *SimilarityService) FindSimilarUsers(userID string, minAge, maxAge, page int, today time.Time) (*models.SimilarUsersPage, error) {
	earliest, latest := AgeWindow(today, minAge, maxAge)

	candidates, err := s.userRepo.FindSimilar(userID, earliest, latest)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar users: %w", err)
	}

	count := len(candidates)
	totalPages := (count + SimilarPageSize - 1) / SimilarPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * SimilarPageSize
	end := start + SimilarPageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	results := make([]models.SimilarUser, 0, end-start)
	for _, candidate := range candidates[start:end] {
		isFriend, err := s.friendRepo.AreFriends(userID, candidate.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve friendship state: %w", err)
		}
		hasPending, err := s.friendRepo.HasPendingBetween(userID, candidate.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve pending-request state: %w", err)
		}

		user := models.User{DateOfBirth: candidate.DateOfBirth}
		results = append(results, models.SimilarUser{
			ID:                candidate.ID,
			Username:          candidate.Username,
			CommonHobbies:     candidate.CommonHobbies,
			Age:               user.Age(today),
			IsFriend:          isFriend,
			HasPendingRequest: hasPending,
		})
	}

	return &models.SimilarUsersPage{
		Results:     results,
		Count:       count,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
