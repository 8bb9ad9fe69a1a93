package services_test

import (
	"fmt"
	"testing"
	"time"

	"hobbyhub/internal/models"
	"hobbyhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeWindow(t *testing.T) {
	today := date(2026, time.August, 30)

	earliest, latest := services.AgeWindow(today, 18, 40)
	assert.Equal(t, date(1986, time.August, 30), earliest)
	assert.Equal(t, date(2008, time.August, 30), latest)

	// Defaults span a century ending today.
	earliest, latest = services.AgeWindow(today, services.DefaultMinAge, services.DefaultMaxAge)
	assert.Equal(t, date(1926, time.August, 30), earliest)
	assert.Equal(t, date(2026, time.August, 30), latest)

	// min_age > max_age yields an inverted, therefore empty, interval.
	earliest, latest = services.AgeWindow(today, 40, 18)
	assert.True(t, earliest.After(latest))

	// A wall-clock reference date yields the same midnight bounds, so a
	// midnight-stored birth date exactly max_age years back stays inside
	// the interval.
	clockTime := time.Date(2026, time.August, 30, 9, 54, 13, 0, time.UTC)
	earliest, latest = services.AgeWindow(clockTime, 18, 30)
	assert.Equal(t, date(1996, time.August, 30), earliest)
	assert.Equal(t, date(2008, time.August, 30), latest)
}

func TestSimilarityService_RankingAndAnnotation(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFriendRepo := new(MockFriendRepository)
	service := services.NewSimilarityService(mockUserRepo, mockFriendRepo)

	today := date(2026, time.August, 30)
	dobB := date(1995, time.June, 15)
	dobA := date(1998, time.December, 1)

	// Repository rows arrive ranked: B shares 2 hobbies, A shares 1. A
	// zero-overlap user is filtered inside the query and never shows up here.
	ranked := []models.SimilarCandidate{
		{ID: "user-b", Username: "bella", DateOfBirth: &dobB, CommonHobbies: 2},
		{ID: "user-a", Username: "adam", DateOfBirth: &dobA, CommonHobbies: 1},
	}
	mockUserRepo.On("FindSimilar", "user-r", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(ranked, nil).Once()

	mockFriendRepo.On("AreFriends", "user-r", "user-b").Return(true, nil).Once()
	mockFriendRepo.On("HasPendingBetween", "user-r", "user-b").Return(false, nil).Once()
	mockFriendRepo.On("AreFriends", "user-r", "user-a").Return(false, nil).Once()
	mockFriendRepo.On("HasPendingBetween", "user-r", "user-a").Return(true, nil).Once()

	page, err := service.FindSimilarUsers("user-r", 0, 100, 1, today)
	assert.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Results, 2)

	assert.Equal(t, "bella", page.Results[0].Username)
	assert.Equal(t, 2, page.Results[0].CommonHobbies)
	assert.Equal(t, 31, page.Results[0].Age)
	assert.True(t, page.Results[0].IsFriend)
	assert.False(t, page.Results[0].HasPendingRequest)

	assert.Equal(t, "adam", page.Results[1].Username)
	assert.Equal(t, 1, page.Results[1].CommonHobbies)
	assert.Equal(t, 27, page.Results[1].Age)
	assert.False(t, page.Results[1].IsFriend)
	assert.True(t, page.Results[1].HasPendingRequest)

	// Ranked results are non-increasing by common hobbies.
	for i := 1; i < len(page.Results); i++ {
		assert.GreaterOrEqual(t, page.Results[i-1].CommonHobbies, page.Results[i].CommonHobbies)
	}

	mockUserRepo.AssertExpectations(t)
	mockFriendRepo.AssertExpectations(t)
}

func makeCandidates(n int) []models.SimilarCandidate {
	dob := date(1995, time.June, 15)
	candidates := make([]models.SimilarCandidate, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, models.SimilarCandidate{
			ID:            fmt.Sprintf("user-%02d", i),
			Username:      fmt.Sprintf("user%02d", i),
			DateOfBirth:   &dob,
			CommonHobbies: 1,
		})
	}
	return candidates
}

func TestSimilarityService_Pagination(t *testing.T) {
	today := date(2026, time.August, 30)
	candidates := makeCandidates(25)

	newService := func() (*services.SimilarityService, *MockFriendRepository) {
		mockUserRepo := new(MockUserRepository)
		mockFriendRepo := new(MockFriendRepository)
		mockUserRepo.On("FindSimilar", "user-r", mock.Anything, mock.Anything).Return(candidates, nil)
		mockFriendRepo.On("AreFriends", "user-r", mock.Anything).Return(false, nil)
		mockFriendRepo.On("HasPendingBetween", "user-r", mock.Anything).Return(false, nil)
		return services.NewSimilarityService(mockUserRepo, mockFriendRepo), mockFriendRepo
	}

	// 25 candidates at page size 10: pages of 10, 10 and 5.
	service, _ := newService()
	seen := map[string]bool{}
	sizes := []int{}
	for p := 1; p <= 3; p++ {
		page, err := service.FindSimilarUsers("user-r", 0, 100, p, today)
		assert.NoError(t, err)
		assert.Equal(t, 25, page.Count)
		assert.Equal(t, p, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		sizes = append(sizes, len(page.Results))
		for _, result := range page.Results {
			assert.False(t, seen[result.ID], "candidate %s served twice", result.ID)
			seen[result.ID] = true
		}
	}
	assert.Equal(t, []int{10, 10, 5}, sizes)
	assert.Len(t, seen, 25) // concatenating all pages reproduces the full set

	// Relationship state is resolved only for candidates on the served page.
	service, mockFriendRepo := newService()
	page, err := service.FindSimilarUsers("user-r", 0, 100, 3, today)
	assert.NoError(t, err)
	assert.Len(t, page.Results, 5)
	mockFriendRepo.AssertNumberOfCalls(t, "AreFriends", 5)
	mockFriendRepo.AssertNumberOfCalls(t, "HasPendingBetween", 5)

	// Out-of-range pages clamp instead of erroring.
	service, _ = newService()
	page, err = service.FindSimilarUsers("user-r", 0, 100, 99, today)
	assert.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Results, 5)

	page, err = service.FindSimilarUsers("user-r", 0, 100, 0, today)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Results, 10)
}

func TestSimilarityService_EmptyResult(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFriendRepo := new(MockFriendRepository)
	service := services.NewSimilarityService(mockUserRepo, mockFriendRepo)

	mockUserRepo.On("FindSimilar", "user-r", mock.Anything, mock.Anything).
		Return([]models.SimilarCandidate{}, nil).Once()

	page, err := service.FindSimilarUsers("user-r", 18, 40, 1, date(2026, time.August, 30))
	assert.NoError(t, err)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Results)
	mockUserRepo.AssertExpectations(t)
	mockFriendRepo.AssertNumberOfCalls(t, "AreFriends", 0)
}
