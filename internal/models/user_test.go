package models_test

import (
	"testing"
	"time"

	"hobbyhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserAge(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	t.Run("Test birthday already passed this year", func(t *testing.T) {
		dob := time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC)
		user := models.User{DateOfBirth: &dob}
		assert.Equal(t, 31, user.Age(today))
	})

	t.Run("Test birthday still ahead this year", func(t *testing.T) {
		dob := time.Date(1995, time.December, 1, 0, 0, 0, 0, time.UTC)
		user := models.User{DateOfBirth: &dob}
		assert.Equal(t, 30, user.Age(today))
	})

	t.Run("Test birthday is today", func(t *testing.T) {
		dob := time.Date(2000, time.August, 30, 0, 0, 0, 0, time.UTC)
		user := models.User{DateOfBirth: &dob}
		assert.Equal(t, 26, user.Age(today))
	})

	t.Run("Test no date of birth", func(t *testing.T) {
		user := models.User{}
		assert.Equal(t, -1, user.Age(today))
	})
}
