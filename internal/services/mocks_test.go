package services_test

import (
	"time"

	"hobbyhub/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindSimilar(userID string, earliest, latest time.Time) ([]models.SimilarCandidate, error) {
	args := m.Called(userID, earliest, latest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SimilarCandidate), args.Error(1)
}

// MockHobbyRepository is a mock implementation of repositories.HobbyRepository
type MockHobbyRepository struct {
	mock.Mock
}

func (m *MockHobbyRepository) GetAll() ([]models.Hobby, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) GetByID(id uint) (*models.Hobby, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) GetOrCreateByName(name string) (*models.Hobby, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) ListForUser(userID string) ([]models.Hobby, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) Attach(userID string, hobbyID uint) error {
	args := m.Called(userID, hobbyID)
	return args.Error(0)
}

func (m *MockHobbyRepository) Detach(userID string, hobbyID uint) error {
	args := m.Called(userID, hobbyID)
	return args.Error(0)
}

// MockFriendRepository is a mock implementation of repositories.FriendRepository
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) CreateRequest(request *models.FriendRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockFriendRepository) GetRequestByID(id uint) (*models.FriendRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FriendRequest), args.Error(1)
}

func (m *MockFriendRepository) PendingExists(senderID, receiverID string) (bool, error) {
	args := m.Called(senderID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRepository) HasPendingBetween(userID, otherID string) (bool, error) {
	args := m.Called(userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRepository) ListPendingFor(receiverID string) ([]models.FriendRequest, error) {
	args := m.Called(receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

func (m *MockFriendRepository) Accept(request *models.FriendRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockFriendRepository) Reject(request *models.FriendRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockFriendRepository) AreFriends(userID, otherID string) (bool, error) {
	args := m.Called(userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRepository) ListFriends(userID string) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFriendRepository) Unfriend(userID, otherID string) error {
	args := m.Called(userID, otherID)
	return args.Error(0)
}
