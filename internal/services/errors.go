package services

import "errors"

// Sentinel errors the handlers map to HTTP status codes. Anything not
// matched by errors.Is against one of these surfaces as a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("old password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrHobbyNotFound      = errors.New("hobby not found")
	ErrRequestNotFound    = errors.New("friend request not found")
	ErrSelfRequest        = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends     = errors.New("users are already friends")
	ErrRequestAlreadySent = errors.New("friend request already sent")
	ErrReversePending     = errors.New("this user has already sent you a friend request")
	ErrNotFriends         = errors.New("users are not friends")
)
