package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by the services. Controllers translate these into
// HTTP status codes; anything not matching is reported as a generic server
// error.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrQuestionNotFound   = errors.New("question not found in session")
	ErrSessionCompleted   = errors.New("interview session already completed")
	ErrTopicExists        = errors.New("a topic with this title already exists")

	// ErrEmptyAnswer is a distinct InvalidInput: submitting a blank answer
	// never mutates the session.
	ErrEmptyAnswer = fmt.Errorf("%w: answer text is required", ErrInvalidInput)
)
