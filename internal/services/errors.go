package services

import "errors"

// Sentinel errors returned by the services. Handlers match these with
// errors.Is and translate them to HTTP status codes; anything else becomes a
// generic 500.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssigneeNotFound   = errors.New("assigned user not found")
	ErrUserNotFound       = errors.New("user not found")
)
