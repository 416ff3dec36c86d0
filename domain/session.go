package domain

import "errors"

var (
	MessageFailedGetSession     = "failed to get session"
	MessageFailedSessionInvalid = "session ID is not valid"

	ErrSessionInvalid  = errors.New("session ID is not a valid token")
	ErrSessionNotFound = errors.New("session ID does not exist")
)
