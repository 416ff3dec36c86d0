package domain

import (
	"errors"
	"time"
)

const (
	SessionCookieName   = "sessionId"
	SessionCookiePath   = "/meals"
	SessionCookieMaxAge = 7 * 24 * time.Hour
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)
