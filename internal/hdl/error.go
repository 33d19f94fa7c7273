package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrFileTooLarge = errors.New("file too large")
var ErrMissingFile = errors.New("file is required")
var ErrUnsupportedMedia = errors.New("only image files are accepted")

var ErrFailedToParseUUID = errors.New("failed to parse uid")

// ErrInvalidLogin is the single answer for unknown email and wrong password.
var ErrInvalidLogin = errors.New("invalid email or password")
var ErrInvalidCoordinates = errors.New("lat and lon must both be valid coordinates")
var ErrInvalidMaxDistance = errors.New("maxDistance must be a positive number")

var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("forbidden")
var ErrTooManyRequests = errors.New("too many requests")
