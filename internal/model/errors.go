package model

import "errors"

// ErrInvalidConfiguration is wrapped by every configuration validation
// failure so callers can detect the whole class with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")
