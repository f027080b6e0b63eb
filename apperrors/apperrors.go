package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a key is not part of the default config set.
var ErrUnknownKey = errors.New("unknown config key")

// ErrNotObject is returned when a config file does not hold a JSON object at the top level.
var ErrNotObject = errors.New("config file is not a JSON object")

// ErrNotInitialized is returned when the config file is read or written before its path is resolved.
var ErrNotInitialized = errors.New("config file path not resolved, call Init first")

// ValueError represents a config value that could not be read as an integer.
type ValueError struct {
	Key string
	Raw string
	Err error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value for key '%s': %s: %v", e.Key, e.Raw, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
