package apperrors

import "fmt"

// FileSystemError represents a failure to open, read or write a config file.
// Path is the config file the operation was attempted on.
type FileSystemError struct {
	Path string
	Msg  string
	Err  error // Original error
}

func (e *FileSystemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("config file '%s': %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("config file '%s': %s: %v", e.Path, e.Msg, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
