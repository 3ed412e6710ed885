package dictionary

import (
	"errors"
	"fmt"
)

// ErrNoSources is wrapped by the ConfigError returned when the default
// word list is disabled and nothing else was configured.
var ErrNoSources = errors.New("no dictionary sources: the default dictionary is disabled and none were given")

// ConfigError reports a dictionary configuration that cannot be resolved.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IOError reports a dictionary or source file that cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsFatal reports whether err is a ConfigError or an IOError.
func IsFatal(err error) bool {
	var (
		cfgErr *ConfigError
		ioErr  *IOError
	)

	return errors.As(err, &cfgErr) || errors.As(err, &ioErr)
}
