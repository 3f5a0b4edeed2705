// Package errors provides the error taxonomy of the showcase. The chrome
// engine itself is total; errors only appear at collaborator edges such as
// configuration, persisted preferences, the theme catalogue and registry
// construction.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Preference store error kinds
	PrefsReadFailed
	PrefsWriteFailed
	// Theme error kinds
	UnknownTheme
	NoThemes
	// Registry / catalog error kinds
	InvalidRegistry
	CatalogLoadFailed
)

var kindNames = map[ErrorKind]string{
	Unknown:           "unknown",
	InvalidConfig:     "invalid_config",
	ConfigNotFound:    "config_not_found",
	PrefsReadFailed:   "prefs_read_failed",
	PrefsWriteFailed:  "prefs_write_failed",
	UnknownTheme:      "unknown_theme",
	NoThemes:          "no_themes",
	InvalidRegistry:   "invalid_registry",
	CatalogLoadFailed: "catalog_load_failed",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrUnknownTheme  = NewThemeError("unknown theme", "", UnknownTheme, nil)
	ErrNoThemes      = NewThemeError("no themes available", "", NoThemes, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Is matches another application error of the same kind, so the sentinel
// values above can be used with errors.Is.
func (e *ApplicationError) Is(target error) bool {
	var other interface{ Kind() ErrorKind }
	if errors.As(target, &other) {
		return e.kind != Unknown && e.kind == other.Kind()
	}
	return false
}

// NewKind creates an application error of the given kind
func NewKind(kind ErrorKind, msg string, err error) *ApplicationError {
	return &ApplicationError{msg: msg, err: err, kind: kind}
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// PrefsError represents failures of the preference store
type PrefsError struct {
	ApplicationError
	key string
}

// NewPrefsError creates a new preference store error
func NewPrefsError(msg string, key string, kind ErrorKind, err error) *PrefsError {
	return &PrefsError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		key: key,
	}
}

// Error returns the prefs error message
func (e *PrefsError) Error() string {
	if e.key != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: key=%s: %v", e.msg, e.key, e.err)
		}
		return fmt.Sprintf("%s: key=%s", e.msg, e.key)
	}
	return e.ApplicationError.Error()
}

// Key returns the preference key associated with the error
func (e *PrefsError) Key() string {
	return e.key
}

// ThemeError represents errors related to theme selection
type ThemeError struct {
	ApplicationError
	name string
}

// NewThemeError creates a new theme error
func NewThemeError(msg string, name string, kind ErrorKind, err error) *ThemeError {
	return &ThemeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		name: name,
	}
}

// Error returns the theme error message
func (e *ThemeError) Error() string {
	if e.name != "" {
		return fmt.Sprintf("%s: %s", e.msg, e.name)
	}
	return e.ApplicationError.Error()
}

// Name returns the theme name associated with the error
func (e *ThemeError) Name() string {
	return e.name
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first specific kind found in err's chain
func KindOf(err error) ErrorKind {
	for err != nil {
		if kinded, ok := err.(interface{ Kind() ErrorKind }); ok && kinded.Kind() != Unknown {
			return kinded.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsUnknownTheme checks if the error reports an unknown theme name
func IsUnknownTheme(err error) bool {
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Kind() == UnknownTheme
	}
	return false
}

// IsPrefsError checks if the error comes from the preference store
func IsPrefsError(err error) bool {
	var prefsErr *PrefsError
	return errors.As(err, &prefsErr)
}
