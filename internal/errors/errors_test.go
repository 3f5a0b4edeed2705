package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid value", "log.level", InvalidConfig, nil)
	assert.Equal(t, "invalid value: log.level", err.Error())
	assert.Equal(t, "log.level", err.Param())
	assert.True(t, IsInvalidConfig(err))

	cause := fmt.Errorf("yaml: line 3")
	err = NewConfigError("parse failed", "config.yaml", InvalidConfig, cause)
	assert.Equal(t, "parse failed: config.yaml: yaml: line 3", err.Error())
	assert.True(t, errors.Is(err, cause))

	assert.True(t, Is(fmt.Errorf("loading: %w", err), ErrInvalidConfig))
	assert.False(t, IsInvalidConfig(NewConfigError("missing", "", ConfigNotFound, nil)))
}

func TestPrefsError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewPrefsError("write failed", "user_theme_name", PrefsWriteFailed, cause)
	assert.Equal(t, "write failed: key=user_theme_name: disk full", err.Error())
	assert.Equal(t, "user_theme_name", err.Key())
	assert.True(t, IsPrefsError(Wrap(err, "persist theme")))
	assert.Equal(t, PrefsWriteFailed, KindOf(Wrap(err, "persist theme")))
	assert.False(t, IsPrefsError(New("plain")))
}

func TestThemeError(t *testing.T) {
	err := NewThemeError("unknown theme", "neon", UnknownTheme, nil)
	assert.Equal(t, "unknown theme: neon", err.Error())
	assert.Equal(t, "neon", err.Name())
	assert.True(t, IsUnknownTheme(err))
	assert.True(t, Is(err, ErrUnknownTheme))
	assert.False(t, Is(err, ErrNoThemes))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unknown_theme", UnknownTheme.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
}
