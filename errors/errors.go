// Package errors error module.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration missing or invalid directories, executables or options.
	ErrConfiguration = fmt.Errorf("configuration")
	// ErrUnknownCategory particle code or angle outside of the registry.
	ErrUnknownCategory = fmt.Errorf("unknowncategory")
	// ErrIO file write failure.
	ErrIO = fmt.Errorf("io")
	// ErrFormatting value not representable in the simulator grammar.
	ErrFormatting = fmt.Errorf("formatting")
)

// KindErrorFunc builds an error of a fixed kind.
type KindErrorFunc = func(message string, formatedValues ...interface{}) error

// ConfigurationError ...
var ConfigurationError = makeNewKindErrorFunc("config", ErrConfiguration)

// MakeComponentErrors returns error constructors prefixed with component name.
// Every returned error wraps one of the kinds, so errors.Is works on it.
func MakeComponentErrors(component string) ComponentErrors {
	return ComponentErrors{
		Configuration:   makeNewKindErrorFunc(component, ErrConfiguration),
		UnknownCategory: makeNewKindErrorFunc(component, ErrUnknownCategory),
		IO:              makeNewKindErrorFunc(component, ErrIO),
		Formatting:      makeNewKindErrorFunc(component, ErrFormatting),
	}
}

// ComponentErrors ...
type ComponentErrors struct {
	Configuration   KindErrorFunc
	UnknownCategory KindErrorFunc
	IO              KindErrorFunc
	Formatting      KindErrorFunc
}

func makeNewKindErrorFunc(component string, kind error) KindErrorFunc {
	return func(message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[%s] %%w: ", component)
		return fmt.Errorf(header+message, append([]interface{}{kind}, formatedValues...)...)
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// FormError collects per-field validation errors.
type FormError map[string]error

// Error ...
func (fe FormError) Error() string {
	return fmt.Sprintf("%+v", map[string]error(fe))
}

// OrNil returns nil when no field failed.
func (fe FormError) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
