package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentErrorsWrapKind(t *testing.T) {
	errs := MakeComponentErrors("card")

	err := errs.Formatting("energy %v out of range", 1e300)
	assert.True(t, Is(err, ErrFormatting))
	assert.False(t, Is(err, ErrIO))
	assert.Equal(t, "[card] formatting: energy 1e+300 out of range", err.Error())
}

func TestComponentErrorsKeepCause(t *testing.T) {
	errs := MakeComponentErrors("antenna")

	err := errs.IO("write %s: %w", "/x/SIM000001.list", os.ErrNotExist)
	assert.True(t, Is(err, ErrIO))
	assert.True(t, Is(err, os.ErrNotExist))
}

func TestFormErrorOrNil(t *testing.T) {
	assert.Nil(t, FormError{}.OrNil())

	fe := FormError{"dirSimulations": fmt.Errorf("does not exist")}
	assert.Error(t, fe.OrNil())
	assert.Contains(t, ConfigurationError("%v", fe).Error(), "dirSimulations")
}
