package vitrine_test

import (
	"errors"
	"testing"

	"github.com/rmaia/vitrine"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vitrine.Errorf(vitrine.ENOTFOUND, "profile %q not found", "test")

	assert.Equal(t, vitrine.ENOTFOUND, vitrine.ErrorCode(err))
	assert.Equal(t, "profile \"test\" not found", vitrine.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitrine.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vitrine.EINTERNAL, vitrine.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitrine.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", vitrine.ErrorMessage(errors.New("boom")))
}
