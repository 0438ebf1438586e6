package docindex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docindex.Errorf(docindex.EINVALID, "entry %q has no id", "/docs")

	assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	assert.Equal(t, "entry \"/docs\" has no id", docindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("build: %w", docindex.Errorf(docindex.ENOTFOUND, "missing"))

	assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	assert.Equal(t, "missing", docindex.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docindex.EINTERNAL, docindex.ErrorCode(err))
	assert.Equal(t, "Internal error.", docindex.ErrorMessage(err))
}
