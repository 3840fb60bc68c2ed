package printing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	t.Run("error without cause", func(t *testing.T) {
		err := NewRenderError(ErrCodeTimeout, "timeout occurred", nil)

		assert.Equal(t, ErrCodeTimeout, err.Code)
		assert.Equal(t, "timeout occurred", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := assert.AnError
		err := NewRenderError(ErrCodeBrowserError, "render failed", cause)

		assert.Contains(t, err.Error(), "render failed")
		assert.Contains(t, err.Error(), cause.Error())
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestRenderErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("challan 12: %w", NewRenderError(ErrCodeTemplateError, "bad template", nil))

	assert.Equal(t, ErrCodeTemplateError, RenderErrorCode(wrapped))
	assert.Equal(t, "", RenderErrorCode(assert.AnError))
	assert.Equal(t, "", RenderErrorCode(nil))
}
