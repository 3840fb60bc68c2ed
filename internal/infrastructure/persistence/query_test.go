package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/shared"
)

func TestLikePatterns(t *testing.T) {
	assert.Equal(t, "%kassim%", containsPattern("  Kassim "))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, "gp-1%", prefixPattern("GP-1"))
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", SortOrder(true))
	assert.Equal(t, "DESC", SortOrder(false))
}

func TestTranslateError(t *testing.T) {
	notFound := shared.NewDomainError("NOT_FOUND", "Challan not found")

	assert.NoError(t, translateError(nil, notFound))
	assert.Same(t, notFound, translateError(gorm.ErrRecordNotFound, notFound))
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey, notFound), shared.ErrAlreadyExists)

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other, notFound))
}
