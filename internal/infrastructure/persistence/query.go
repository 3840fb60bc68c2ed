package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/zumech/backend/internal/domain/shared"
)

// likeEscaper escapes LIKE wildcards; queries pair it with ESCAPE '\'
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lowercase "contains" LIKE pattern
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// prefixPattern builds a lowercase "starts with" LIKE pattern
func prefixPattern(s string) string {
	return likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// SortOrder normalizes a sort direction to ASC or DESC, defaulting to DESC
func SortOrder(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

// isSQLite reports whether db talks to sqlite, whose JSON functions differ from postgres
func isSQLite(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}

// translateError maps gorm errors onto domain errors
func translateError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	default:
		return err
	}
}
