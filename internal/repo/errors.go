package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobconnect/internal/domain"
)

// translate maps gorm errors onto the domain sentinels so services never see
// driver-specific failures.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) || isDupKey(err):
		return domain.ErrConflict
	default:
		return err
	}
}

// isDupKey sniffs driver messages for unique violations that predate gorm's
// TranslateError support across driver versions.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
