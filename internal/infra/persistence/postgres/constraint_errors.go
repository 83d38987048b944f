package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
	constraintNotNull
	constraintCheck
)

// sqlStates maps PostgreSQL SQLSTATE codes to the violation they report.
// The pgx error only exposes the code through its message unless GORM's
// TranslateError is enabled, so both paths are checked.
var sqlStates = map[string]constraintKind{
	"23505": constraintUnique,
	"23503": constraintForeignKey,
	"23502": constraintNotNull,
	"23514": constraintCheck,
}

func classifyConstraint(err error) constraintKind {
	switch {
	case err == nil:
		return constraintNone
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintCheck
	}

	msg := strings.ToLower(err.Error())
	for code, kind := range sqlStates {
		if strings.Contains(msg, code) {
			return kind
		}
	}

	switch {
	case strings.Contains(msg, "duplicate key"):
		return constraintUnique
	case strings.Contains(msg, "null value"):
		return constraintNotNull
	}

	return constraintNone
}

func isUniqueConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintUnique
}

func isForeignKeyConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintForeignKey
}

func isNotNullConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintNotNull
}

func isCheckConstraintViolation(err error) bool {
	return classifyConstraint(err) == constraintCheck
}
