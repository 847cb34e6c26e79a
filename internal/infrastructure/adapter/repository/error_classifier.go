package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind is the category of a driver error
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindDuplicate  ErrorKind = "duplicate"
	KindForeignKey ErrorKind = "foreign_key"
	KindConstraint ErrorKind = "constraint"
	KindBusy       ErrorKind = "busy"
	KindConnection ErrorKind = "connection"
)

// Fragments of postgres and sqlite error messages, lower case
var (
	duplicateMarkers  = []string{"duplicate key", "unique constraint"}
	foreignKeyMarkers = []string{"foreign key"}
	constraintMarkers = []string{"violates", "not null constraint", "check constraint", "constraint failed"}
	busyMarkers       = []string{"database is locked", "deadlock", "could not serialize access"}
	connectionMarkers = []string{"connection refused", "connection reset", "broken pipe", "dial", "eof", "server closed"}
)

// classifyError sorts a gorm or driver error into an ErrorKind.
// Translated gorm errors are honoured first, message matching covers drivers that do not translate.
func classifyError(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return KindConstraint
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, duplicateMarkers):
		return KindDuplicate
	case containsAny(msg, foreignKeyMarkers):
		return KindForeignKey
	case containsAny(msg, constraintMarkers):
		return KindConstraint
	case containsAny(msg, busyMarkers):
		return KindBusy
	case containsAny(msg, connectionMarkers):
		return KindConnection
	}
	return KindNone
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
