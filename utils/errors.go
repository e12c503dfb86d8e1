package utils

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ValidationError is a malformed or constraint-violating input value.
type ValidationError struct {
	Field   string `json:"field"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors groups the field errors of one request.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// PreconditionError rejects an operation because of the current state of a referenced record.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func NewPreconditionError(message string) *PreconditionError {
	return &PreconditionError{Message: message}
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// DuplicateSerialError is the validation error raised for a serial number clash.
func DuplicateSerialError(serial string, scope string) *ValidationError {
	msg := fmt.Sprintf("An item with the serial number '%s' already exists.", serial)
	if scope != "" {
		msg = fmt.Sprintf("An item with the serial number '%s' already exists for this %s.", serial, scope)
	}
	return NewValidationError("serial_number", serial, msg)
}

// DuplicateAssetSerialError is raised when a receiving already backs an asset with the same serial.
func DuplicateAssetSerialError(serial string) *ValidationError {
	msg := fmt.Sprintf("An asset with the serial number '%s' already exists for this receiving.", serial)
	return NewValidationError("serial_number", serial, msg)
}

func IsValidationError(err error) bool {
	var v *ValidationError
	var vs ValidationErrors
	return errors.As(err, &v) || errors.As(err, &vs)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation recognises a unique index rejection from any supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"unique constraint failed",    // sqlite
		"duplicate entry",             // mysql
		"duplicate key value",         // postgres
		"cannot insert duplicate key", // sql server
		"violation of unique key",     // sql server
		"violates unique constraint",  // postgres
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
