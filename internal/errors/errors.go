package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeDuplicateIdentity indicates an internal name or alias collides with an existing moddable object
	CodeDuplicateIdentity Code = "duplicate_identity"

	// CodeInvalidModdableObject indicates an operation restricted to custom objects hit a built-in one, or vice versa
	CodeInvalidModdableObject Code = "invalid_moddable_object"

	// CodeModObjectNotFound indicates identity resolution failed
	CodeModObjectNotFound Code = "mod_object_not_found"

	// CodeDuplicatePresetName indicates a preset with the same name already exists
	CodeDuplicatePresetName Code = "duplicate_preset_name"

	// CodePresetNotFound indicates the named preset does not exist
	CodePresetNotFound Code = "preset_not_found"

	// CodePresetReadOnly indicates a mutation was attempted on a protected preset
	CodePresetReadOnly Code = "preset_read_only"

	// CodeInvalidOrder indicates a preset ordering that is not dense and unique
	CodeInvalidOrder Code = "invalid_order"

	// CodeReconciliationAmbiguity is only ever reported, never returned
	CodeReconciliationAmbiguity Code = "reconciliation_ambiguity"

	// CodePersistenceFailure indicates the underlying storage failed
	CodePersistenceFailure Code = "persistence_failure"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// DuplicateIdentityf creates a formatted duplicate identity error
func DuplicateIdentityf(format string, args ...any) *Error {
	return Newf(CodeDuplicateIdentity, format, args...)
}

// InvalidModdableObjectf creates a formatted invalid moddable object error
func InvalidModdableObjectf(format string, args ...any) *Error {
	return Newf(CodeInvalidModdableObject, format, args...)
}

// ModObjectNotFound creates a not found error for the given variant and internal name.
// The variant is passed structurally so callers never depend on type names.
func ModObjectNotFound(variant, internalName string) *Error {
	return Newf(CodeModObjectNotFound, "%s with internal name '%s' not found", variant, internalName).
		WithMeta("variant", variant).
		WithMeta("internal_name", internalName)
}

// DuplicatePresetName creates a duplicate preset name error
func DuplicatePresetName(name string) *Error {
	return Newf(CodeDuplicatePresetName, "preset '%s' already exists", name).
		WithMeta("preset_name", name)
}

// PresetNotFound creates a preset not found error
func PresetNotFound(name string) *Error {
	return Newf(CodePresetNotFound, "preset '%s' not found", name).
		WithMeta("preset_name", name)
}

// PresetReadOnly creates a read-only preset error
func PresetReadOnly(name string) *Error {
	return Newf(CodePresetReadOnly, "preset '%s' is read only", name).
		WithMeta("preset_name", name)
}

// InvalidOrderf creates a formatted invalid order error
func InvalidOrderf(format string, args ...any) *Error {
	return Newf(CodeInvalidOrder, format, args...)
}

// PersistenceFailure wraps a storage error, keeping the original cause attached
func PersistenceFailure(err error, message string) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code == CodePersistenceFailure {
		return Wrap(err, message)
	}
	return &Error{
		Code:    CodePersistenceFailure,
		Message: message,
		Cause:   err,
	}
}

// PersistenceFailuref wraps a storage error with a formatted message
func PersistenceFailuref(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return PersistenceFailure(err, fmt.Sprintf(format, args...))
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsDuplicateIdentity checks if the error is a duplicate identity error
func IsDuplicateIdentity(err error) bool {
	return Is(err, CodeDuplicateIdentity)
}

// IsModObjectNotFound checks if the error is a mod object not found error
func IsModObjectNotFound(err error) bool {
	return Is(err, CodeModObjectNotFound)
}

// IsPresetNotFound checks if the error is a preset not found error
func IsPresetNotFound(err error) bool {
	return Is(err, CodePresetNotFound)
}

// IsPersistenceFailure checks if the error is a persistence failure
func IsPersistenceFailure(err error) bool {
	return Is(err, CodePersistenceFailure)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
