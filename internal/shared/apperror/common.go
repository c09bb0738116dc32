package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// MissingColumns builds the fatal validation error for a source file that
// lacks required columns. The message names the file and every missing column
// so the user can fix the upload in one pass.
func MissingColumns(file string, columns []string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is missing required columns: %s", file, strings.Join(columns, ", ")),
		http.StatusBadRequest,
	)
}

// FileUnreadable builds the fatal error for an upload that could not be read
// or parsed at all. The message always names the offending file.
func FileUnreadable(file string, err error) *AppError {
	return Wrap(
		err,
		CodeFileUnreadable,
		fmt.Sprintf("%s could not be read", file),
		http.StatusBadRequest,
	)
}

// JoinIntegrity builds the fatal error raised when a lookup source contains a
// duplicate key, which would multiply rows in a left join.
func JoinIntegrity(join, key string) *AppError {
	return New(
		CodeJoinIntegrity,
		fmt.Sprintf("duplicate key %q in %s lookup source", key, join),
		http.StatusUnprocessableEntity,
	)
}

func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
