package scheduleerrors

import (
	"net/http"

	"github.com/JoseGading/encorejeuneteam/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected 1-12",
		http.StatusBadRequest,
	)
	ErrEmptyRoster = apperror.New(
		apperror.CodeInvalidState,
		"roster is empty, no schedule can be generated",
		http.StatusUnprocessableEntity,
	)
	ErrDayOutOfRange = apperror.New(
		apperror.CodeOutOfRange,
		"day is outside the schedule's day range",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"employee is not part of the roster",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule not found for this month",
		http.StatusNotFound,
	)
)
