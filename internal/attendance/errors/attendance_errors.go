package attendanceerrors

import (
	"net/http"

	"github.com/JoseGading/encorejeuneteam/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid calendar date",
		http.StatusBadRequest,
	)
	ErrEmptyEmployeeName = apperror.New(
		apperror.CodeInvalidInput,
		"employee name must not be empty",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)
