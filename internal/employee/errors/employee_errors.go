package employeeerrors

import (
	"net/http"

	"github.com/JoseGading/encorejeuneteam/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmptyName = apperror.New(
		apperror.CodeInvalidInput,
		"employee name must not be empty",
		http.StatusBadRequest,
	)
)
