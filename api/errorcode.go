package api

import (
	"github.com/velaraptor/pocas-backend/engine"
	"github.com/velaraptor/pocas-backend/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid credentials",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: engine.ErrAnswerCountMismatch.Error(),
		1013: "invalid date of birth",

		1100: "services not found",
		1101: "questions not found",
		1102: store.ErrDuplicateService.Error(),

		1200: engine.ErrLocationUnresolved.Error(),
	}

	errorInternalServer     = errorJSON(999)
	errorInvalidCredentials = errorJSON(1000)

	errorInvalidParameters   = errorJSON(1010)
	errorCannotParseRequest  = errorJSON(1011)
	errorAnswerCountMismatch = errorJSON(1012)
	errorInvalidDateOfBirth  = errorJSON(1013)

	errorServicesNotFound  = errorJSON(1100)
	errorQuestionsNotFound = errorJSON(1101)
	errorDuplicateService  = errorJSON(1102)

	errorLocationUnresolved = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
