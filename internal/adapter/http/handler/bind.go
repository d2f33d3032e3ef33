package handler

import (
	"errors"
	"fmt"

	"goldvest-ledger/internal/adapter/http/dto"
	"goldvest-ledger/pkg/apperror"
	"goldvest-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds and sanitizes the request body, writing a REQ_001 response
// and returning false on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, validationError(err))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// bindAccountID validates the :id path parameter.
func bindAccountID(c *gin.Context) (string, bool) {
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, validationError(err))
		return "", false
	}
	return uri.ID, true
}

func validationError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation("Malformed request: " + err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperror.Validation(fmt.Sprintf("%s is required", fe.Field()))
	case "account_id":
		return apperror.Validation(fmt.Sprintf("%s must be an account ID like GV-12345", fe.Field()))
	case "amount":
		return apperror.Validation(fmt.Sprintf("%s must be below 1000000000000 with at most 8 decimal places", fe.Field()))
	default:
		return apperror.Validation(fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
}
