package handler

import (
	"net/http"

	"github.com/chobyoungjae/interface/internal/apierror"
	"github.com/chobyoungjae/interface/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if binding fails — the caller
// should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("잘못된 요청 형식입니다."))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var errs []model.ValidationError
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, model.ValidationError{Field: fe.Field(), Message: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(errs))
		return false
	}
	return true
}
