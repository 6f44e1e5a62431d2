package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bitbucket.org/Amartha/go-emi-collection/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var errorCodes = map[string]ErrorValidateResponse{
	"required":                  {Code: "MISSING_FIELD", Message: "field is missing"},
	"gt":                        {Code: "INVALID_VALUE", Message: "field must be greater than %s"},
	"decimalGreaterThan":        {Code: "INVALID_AMOUNT", Message: "field must be greater than %s"},
	"decimalGreaterThanOrEqual": {Code: "INVALID_AMOUNT", Message: "field must not be less than %s"},
}

var validate = validator.New()

func init() {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerDecimal()
}

// ValidateStruct runs the `validate` tags of toValidate and returns every
// violation as a *multierror.Error of ErrorValidateResponse, or nil.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		// this check is only needed when your code could produce
		// an invalid value for validation such as interface with nil
		// value most including myself do not usually have code like this.
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Code:    "UNKNOWN",
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, toErrorResponse(valErr))
			}
		}
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	data, found := errorCodes[valErr.Tag()]
	if !found {
		return ErrorValidateResponse{
			Code:    "UNKNOWN",
			Field:   valErr.Field(),
			Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
		}
	}

	message := data.Message
	if strings.Contains(message, "%s") {
		message = fmt.Sprintf(message, valErr.Param())
	}

	return ErrorValidateResponse{
		Code:    data.Code,
		Field:   valErr.Field(),
		Message: message,
	}
}

func registerDecimal() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})

	validate.RegisterValidation("decimalGreaterThan", func(fl validator.FieldLevel) bool {
		value, param, ok := decimalOperands(fl)
		return ok && value.GreaterThan(param.Decimal)
	})

	validate.RegisterValidation("decimalGreaterThanOrEqual", func(fl validator.FieldLevel) bool {
		value, param, ok := decimalOperands(fl)
		return ok && value.GreaterThanOrEqual(param.Decimal)
	})
}

func decimalOperands(fl validator.FieldLevel) (value, param models.Decimal, ok bool) {
	data, isString := fl.Field().Interface().(string)
	if !isString {
		return value, param, false
	}

	value, err := models.NewDecimal(data)
	if err != nil {
		return value, param, false
	}

	param, err = models.NewDecimal(fl.Param())
	if err != nil {
		return value, param, false
	}

	return value, param, true
}
