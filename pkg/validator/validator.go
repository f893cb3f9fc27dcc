package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldErrors returns one error per failed field constraint of s.
func FieldErrors(s interface{}) []error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			errs = append(errs, fmt.Errorf("field %s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		errs = append(errs, fmt.Errorf("field %s: failed %s", fe.Field(), fe.Tag()))
	}
	return errs
}

func ValidateStruct(s interface{}) error {
	errs := FieldErrors(s)
	if len(errs) == 0 {
		return nil
	}

	errMsgs := make([]string, 0, len(errs))
	for _, err := range errs {
		errMsgs = append(errMsgs, err.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
