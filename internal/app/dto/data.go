package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/utils"
)

const calendarDateTag = "calendar_date"

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validate.RegisterValidation(calendarDateTag, validateCalendarDate); err != nil {
		return err
	}

	return Validate.RegisterTranslation(calendarDateTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(calendarDateTag, "{0} must be a date like 2025-01-15 or Jan 15, 2025", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(calendarDateTag, fe.Field())
			return msg
		})
}

// validateCalendarDate accepts the date formats understood by the search.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseCalendarDate(fl.Field().String())

	return err == nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
