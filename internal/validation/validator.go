package validation

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

// Custom validation tags
const (
	TagRequired = "required"
	TagPhone    = "phone"
	TagPin      = "pin"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	pinRegex   = regexp.MustCompile(`^\d{6}$`)
)

func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

func IsPin(s string) bool {
	return pinRegex.MatchString(s)
}

type Violation struct {
	Field   string
	Tag     string
	Message string
}

type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

func (e *PayloadError) Violation(v Violation) {
	e.violations = append(e.violations, v)
}

func (e *PayloadError) Violations() []Violation {
	return e.violations
}

func (e *PayloadError) HasTag(tag string) bool {
	_, ok := e.FirstWithTag(tag)
	return ok
}

func (e *PayloadError) FirstWithTag(tag string) (Violation, bool) {
	for _, v := range e.violations {
		if v.Tag == tag {
			return v, true
		}
	}
	return Violation{}, false
}

type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

func New() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build validator because of missing en translations")
	}

	v := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	if err := Register(v, trans); err != nil {
		return nil, err
	}
	return Echo(v, trans), nil
}

// Register adds phone and pin rules together with their translations
func Register(v *validator.Validate, trans ut.Translator) error {
	rules := []struct {
		tag     string
		message string
		match   func(string) bool
	}{
		{tag: TagPhone, message: "Phone must be 10 digits", match: IsPhone},
		{tag: TagPin, message: "PIN must be 6 digits", match: IsPin},
	}

	for _, r := range rules {
		match := r.match
		if err := v.RegisterValidation(r.tag, func(fl validator.FieldLevel) bool {
			return match(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("failed to register %s validation - %w", r.tag, err)
		}

		tag, message := r.tag, r.message
		err := v.RegisterTranslation(tag, trans, func(t ut.Translator) error {
			return t.Add(tag, message, true)
		}, func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(fe.Tag())
			if err != nil {
				return message
			}
			return msg
		})
		if err != nil {
			return fmt.Errorf("failed to register %s translation - %w", r.tag, err)
		}
	}
	return nil
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0)}
	for _, e := range ve {
		pldErr.Violation(Violation{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}
