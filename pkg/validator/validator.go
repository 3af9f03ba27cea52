package validator

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	initOnce  sync.Once
	validate  *validator.Validate
	sanitizer *bluemonday.Policy

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func Init() {
	initOnce.Do(func() {
		validate = validator.New()
		sanitizer = bluemonday.StrictPolicy()

		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("no_html", validateNoHTML)
}

func Validate(s interface{}) error {
	Init()
	return validate.Struct(s)
}

// ContainsHTML reports whether value carries markup the strict policy would
// strip. Bare angle brackets in text, as in "I <3 GO", are not markup.
func ContainsHTML(value string) bool {
	Init()
	if !strings.ContainsAny(value, "<>") {
		return false
	}
	return sanitizer.Sanitize(value) != html.EscapeString(value)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	return !ContainsHTML(fl.Field().String())
}
