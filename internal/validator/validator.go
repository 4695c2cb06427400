package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations on Gin's binding engine.
// Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		en_translations.RegisterDefaultTranslations(v, trans)
	}
}

// Bind binds and validates the request body into dst. On failure it returns
// a single human-readable message suitable for the {"error": ...} body.
func Bind(c *gin.Context, dst interface{}) string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return Translate(err)
	}
	return ""
}

// Translate collapses a binding/validation error into one message. The
// first missing required field renders as "Missing field: <name>" to keep
// the wire contract of the store adapters; other violations use the
// translated validator message.
func Translate(err error) string {
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		if fe.Tag() == "required" {
			return "Missing field: " + fe.Field()
		}
		return fe.Field() + ": " + fe.Translate(trans)
	}
	// Not a validation error (e.g., JSON syntax error).
	return "Invalid JSON payload"
}
