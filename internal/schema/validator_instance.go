package schema

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	paramTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	colorHexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the schema package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Type tags form an open set, so this only checks tag shape. Coverage
		// against actual renderers is the registry's job.
		_ = v.RegisterValidation("param_type", func(fl validator.FieldLevel) bool {
			return paramTypePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_hex", func(fl validator.FieldLevel) bool {
			return colorHexPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the
// schema package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
