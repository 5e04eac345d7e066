package config

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/frontmatter"
)

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ferrors.ValidationError("input folder must not be empty").
			WithContext("field", "input").
			Build()
	}
	if strings.TrimSpace(c.Output) == "" {
		return ferrors.ValidationError("output folder must not be empty").
			WithContext("field", "output").
			Build()
	}
	if _, err := frontmatter.ParseDialect(c.Dialect); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "unknown dialect").
			Fatal().
			WithContext("field", "dialect").
			WithContext("value", c.Dialect).
			WithContext("valid", frontmatter.DialectNames()).
			Build()
	}
	if samePath(c.Input, c.Output) {
		return ferrors.ValidationError("input and output folders must differ").
			WithContext("input", c.Input).
			WithContext("output", c.Output).
			Build()
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
