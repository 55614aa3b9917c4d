// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match what clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates v and wraps failures in ErrValidation with a readable
// message naming the first offending field.
func (s *Server) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", ErrValidation, fe.Field())
		case "max":
			return fmt.Errorf("%w: %s must be at most %s characters", ErrValidation, fe.Field(), fe.Param())
		default:
			return fmt.Errorf("%w: %s failed %q", ErrValidation, fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
