package deckthemes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"oss.terrastruct.com/deck/lib/color"
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidColor   = errors.New("invalid color")
	ErrEmptyFontStack = errors.New("empty font stack")
	ErrInvalidShadow  = errors.New("invalid shadow")
)

// FieldError locates a validation problem, e.g. colors.bg.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Requirements lists the roles a consumer reads. Roles present in a theme but not
// listed here are still checked for well-formedness.
type Requirements struct {
	Colors     []string
	FontFamily []string
	BoxShadow  []string
}

// DefaultRequirements returns the roles the HTML deck renderer reads.
func DefaultRequirements() Requirements {
	return Requirements{
		Colors:     ColorRoles(),
		FontFamily: []string{Sans},
		BoxShadow:  []string{DeckShadow},
	}
}

func Validate(t Theme) error {
	return ValidateFor(t, DefaultRequirements())
}

// ValidateFor returns nil or every problem found, combined. Use multierr.Errors to
// get the individual *FieldError values; errors.Is works against the sentinels.
func ValidateFor(t Theme, req Requirements) error {
	var err error

	for _, role := range req.Colors {
		if _, ok := t.Colors[role]; !ok {
			err = multierr.Append(err, &FieldError{"colors." + role, ErrMissingField})
		}
	}
	for _, role := range sortedKeys(t.Colors) {
		if cerr := color.Validate(t.Colors[role]); cerr != nil {
			err = multierr.Append(err, &FieldError{"colors." + role, fmt.Errorf("%w: %v", ErrInvalidColor, cerr)})
		}
	}

	for _, role := range req.FontFamily {
		if _, ok := t.FontFamily[role]; !ok {
			err = multierr.Append(err, &FieldError{"fontFamily." + role, ErrMissingField})
		}
	}
	for _, role := range sortedKeys(t.FontFamily) {
		stack := t.FontFamily[role]
		if len(stack) == 0 {
			err = multierr.Append(err, &FieldError{"fontFamily." + role, ErrEmptyFontStack})
			continue
		}
		for i, f := range stack {
			if strings.TrimSpace(f) == "" {
				err = multierr.Append(err, &FieldError{fmt.Sprintf("fontFamily.%s[%d]", role, i), fmt.Errorf("%w: blank font name", ErrEmptyFontStack)})
			}
		}
	}

	for _, role := range req.BoxShadow {
		if _, ok := t.BoxShadow[role]; !ok {
			err = multierr.Append(err, &FieldError{"boxShadow." + role, ErrMissingField})
		}
	}
	for _, role := range sortedKeys(t.BoxShadow) {
		if serr := t.BoxShadow[role].Validate(); serr != nil {
			err = multierr.Append(err, &FieldError{"boxShadow." + role, fmt.Errorf("%w: %v", ErrInvalidShadow, serr)})
		}
	}

	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
