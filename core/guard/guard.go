package guard

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/constraints"
)

// Number covers the numeric kinds accepted by the sign checks.
type Number interface {
	constraints.Integer | constraints.Float
}

// NotNil fails when v is nil, including typed nil pointers, slices, maps,
// channels, funcs and interfaces wrapping a nil value.
func NotNil(arg string, v any) error {
	if v == nil {
		return fail(arg, "must not be nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return fail(arg, "must not be nil")
		}
	}
	return nil
}

// NotEmpty fails when s is the empty string.
func NotEmpty(arg, s string) error {
	if s == "" {
		return fail(arg, "must not be empty")
	}
	return nil
}

// NotBlank fails when s is empty or consists only of whitespace.
func NotBlank(arg, s string) error {
	if strings.TrimSpace(s) == "" {
		return fail(arg, "must not be blank")
	}
	return nil
}

// NotEmptySlice fails when s has no elements.
func NotEmptySlice[T any](arg string, s []T) error {
	if len(s) == 0 {
		return fail(arg, "must contain at least one element")
	}
	return nil
}

// MinLength fails when s is shorter than min characters.
func MinLength(arg, s string, min int) error {
	if len([]rune(s)) < min {
		return fail(arg, fmt.Sprintf("must be at least %d characters long", min))
	}
	return nil
}

// MaxLength fails when s is longer than max characters.
func MaxLength(arg, s string, max int) error {
	if len([]rune(s)) > max {
		return fail(arg, fmt.Sprintf("must be at most %d characters long", max))
	}
	return nil
}

// LengthBetween fails when the length of s falls outside [min, max].
func LengthBetween(arg, s string, min, max int) error {
	if l := len([]rune(s)); l < min || l > max {
		return fail(arg, fmt.Sprintf("must be between %d and %d characters long", min, max))
	}
	return nil
}

// InRange fails when v falls outside the closed range [min, max].
func InRange[T constraints.Ordered](arg string, v, min, max T) error {
	if v < min || v > max {
		return fail(arg, fmt.Sprintf("must be between %v and %v", min, max))
	}
	return nil
}

// Positive fails when v is zero or negative.
func Positive[T Number](arg string, v T) error {
	if v <= 0 {
		return fail(arg, "must be positive")
	}
	return nil
}

// NonNegative fails when v is negative.
func NonNegative[T Number](arg string, v T) error {
	if v < 0 {
		return fail(arg, "must not be negative")
	}
	return nil
}

// Ordered fails when start is greater than end. Equal values pass.
func Ordered[T constraints.Ordered](argStart, argEnd string, start, end T) error {
	if start > end {
		return &ArgumentError{
			Arg:     argEnd,
			Message: fmt.Sprintf("must not be less than %s", argStart),
		}
	}
	return nil
}

// NotZeroTime fails when t is the zero time.
func NotZeroTime(arg string, t time.Time) error {
	if t.IsZero() {
		return fail(arg, "must not be the zero time")
	}
	return nil
}

var (
	patternMu sync.RWMutex
	patterns  = make(map[string]*regexp.Regexp)
)

// compile returns a cached compiled pattern, compiling it on first use.
func compile(pattern string) (*regexp.Regexp, error) {
	patternMu.RLock()
	re, ok := patterns[pattern]
	patternMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	patternMu.Lock()
	patterns[pattern] = re
	patternMu.Unlock()
	return re, nil
}

// Matches fails when s does not match pattern. An invalid pattern is
// reported as an argument error as well, since the call site supplied it.
func Matches(arg, s, pattern string) error {
	re, err := compile(pattern)
	if err != nil {
		return fail(arg, fmt.Sprintf("pattern %q is invalid: %v", pattern, err))
	}
	if !re.MatchString(s) {
		return fail(arg, fmt.Sprintf("must match pattern %q", pattern))
	}
	return nil
}

// ValidEmail fails when s is not a plain RFC 5322 address. Display names
// ("Name <a@b.c>") are rejected.
func ValidEmail(arg, s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fail(arg, "must be a valid email address")
	}
	return nil
}

// ValidURL fails when s is not an absolute http or https URL.
func ValidURL(arg, s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fail(arg, "must be a valid http(s) URL")
	}
	return nil
}

// All returns the first non-nil error, matching the fail-fast style of
// guard clauses at function entry:
//
//	if err := guard.All(
//		guard.NotEmpty("name", name),
//		guard.Positive("size", size),
//	); err != nil {
//		return err
//	}
func All(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Must panics when err is non-nil. Reserve it for package-internal
// invariants that indicate a programming error, never for caller input.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
