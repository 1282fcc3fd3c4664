package guard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarbesiso/corekit/core/guard"
)

func TestNotNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilSlice []string
	var nilMap map[string]int
	value := 42

	assert.NoError(t, guard.NotNil("v", &value))
	assert.NoError(t, guard.NotNil("v", "text"))
	assert.NoError(t, guard.NotNil("v", []string{}))

	assert.Error(t, guard.NotNil("v", nil))
	assert.Error(t, guard.NotNil("v", nilPtr), "typed nil pointer must fail")
	assert.Error(t, guard.NotNil("v", nilSlice))
	assert.Error(t, guard.NotNil("v", nilMap))
}

func TestStringChecks(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.NotEmpty("s", "x"))
	assert.Error(t, guard.NotEmpty("s", ""))

	assert.NoError(t, guard.NotBlank("s", " x "))
	assert.Error(t, guard.NotBlank("s", "   \t\n"))

	assert.NoError(t, guard.MinLength("s", "héllo", 5), "length counts runes, not bytes")
	assert.Error(t, guard.MinLength("s", "hell", 5))

	assert.NoError(t, guard.MaxLength("s", "hello", 5))
	assert.Error(t, guard.MaxLength("s", "hello!", 5))

	assert.NoError(t, guard.LengthBetween("s", "abc", 2, 4))
	assert.Error(t, guard.LengthBetween("s", "a", 2, 4))
	assert.Error(t, guard.LengthBetween("s", "abcde", 2, 4))
}

func TestNotEmptySlice(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.NotEmptySlice("items", []int{1}))
	assert.Error(t, guard.NotEmptySlice("items", []int{}))
	assert.Error(t, guard.NotEmptySlice("items", []string(nil)))
}

func TestNumericChecks(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.InRange("n", 5, 1, 10))
	assert.NoError(t, guard.InRange("n", 1, 1, 10), "range is inclusive")
	assert.NoError(t, guard.InRange("n", 10, 1, 10))
	assert.Error(t, guard.InRange("n", 0, 1, 10))
	assert.Error(t, guard.InRange("n", 11, 1, 10))
	assert.NoError(t, guard.InRange("s", "banana", "apple", "cherry"))

	assert.NoError(t, guard.Positive("n", 1))
	assert.NoError(t, guard.Positive("n", 0.5))
	assert.Error(t, guard.Positive("n", 0))
	assert.Error(t, guard.Positive("n", -3))

	assert.NoError(t, guard.NonNegative("n", 0))
	assert.Error(t, guard.NonNegative("n", -1))
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.Ordered("start", "end", 1, 2))
	assert.NoError(t, guard.Ordered("start", "end", 2, 2))

	err := guard.Ordered("start", "end", 3, 2)
	require.Error(t, err)

	var argErr *guard.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "end", argErr.Arg)
}

func TestNotZeroTime(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.NotZeroTime("at", time.Now()))
	assert.Error(t, guard.NotZeroTime("at", time.Time{}))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.Matches("code", "AB-123", `^[A-Z]{2}-\d{3}$`))
	assert.Error(t, guard.Matches("code", "ab-123", `^[A-Z]{2}-\d{3}$`))
	assert.Error(t, guard.Matches("code", "x", `[unclosed`))

	// Second call with the same pattern hits the cache.
	assert.NoError(t, guard.Matches("code", "CD-456", `^[A-Z]{2}-\d{3}$`))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.ValidEmail("email", "user@example.com"))
	assert.Error(t, guard.ValidEmail("email", "not-an-email"))
	assert.Error(t, guard.ValidEmail("email", "Name <user@example.com>"), "display names are rejected")
	assert.Error(t, guard.ValidEmail("email", ""))
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.ValidURL("url", "https://example.com/path"))
	assert.NoError(t, guard.ValidURL("url", "http://localhost:8080"))
	assert.Error(t, guard.ValidURL("url", "ftp://example.com"))
	assert.Error(t, guard.ValidURL("url", "/relative/path"))
	assert.Error(t, guard.ValidURL("url", "://bad"))
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.All())
	assert.NoError(t, guard.All(nil, nil))

	first := guard.NotEmpty("a", "")
	second := guard.NotEmpty("b", "")
	assert.Equal(t, first, guard.All(nil, first, second), "first failure wins")
}

func TestErrorIdentity(t *testing.T) {
	t.Parallel()

	err := guard.NotEmpty("name", "")
	require.Error(t, err)

	assert.True(t, errors.Is(err, guard.ErrInvalidArgument))

	var argErr *guard.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "name", argErr.Arg)
	assert.Contains(t, err.Error(), `argument "name"`)
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { guard.Must(nil) })
	assert.Panics(t, func() { guard.Must(errors.New("boom")) })
}
