// Package guid provides identifier factories on top of github.com/google/uuid:
// random, time-ordered (sequential) and deterministic name-based variants,
// plus lenient parsing.
package guid
