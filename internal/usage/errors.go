package usage

import "fmt"

// InvalidFlag is returned when a command-line flag is not recognised.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("avrora: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a command needs text it did not get.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("missing %s", arg),
	}
}

func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("unknown command '%s'", command),
	}
}

// BadNumber is returned when text that should be an integer is not one.
func BadNumber(text string) *Error {
	return &Error{
		Kind:    ErrBadNumber,
		Message: fmt.Sprintf("'%s' is not a number", text),
	}
}

// OutOfRange is returned when a number is outside [lo, hi].
func OutOfRange(what string, value, lo, hi int) *Error {
	return &Error{
		Kind:    ErrOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", what, lo, hi, value),
	}
}

// BadTime is returned for a malformed HH:MM time.
func BadTime(text, reason string) *Error {
	return &Error{
		Kind:    ErrBadTime,
		Message: fmt.Sprintf("bad time '%s': %s", text, reason),
	}
}

// BadExpression is returned when an arithmetic expression contains
// characters other than digits, operators, dots and spaces.
func BadExpression(expr string) *Error {
	return &Error{
		Kind:    ErrBadExpression,
		Message: fmt.Sprintf("expression '%s' contains disallowed characters", expr),
	}
}

// BadUnit is returned for an unknown time unit word.
func BadUnit(unit string) *Error {
	return &Error{
		Kind:    ErrBadUnit,
		Message: fmt.Sprintf("unknown time unit '%s'", unit),
	}
}

func UnknownDirection(direction string) *Error {
	return &Error{
		Kind:    ErrUnknownDirection,
		Message: fmt.Sprintf("unknown direction '%s'", direction),
	}
}

// InvalidConfigKey is returned for a settings key that does not exist.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("avrora: unknown setting '%s'", key),
	}
}

// InvalidConfigValue is returned when a settings value fails validation.
func InvalidConfigValue(key, value, hint string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigValue,
		Message: fmt.Sprintf("avrora: invalid value '%s' for %s: %s", value, key, hint),
	}
}
