package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrBadNumber
	ErrOutOfRange
	ErrBadTime
	ErrBadExpression
	ErrBadUnit
	ErrUnknownDirection
	ErrInvalidConfigKey
	ErrInvalidConfigValue
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Everything a user can fix by saying or typing it again
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrInvalidFlag:        2,
	ErrMissingArgument:    2,
	ErrUnknownCommand:     2,
	ErrBadNumber:          2,
	ErrOutOfRange:         2,
	ErrBadTime:            2,
	ErrBadExpression:      2,
	ErrBadUnit:            2,
	ErrUnknownDirection:   2,
	ErrInvalidConfigKey:   1,
	ErrInvalidConfigValue: 2,
}

// Error represents a user-facing usage error with semantic type information.
// Command handlers turn these into clarification replies; they never reach
// the top-level loop.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsUserInput reports whether err is a usage error caused by user input.
func IsUserInput(err error) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.GetExitCode() == 2
}

// KindOf returns the kind of a usage error, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
