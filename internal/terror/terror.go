// Package terror defines error classes and codes so errors with different
// messages can still be compared.
package terror

import (
	"fmt"
	"strconv"

	"github.com/pingcap/errors"
)

// ErrClass represents a class of errors.
type ErrClass int

// ErrCode represents a specific error type in a error class.
// Same error code can be used in different error classes.
type ErrCode int

// Error classes
const (
	ClassParser ErrClass = iota + 1
	ClassLexer
	ClassConfig
)

// String implements fmt.Stringer interface.
func (ec ErrClass) String() string {
	switch ec {
	case ClassParser:
		return "parser"
	case ClassLexer:
		return "lexer"
	case ClassConfig:
		return "config"
	}
	return strconv.Itoa(int(ec))
}

// Coder is implemented by errors that carry a class and a code.
type Coder interface {
	ClassCode() (ErrClass, ErrCode)
}

// Equal returns true if the cause of err carries the same class and code.
func (ec ErrClass) Equal(err error, code ErrCode) bool {
	c, ok := errors.Cause(err).(Coder)
	if !ok {
		return false
	}
	class, errCode := c.ClassCode()
	return class == ec && errCode == code
}

// NotEqual returns true if err does not carry the same class and code.
func (ec ErrClass) NotEqual(err error, code ErrCode) bool {
	return !ec.Equal(err, code)
}

// EqualClass returns true if the cause of err carries the same class.
func (ec ErrClass) EqualClass(err error) bool {
	c, ok := errors.Cause(err).(Coder)
	if !ok {
		return false
	}
	class, _ := c.ClassCode()
	return class == ec
}

// New creates an *Error with an error code, message format and arguments.
func (ec ErrClass) New(code ErrCode, message string, args ...interface{}) *Error {
	if len(args) != 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Error{
		Class:   ec,
		Code:    code,
		Message: message,
	}
}

// Error implements error interface and adds integer Class and Code, so
// errors with different message can be compared.
type Error struct {
	Class   ErrClass
	Code    ErrCode
	Message string
}

// Error implements error interface.
func (te *Error) Error() string {
	return fmt.Sprintf("[%s:%d]%s", te.Class, te.Code, te.Message)
}

// ClassCode implements Coder.
func (te *Error) ClassCode() (ErrClass, ErrCode) {
	return te.Class, te.Code
}

// Gen generates a new *Error with the same class and code, and a new
// formatted message.
func (te *Error) Gen(format string, args ...interface{}) *Error {
	err := *te
	err.Message = fmt.Sprintf(format, args...)
	return &err
}

// Equal checks if err has the same class and code as te.
func (te *Error) Equal(err error) bool {
	return te.Class.Equal(err, te.Code)
}
