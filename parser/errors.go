package parser

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/sparksql/internal/terror"
	"github.com/sqlc-dev/sparksql/token"
)

// Error codes of the parser class.
const (
	CodeUnexpectedToken    terror.ErrCode = 1001
	CodeInvalidLiteral     terror.ErrCode = 1002
	CodeInvalidIdentifier  terror.ErrCode = 1003
	CodeUnsupportedCommand terror.ErrCode = 1004
	CodeIntervalShape      terror.ErrCode = 1005
	CodeAmbiguousShape     terror.ErrCode = 1006
	CodeTrailingInput      terror.ErrCode = 1007
	CodeDuplicateClause    terror.ErrCode = 1008
	CodeInvalidStatement   terror.ErrCode = 1009
	CodeUnsupportedType    terror.ErrCode = 1010
)

// Errors returned by CheckDiagnostics and comparable with terror.
var (
	ErrUnsupportedCommand = terror.ClassParser.New(CodeUnsupportedCommand, "unsupported command")
	ErrInvalidIdentifier  = terror.ClassParser.New(CodeInvalidIdentifier, "invalid identifier")
	ErrIntervalShape      = terror.ClassParser.New(CodeIntervalShape, "invalid interval")
)

// SyntaxError is a hard parse failure.
type SyntaxError struct {
	Pos      token.Position
	Expected []string
	Found    string
	Code     terror.ErrCode
	Message  string
}

// ClassCode implements terror.Coder.
func (e *SyntaxError) ClassCode() (terror.ErrClass, terror.ErrCode) {
	return terror.ClassParser, e.Code
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s:%d]line %d:%d %s", terror.ClassParser, e.Code, e.Pos.Line, e.Pos.Column, e.Message)
	if len(e.Expected) > 0 {
		sb.WriteString(" expecting ")
		if len(e.Expected) == 1 {
			sb.WriteString(e.Expected[0])
		} else {
			sb.WriteString("{" + strings.Join(e.Expected, ", ") + "}")
		}
	}
	return sb.String()
}

func newSyntaxError(code terror.ErrCode, pos token.Position, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Code: code, Message: msg}
}

// AsSyntaxError returns the *SyntaxError at the cause of err, if any.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	se, ok := errors.Cause(err).(*SyntaxError)
	return se, ok
}

// IsCode reports whether err was caused by a parser error with code.
func IsCode(err error, code terror.ErrCode) bool {
	return terror.ClassParser.Equal(err, code)
}

// bailout carries a hard failure up to the entry point.
type bailout struct {
	err *SyntaxError
}
