package parser

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/lexer"
	"github.com/sqlc-dev/sparksql/token"
)

// -----------------------------------------------------------------------------
// Numbers

// number parses an optionally negated numeric literal.
func (p *Parser) number() *ast.Literal {
	neg := false
	pos := p.peek().Pos
	if p.at(token.MINUS) {
		p.next()
		neg = true
	}
	item := p.peek()
	if !item.Token.IsNumeric() {
		p.unexpected("number")
	}
	p.next()
	lit := p.numberLiteral(item, neg)
	lit.Position = pos
	return lit
}

func (p *Parser) numberLiteral(item lexer.Item, neg bool) *ast.Literal {
	text := item.Value
	if neg {
		text = "-" + text
	}
	lit := &ast.Literal{Position: item.Pos, Raw: text}

	switch item.Token {
	case token.INTEGER_VALUE:
		v, err := strconv.ParseInt(text, 10, 64)
		switch {
		case err != nil:
			lit.Type = ast.LiteralDecimal
			lit.Value = p.decimal(item, text)
		case v >= math.MinInt32 && v <= math.MaxInt32:
			lit.Type = ast.LiteralInteger
			lit.Value = v
		default:
			lit.Type = ast.LiteralBigInt
			lit.Value = v
		}
	case token.BIGINT_LITERAL:
		lit.Type = ast.LiteralBigInt
		lit.Value = p.integral(item, text, 64, "bigint")
	case token.SMALLINT_LITERAL:
		lit.Type = ast.LiteralSmallInt
		lit.Value = p.integral(item, text, 16, "smallint")
	case token.TINYINT_LITERAL:
		lit.Type = ast.LiteralTinyInt
		lit.Value = p.integral(item, text, 8, "tinyint")
	case token.DOUBLE_LITERAL:
		lit.Type = ast.LiteralDouble
		lit.Value = p.float(item, text[:len(text)-1], 64, "double")
	case token.FLOAT_LITERAL:
		lit.Type = ast.LiteralFloat
		lit.Value = p.float(item, text[:len(text)-1], 32, "float")
	case token.BIGDECIMAL_LITERAL:
		lit.Type = ast.LiteralBigDecimal
		lit.Value = p.decimal(item, text[:len(text)-2])
	case token.DECIMAL_VALUE:
		lit.Type = ast.LiteralDecimal
		lit.Value = p.decimal(item, text)
	case token.EXPONENT_VALUE:
		if p.cfg.LegacyExponentAsDecimal {
			lit.Type = ast.LiteralDecimal
			lit.Value = p.decimal(item, text)
		} else {
			lit.Type = ast.LiteralDouble
			lit.Value = p.float(item, text, 64, "double")
		}
	default:
		p.unexpected("number")
	}
	return lit
}

var integralBounds = map[int][2]int64{
	8:  {math.MinInt8, math.MaxInt8},
	16: {math.MinInt16, math.MaxInt16},
	64: {math.MinInt64, math.MaxInt64},
}

func (p *Parser) integral(item lexer.Item, text string, bits int, typ string) int64 {
	digits := text[:len(text)-1]
	v, err := strconv.ParseInt(digits, 10, bits)
	if err != nil {
		b := integralBounds[bits]
		p.failf(CodeInvalidLiteral, item.Pos,
			"Numeric literal %s does not fit in range [%d, %d] for type %s", digits, b[0], b[1], typ)
	}
	return v
}

func (p *Parser) float(item lexer.Item, text string, bits int, typ string) float64 {
	v, err := strconv.ParseFloat(text, bits)
	if err != nil || math.IsInf(v, 0) {
		p.failf(CodeInvalidLiteral, item.Pos, "Numeric literal %s does not fit in range for type %s", text, typ)
	}
	return v
}

func (p *Parser) decimal(item lexer.Item, text string) decimal.Decimal {
	d, err := decimal.NewFromString(text)
	if err != nil {
		p.failf(CodeInvalidLiteral, item.Pos, "Invalid decimal literal %s", text)
	}
	return d
}

// integerValue parses an INTEGER_VALUE as an int.
func (p *Parser) integerValue() int {
	item := p.expect(token.INTEGER_VALUE)
	v, err := strconv.Atoi(item.Value)
	if err != nil {
		p.failf(CodeInvalidLiteral, item.Pos, "Numeric literal %s does not fit in range for type int", item.Value)
	}
	return v
}

// -----------------------------------------------------------------------------
// Strings

// stringValue parses one or more adjacent string literals and returns their
// concatenation.
func (p *Parser) stringValue() string {
	item := p.expect(token.STRING)
	if !p.at(token.STRING) {
		return item.Value
	}
	var sb strings.Builder
	sb.WriteString(item.Value)
	for p.at(token.STRING) {
		sb.WriteString(p.next().Value)
	}
	return sb.String()
}

// optString parses a string if one is next.
func (p *Parser) optString() *string {
	if !p.at(token.STRING) {
		return nil
	}
	s := p.stringValue()
	return &s
}

func (p *Parser) stringLiteral() *ast.Literal {
	pos := p.peek().Pos
	return &ast.Literal{Position: pos, Type: ast.LiteralString, Value: p.stringValue()}
}

// commentSpec parses COMMENT 'text'.
func (p *Parser) commentSpec() *string {
	p.expect(token.COMMENT)
	s := p.stringValue()
	return &s
}

// locationSpec parses LOCATION 'path'.
func (p *Parser) locationSpec() *string {
	p.expect(token.LOCATION)
	s := p.stringValue()
	return &s
}

// -----------------------------------------------------------------------------
// Typed literals

// typedLiteral parses `type 'value'` after the type name has been peeked.
func (p *Parser) typedLiteral() ast.Expression {
	name := p.next()
	valuePos := p.peek().Pos
	value := p.stringValue()
	lit := &ast.TypedLiteral{Position: name.Pos, TypeName: strings.ToUpper(name.Value), Value: value}

	switch lit.TypeName {
	case "DATE":
		if d, err := civil.ParseDate(strings.TrimSpace(value)); err == nil {
			lit.Date = &d
		}
	case "TIMESTAMP":
		s := strings.Replace(strings.TrimSpace(value), " ", "T", 1)
		if dt, err := civil.ParseDateTime(s); err == nil {
			lit.Timestamp = &dt
		}
	case "X":
		padded := value
		if len(padded)%2 == 1 {
			padded = "0" + padded
		}
		if _, err := hex.DecodeString(padded); err != nil {
			p.failf(CodeInvalidLiteral, valuePos, "contains illegal character for hexBinary: %s", value)
		}
	case "INTERVAL":
	default:
		p.failf(CodeInvalidLiteral, name.Pos, "Literals of type '%s' are currently not supported.", lit.TypeName)
	}
	return lit
}

// -----------------------------------------------------------------------------
// Intervals

var intervalUnits = map[string]string{
	"YEAR":         "YEAR",
	"YEARS":        "YEAR",
	"MONTH":        "MONTH",
	"MONTHS":       "MONTH",
	"WEEK":         "WEEK",
	"WEEKS":        "WEEK",
	"DAY":          "DAY",
	"DAYS":         "DAY",
	"HOUR":         "HOUR",
	"HOURS":        "HOUR",
	"MINUTE":       "MINUTE",
	"MINUTES":      "MINUTE",
	"SECOND":       "SECOND",
	"SECONDS":      "SECOND",
	"MILLISECOND":  "MILLISECOND",
	"MILLISECONDS": "MILLISECOND",
	"MICROSECOND":  "MICROSECOND",
	"MICROSECONDS": "MICROSECOND",
}

var unitRanges = map[[2]string]bool{
	{"YEAR", "MONTH"}:    true,
	{"DAY", "HOUR"}:      true,
	{"DAY", "MINUTE"}:    true,
	{"DAY", "SECOND"}:    true,
	{"HOUR", "MINUTE"}:   true,
	{"HOUR", "SECOND"}:   true,
	{"MINUTE", "SECOND"}: true,
}

// intervalValueLen returns the number of tokens of the interval value that
// starts n tokens ahead, or 0 if there is none.
func (p *Parser) intervalValueLen(n int) int {
	switch p.peekTok(n) {
	case token.STRING, token.INTEGER_VALUE, token.DECIMAL_VALUE:
		return 1
	case token.PLUS, token.MINUS:
		switch p.peekTok(n + 1) {
		case token.INTEGER_VALUE, token.DECIMAL_VALUE:
			return 2
		}
	}
	return 0
}

// atIntervalFragment reports whether a value followed by a unit word starts
// n tokens ahead. Only the leading number of an interval may be followed by
// a word that is not a unit; it is rejected when the unit is read.
func (p *Parser) atIntervalFragment(n int, first bool) bool {
	l := p.intervalValueLen(n)
	if l == 0 {
		return false
	}
	word := p.peekN(n + l)
	if !p.isIdentifier(word, false) {
		return false
	}
	if first && p.peekTok(n) != token.STRING {
		return true
	}
	_, ok := intervalUnits[strings.ToUpper(word.Value)]
	return ok
}

// atInterval reports whether INTERVAL starts an interval literal rather
// than naming a column.
func (p *Parser) atInterval() bool {
	if !p.at(token.INTERVAL) {
		return false
	}
	return p.atIntervalFragment(1, true)
}

// interval parses INTERVAL fragment+.
func (p *Parser) interval() *ast.IntervalLiteral {
	start := p.expect(token.INTERVAL)
	return p.intervalFields(start.Pos)
}

func (p *Parser) intervalFields(pos token.Position) *ast.IntervalLiteral {
	lit := &ast.IntervalLiteral{Position: pos}
	ranges := 0
	for p.atIntervalFragment(0, len(lit.Fields) == 0) {
		f := p.intervalField()
		if f.ToUnit != "" {
			ranges++
		}
		lit.Fields = append(lit.Fields, f)
	}
	if len(lit.Fields) == 0 {
		p.unexpected("interval value")
	}
	if ranges > 0 && len(lit.Fields) > 1 {
		lit.Diagnostic = p.diagnose(pos, ast.DiagIntervalShape,
			"Can only have a single from-to unit in the interval literal syntax")
	}
	return lit
}

func (p *Parser) intervalField() *ast.IntervalField {
	f := &ast.IntervalField{Position: p.peek().Pos}
	switch {
	case p.at(token.STRING):
		f.Value = p.stringValue()
		f.StringValue = true
	case p.at(token.PLUS, token.MINUS):
		sign := p.next().Value
		f.Value = p.next().Value
		if sign == "-" {
			f.Value = "-" + f.Value
		}
	default:
		f.Value = p.next().Value
	}
	f.Unit = p.intervalUnit()
	if p.at(token.TO) {
		toPos := p.next().Pos
		f.ToUnit = p.intervalUnit()
		if !f.StringValue {
			p.failf(CodeInvalidLiteral, f.Position, "The value of from-to unit must be a string")
		}
		if !unitRanges[[2]string{f.Unit, f.ToUnit}] {
			p.failf(CodeInvalidLiteral, toPos, "Intervals FROM %s TO %s are not supported.", f.Unit, f.ToUnit)
		}
	}
	return f
}

func (p *Parser) intervalUnit() string {
	item := p.identifierPart(false)
	unit, ok := intervalUnits[strings.ToUpper(item.Value)]
	if !ok {
		p.failf(CodeInvalidLiteral, item.Pos, "Error parsing interval, invalid unit '%s'", item.Value)
	}
	return unit
}

// -----------------------------------------------------------------------------
// Property lists

// propertyList parses ( key [=] value, ... ).
func (p *Parser) propertyList() []*ast.Property {
	p.expect(token.LPAREN)
	props := []*ast.Property{p.property()}
	for p.accept(token.COMMA) {
		props = append(props, p.property())
	}
	p.expect(token.RPAREN)
	return props
}

func (p *Parser) property() *ast.Property {
	prop := &ast.Property{Position: p.peek().Pos}
	if p.at(token.STRING) {
		prop.Key = p.stringValue()
		prop.StringKey = true
	} else {
		prop.Key = p.qualifiedName().Name()
	}
	eq := p.accept(token.EQ)
	prop.Value = p.propertyValue()
	if eq && prop.Value == nil {
		p.unexpected("property value")
	}
	return prop
}

func (p *Parser) propertyValue() *ast.Literal {
	item := p.peek()
	switch item.Token {
	case token.STRING:
		return p.stringLiteral()
	case token.INTEGER_VALUE, token.DECIMAL_VALUE:
		p.next()
		return p.numberLiteral(item, false)
	case token.MINUS:
		if t := p.peekTok(1); t == token.INTEGER_VALUE || t == token.DECIMAL_VALUE {
			return p.number()
		}
	case token.TRUE, token.FALSE:
		p.next()
		return &ast.Literal{Position: item.Pos, Type: ast.LiteralBoolean, Value: item.Token == token.TRUE}
	}
	return nil
}
