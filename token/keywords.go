package token

import "sort"

// Category is the reservation class of a keyword.
type Category int

const (
	// NonReserved keywords are identifiers in both keyword modes.
	NonReserved Category = iota
	// AnsiReserved keywords are reserved only when ANSI keyword mode is on.
	AnsiReserved
	// AlwaysReserved keywords are reserved in ANSI mode and may never be used
	// as a strict identifier (a table or query alias) in default mode.
	AlwaysReserved
	// StrictNonReserved keywords are identifiers in ANSI mode but, like
	// AlwaysReserved, not strict identifiers in default mode.
	StrictNonReserved
)

func (c Category) String() string {
	switch c {
	case NonReserved:
		return "non-reserved"
	case AnsiReserved:
		return "ansi-reserved"
	case AlwaysReserved:
		return "reserved"
	case StrictNonReserved:
		return "strict-non-reserved"
	}
	return "unknown"
}

var alwaysReserved = map[Token]bool{
	CROSS:     true,
	EXCEPT:    true,
	FULL:      true,
	INNER:     true,
	INTERSECT: true,
	JOIN:      true,
	LATERAL:   true,
	LEFT:      true,
	NATURAL:   true,
	ON:        true,
	RIGHT:     true,
	UNION:     true,
	USING:     true,
}

var strictNonReserved = map[Token]bool{
	ANTI:     true,
	SEMI:     true,
	SETMINUS: true,
}

// SQL:2016 reserved words that Spark only reserves in ANSI mode.
var ansiReserved = map[Token]bool{
	ALL:               true,
	AND:               true,
	ANY:               true,
	AS:                true,
	AUTHORIZATION:     true,
	BOTH:              true,
	CASE:              true,
	CAST:              true,
	CHECK:             true,
	COLLATE:           true,
	COLUMN:            true,
	CONSTRAINT:        true,
	CREATE:            true,
	CURRENT_DATE:      true,
	CURRENT_TIME:      true,
	CURRENT_TIMESTAMP: true,
	CURRENT_USER:      true,
	DISTINCT:          true,
	ELSE:              true,
	END:               true,
	ESCAPE:            true,
	FALSE:             true,
	FETCH:             true,
	FILTER:            true,
	FOR:               true,
	FOREIGN:           true,
	FROM:              true,
	GRANT:             true,
	GROUP:             true,
	HAVING:            true,
	IN:                true,
	INTO:              true,
	IS:                true,
	LEADING:           true,
	NOT:               true,
	NULL:              true,
	ONLY:              true,
	OR:                true,
	ORDER:             true,
	OUTER:             true,
	OVERLAPS:          true,
	PRIMARY:           true,
	REFERENCES:        true,
	SELECT:            true,
	SESSION_USER:      true,
	SOME:              true,
	TABLE:             true,
	THEN:              true,
	TIME:              true,
	TO:                true,
	TRAILING:          true,
	UNIQUE:            true,
	UNKNOWN:           true,
	USER:              true,
	WHEN:              true,
	WHERE:             true,
	WITH:              true,
}

// Reservation returns the reservation category of tok. Non-keyword tokens
// report NonReserved.
func Reservation(tok Token) Category {
	switch {
	case alwaysReserved[tok]:
		return AlwaysReserved
	case strictNonReserved[tok]:
		return StrictNonReserved
	case ansiReserved[tok]:
		return AnsiReserved
	}
	return NonReserved
}

// CanBeIdentifier reports whether the keyword tok may be used as an
// identifier. In ANSI mode only the non-reserved and strict-non-reserved
// keywords qualify. In default mode every keyword qualifies, except that
// strict identifier positions exclude the reserved and strict-non-reserved
// sets.
func CanBeIdentifier(tok Token, ansi, strict bool) bool {
	if !tok.IsKeyword() {
		return false
	}
	cat := Reservation(tok)
	if ansi {
		return cat == NonReserved || cat == StrictNonReserved
	}
	if strict {
		return cat != AlwaysReserved && cat != StrictNonReserved
	}
	return true
}

// KeywordsIn returns the keyword spellings of the given category, sorted.
func KeywordsIn(cat Category) []string {
	var out []string
	for i := keyword_beg + 1; i < keyword_end; i++ {
		if Reservation(i) == cat {
			out = append(out, tokens[i])
		}
	}
	sort.Strings(out)
	return out
}
