package parser

// Config holds the dialect switches of a parse. It is passed by value and
// never changes during a call.
type Config struct {
	// AnsiKeywords reserves the SQL:2016 reserved words and the join and
	// set-operation keywords, so they can no longer be used as identifiers.
	AnsiKeywords bool `toml:"ansi-keywords" json:"ansi-keywords"`
	// LegacySetOpsPrecedence gives INTERSECT the same precedence as UNION
	// and EXCEPT.
	LegacySetOpsPrecedence bool `toml:"legacy-setops-precedence" json:"legacy-setops-precedence"`
	// LegacyExponentAsDecimal reads literals such as 1.5E3 as decimals
	// instead of doubles.
	LegacyExponentAsDecimal bool `toml:"legacy-exponent-as-decimal" json:"legacy-exponent-as-decimal"`
}

// DefaultConfig is the default Spark dialect.
var DefaultConfig = Config{}

// AnsiConfig enables the ANSI keyword policy.
var AnsiConfig = Config{AnsiKeywords: true}
