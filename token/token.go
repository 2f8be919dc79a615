// Package token defines constants representing the lexical tokens of Spark SQL.
package token

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	WHITESPACE
	TRIVIA_COMMENT // -- ... or /* ... */
	HINT_START     // /*+
	HINT_END       // */ closing a hint

	// Literals
	IDENT              // identifiers, back-quoted identifiers have Item.Quoted set
	STRING             // '...' or "..."
	INTEGER_VALUE      // 12
	EXPONENT_VALUE     // 1E10, 1.5E-3
	DECIMAL_VALUE      // 1.5, .5
	BIGINT_LITERAL     // 12L
	SMALLINT_LITERAL   // 12S
	TINYINT_LITERAL    // 12Y
	FLOAT_LITERAL      // 1.5F
	DOUBLE_LITERAL     // 1.5D
	BIGDECIMAL_LITERAL // 1.5BD

	// Operators
	EQ          // = or ==
	NSEQ        // <=>
	NEQ         // <>
	NEQJ        // !=
	LT          // <
	LTE         // <=
	GT          // >
	GTE         // >=
	PLUS        // +
	MINUS       // -
	ASTERISK    // *
	SLASH       // /
	PERCENT     // %
	TILDE       // ~
	AMPERSAND   // &
	PIPE        // |
	CONCAT_PIPE // ||
	HAT         // ^
	ARROW       // ->

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	COLON     // :

	// Keywords
	keyword_beg
	ADD
	AFTER
	ALL
	ALTER
	ANALYZE
	AND
	ANTI
	ANY
	ARCHIVE
	ARRAY
	AS
	ASC
	AT
	AUTHORIZATION
	BETWEEN
	BOTH
	BUCKET
	BUCKETS
	BY
	CACHE
	CASCADE
	CASE
	CAST
	CHANGE
	CHECK
	CLEAR
	CLUSTER
	CLUSTERED
	CODEGEN
	COLLATE
	COLLECTION
	COLUMN
	COLUMNS
	COMMENT
	COMMIT
	COMPACT
	COMPACTIONS
	COMPUTE
	CONCATENATE
	CONSTRAINT
	COST
	CREATE
	CROSS
	CUBE
	CURRENT
	CURRENT_DATE
	CURRENT_TIME
	CURRENT_TIMESTAMP
	CURRENT_USER
	DATA
	DATABASE
	DATABASES
	DAY
	DBPROPERTIES
	DEFINED
	DELETE
	DELIMITED
	DESC
	DESCRIBE
	DFS
	DIRECTORIES
	DIRECTORY
	DISTINCT
	DISTRIBUTE
	DIV
	DROP
	ELSE
	END
	ESCAPE
	ESCAPED
	EXCEPT
	EXCHANGE
	EXISTS
	EXPLAIN
	EXPORT
	EXTENDED
	EXTERNAL
	EXTRACT
	FALSE
	FETCH
	FIELDS
	FILEFORMAT
	FILTER
	FIRST
	FOLLOWING
	FOR
	FOREIGN
	FORMAT
	FORMATTED
	FROM
	FULL
	FUNCTION
	FUNCTIONS
	GLOBAL
	GRANT
	GROUP
	GROUPING
	HAVING
	HOUR
	IF
	IGNORE
	IMPORT
	IN
	INDEX
	INDEXES
	INNER
	INPATH
	INPUTFORMAT
	INSERT
	INTERSECT
	INTERVAL
	INTO
	IS
	ITEMS
	JOIN
	KEYS
	LAST
	LATERAL
	LAZY
	LEADING
	LEFT
	LIKE
	LIMIT
	LINES
	LIST
	LOAD
	LOCAL
	LOCATION
	LOCK
	LOCKS
	LOGICAL
	MACRO
	MAP
	MATCHED
	MERGE
	MINUTE
	MONTH
	MSCK
	NAMESPACE
	NAMESPACES
	NATURAL
	NO
	NOT
	NULL
	NULLS
	OF
	ON
	ONLY
	OPTION
	OPTIONS
	OR
	ORDER
	OUT
	OUTER
	OUTPUTFORMAT
	OVER
	OVERLAPS
	OVERLAY
	OVERWRITE
	PARTITION
	PARTITIONED
	PARTITIONS
	PERCENTLIT
	PIVOT
	PLACING
	POSITION
	PRECEDING
	PRIMARY
	PRINCIPALS
	PROPERTIES
	PURGE
	QUERY
	RANGE
	RECORDREADER
	RECORDWRITER
	RECOVER
	REDUCE
	REFERENCES
	REFRESH
	RENAME
	REPAIR
	REPLACE
	RESET
	RESTRICT
	REVOKE
	RIGHT
	RLIKE
	ROLE
	ROLES
	ROLLBACK
	ROLLUP
	ROW
	ROWS
	SCHEMA
	SECOND
	SELECT
	SEMI
	SEPARATED
	SERDE
	SERDEPROPERTIES
	SESSION_USER
	SET
	SETMINUS
	SETS
	SHOW
	SKEWED
	SOME
	SORT
	SORTED
	START
	STATISTICS
	STORED
	STRATIFY
	STRUCT
	SUBSTR
	SUBSTRING
	SYNC
	TABLE
	TABLES
	TABLESAMPLE
	TBLPROPERTIES
	TEMPORARY
	TERMINATED
	THEN
	TIME
	TO
	TOUCH
	TRAILING
	TRANSACTION
	TRANSACTIONS
	TRANSFORM
	TRIM
	TRUE
	TRUNCATE
	TYPE
	UNARCHIVE
	UNBOUNDED
	UNCACHE
	UNION
	UNIQUE
	UNKNOWN
	UNLOCK
	UNSET
	UPDATE
	USE
	USER
	USING
	VALUES
	VIEW
	VIEWS
	WHEN
	WHERE
	WINDOW
	WITH
	YEAR
	ZONE
	keyword_end
)

var tokens = [...]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	WHITESPACE:     "WHITESPACE",
	TRIVIA_COMMENT: "COMMENT",
	HINT_START:     "/*+",
	HINT_END:       "*/",

	IDENT:              "IDENT",
	STRING:             "STRING",
	INTEGER_VALUE:      "INTEGER_VALUE",
	EXPONENT_VALUE:     "EXPONENT_VALUE",
	DECIMAL_VALUE:      "DECIMAL_VALUE",
	BIGINT_LITERAL:     "BIGINT_LITERAL",
	SMALLINT_LITERAL:   "SMALLINT_LITERAL",
	TINYINT_LITERAL:    "TINYINT_LITERAL",
	FLOAT_LITERAL:      "FLOAT_LITERAL",
	DOUBLE_LITERAL:     "DOUBLE_LITERAL",
	BIGDECIMAL_LITERAL: "BIGDECIMAL_LITERAL",

	EQ:          "=",
	NSEQ:        "<=>",
	NEQ:         "<>",
	NEQJ:        "!=",
	LT:          "<",
	LTE:         "<=",
	GT:          ">",
	GTE:         ">=",
	PLUS:        "+",
	MINUS:       "-",
	ASTERISK:    "*",
	SLASH:       "/",
	PERCENT:     "%",
	TILDE:       "~",
	AMPERSAND:   "&",
	PIPE:        "|",
	CONCAT_PIPE: "||",
	HAT:         "^",
	ARROW:       "->",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	COLON:     ":",

	ADD:               "ADD",
	AFTER:             "AFTER",
	ALL:               "ALL",
	ALTER:             "ALTER",
	ANALYZE:           "ANALYZE",
	AND:               "AND",
	ANTI:              "ANTI",
	ANY:               "ANY",
	ARCHIVE:           "ARCHIVE",
	ARRAY:             "ARRAY",
	AS:                "AS",
	ASC:               "ASC",
	AT:                "AT",
	AUTHORIZATION:     "AUTHORIZATION",
	BETWEEN:           "BETWEEN",
	BOTH:              "BOTH",
	BUCKET:            "BUCKET",
	BUCKETS:           "BUCKETS",
	BY:                "BY",
	CACHE:             "CACHE",
	CASCADE:           "CASCADE",
	CASE:              "CASE",
	CAST:              "CAST",
	CHANGE:            "CHANGE",
	CHECK:             "CHECK",
	CLEAR:             "CLEAR",
	CLUSTER:           "CLUSTER",
	CLUSTERED:         "CLUSTERED",
	CODEGEN:           "CODEGEN",
	COLLATE:           "COLLATE",
	COLLECTION:        "COLLECTION",
	COLUMN:            "COLUMN",
	COLUMNS:           "COLUMNS",
	COMMENT:           "COMMENT",
	COMMIT:            "COMMIT",
	COMPACT:           "COMPACT",
	COMPACTIONS:       "COMPACTIONS",
	COMPUTE:           "COMPUTE",
	CONCATENATE:       "CONCATENATE",
	CONSTRAINT:        "CONSTRAINT",
	COST:              "COST",
	CREATE:            "CREATE",
	CROSS:             "CROSS",
	CUBE:              "CUBE",
	CURRENT:           "CURRENT",
	CURRENT_DATE:      "CURRENT_DATE",
	CURRENT_TIME:      "CURRENT_TIME",
	CURRENT_TIMESTAMP: "CURRENT_TIMESTAMP",
	CURRENT_USER:      "CURRENT_USER",
	DATA:              "DATA",
	DATABASE:          "DATABASE",
	DATABASES:         "DATABASES",
	DAY:               "DAY",
	DBPROPERTIES:      "DBPROPERTIES",
	DEFINED:           "DEFINED",
	DELETE:            "DELETE",
	DELIMITED:         "DELIMITED",
	DESC:              "DESC",
	DESCRIBE:          "DESCRIBE",
	DFS:               "DFS",
	DIRECTORIES:       "DIRECTORIES",
	DIRECTORY:         "DIRECTORY",
	DISTINCT:          "DISTINCT",
	DISTRIBUTE:        "DISTRIBUTE",
	DIV:               "DIV",
	DROP:              "DROP",
	ELSE:              "ELSE",
	END:               "END",
	ESCAPE:            "ESCAPE",
	ESCAPED:           "ESCAPED",
	EXCEPT:            "EXCEPT",
	EXCHANGE:          "EXCHANGE",
	EXISTS:            "EXISTS",
	EXPLAIN:           "EXPLAIN",
	EXPORT:            "EXPORT",
	EXTENDED:          "EXTENDED",
	EXTERNAL:          "EXTERNAL",
	EXTRACT:           "EXTRACT",
	FALSE:             "FALSE",
	FETCH:             "FETCH",
	FIELDS:            "FIELDS",
	FILEFORMAT:        "FILEFORMAT",
	FILTER:            "FILTER",
	FIRST:             "FIRST",
	FOLLOWING:         "FOLLOWING",
	FOR:               "FOR",
	FOREIGN:           "FOREIGN",
	FORMAT:            "FORMAT",
	FORMATTED:         "FORMATTED",
	FROM:              "FROM",
	FULL:              "FULL",
	FUNCTION:          "FUNCTION",
	FUNCTIONS:         "FUNCTIONS",
	GLOBAL:            "GLOBAL",
	GRANT:             "GRANT",
	GROUP:             "GROUP",
	GROUPING:          "GROUPING",
	HAVING:            "HAVING",
	HOUR:              "HOUR",
	IF:                "IF",
	IGNORE:            "IGNORE",
	IMPORT:            "IMPORT",
	IN:                "IN",
	INDEX:             "INDEX",
	INDEXES:           "INDEXES",
	INNER:             "INNER",
	INPATH:            "INPATH",
	INPUTFORMAT:       "INPUTFORMAT",
	INSERT:            "INSERT",
	INTERSECT:         "INTERSECT",
	INTERVAL:          "INTERVAL",
	INTO:              "INTO",
	IS:                "IS",
	ITEMS:             "ITEMS",
	JOIN:              "JOIN",
	KEYS:              "KEYS",
	LAST:              "LAST",
	LATERAL:           "LATERAL",
	LAZY:              "LAZY",
	LEADING:           "LEADING",
	LEFT:              "LEFT",
	LIKE:              "LIKE",
	LIMIT:             "LIMIT",
	LINES:             "LINES",
	LIST:              "LIST",
	LOAD:              "LOAD",
	LOCAL:             "LOCAL",
	LOCATION:          "LOCATION",
	LOCK:              "LOCK",
	LOCKS:             "LOCKS",
	LOGICAL:           "LOGICAL",
	MACRO:             "MACRO",
	MAP:               "MAP",
	MATCHED:           "MATCHED",
	MERGE:             "MERGE",
	MINUTE:            "MINUTE",
	MONTH:             "MONTH",
	MSCK:              "MSCK",
	NAMESPACE:         "NAMESPACE",
	NAMESPACES:        "NAMESPACES",
	NATURAL:           "NATURAL",
	NO:                "NO",
	NOT:               "NOT",
	NULL:              "NULL",
	NULLS:             "NULLS",
	OF:                "OF",
	ON:                "ON",
	ONLY:              "ONLY",
	OPTION:            "OPTION",
	OPTIONS:           "OPTIONS",
	OR:                "OR",
	ORDER:             "ORDER",
	OUT:               "OUT",
	OUTER:             "OUTER",
	OUTPUTFORMAT:      "OUTPUTFORMAT",
	OVER:              "OVER",
	OVERLAPS:          "OVERLAPS",
	OVERLAY:           "OVERLAY",
	OVERWRITE:         "OVERWRITE",
	PARTITION:         "PARTITION",
	PARTITIONED:       "PARTITIONED",
	PARTITIONS:        "PARTITIONS",
	PERCENTLIT:        "PERCENT",
	PIVOT:             "PIVOT",
	PLACING:           "PLACING",
	POSITION:          "POSITION",
	PRECEDING:         "PRECEDING",
	PRIMARY:           "PRIMARY",
	PRINCIPALS:        "PRINCIPALS",
	PROPERTIES:        "PROPERTIES",
	PURGE:             "PURGE",
	QUERY:             "QUERY",
	RANGE:             "RANGE",
	RECORDREADER:      "RECORDREADER",
	RECORDWRITER:      "RECORDWRITER",
	RECOVER:           "RECOVER",
	REDUCE:            "REDUCE",
	REFERENCES:        "REFERENCES",
	REFRESH:           "REFRESH",
	RENAME:            "RENAME",
	REPAIR:            "REPAIR",
	REPLACE:           "REPLACE",
	RESET:             "RESET",
	RESTRICT:          "RESTRICT",
	REVOKE:            "REVOKE",
	RIGHT:             "RIGHT",
	RLIKE:             "RLIKE",
	ROLE:              "ROLE",
	ROLES:             "ROLES",
	ROLLBACK:          "ROLLBACK",
	ROLLUP:            "ROLLUP",
	ROW:               "ROW",
	ROWS:              "ROWS",
	SCHEMA:            "SCHEMA",
	SECOND:            "SECOND",
	SELECT:            "SELECT",
	SEMI:              "SEMI",
	SEPARATED:         "SEPARATED",
	SERDE:             "SERDE",
	SERDEPROPERTIES:   "SERDEPROPERTIES",
	SESSION_USER:      "SESSION_USER",
	SET:               "SET",
	SETMINUS:          "MINUS",
	SETS:              "SETS",
	SHOW:              "SHOW",
	SKEWED:            "SKEWED",
	SOME:              "SOME",
	SORT:              "SORT",
	SORTED:            "SORTED",
	START:             "START",
	STATISTICS:        "STATISTICS",
	STORED:            "STORED",
	STRATIFY:          "STRATIFY",
	STRUCT:            "STRUCT",
	SUBSTR:            "SUBSTR",
	SUBSTRING:         "SUBSTRING",
	SYNC:              "SYNC",
	TABLE:             "TABLE",
	TABLES:            "TABLES",
	TABLESAMPLE:       "TABLESAMPLE",
	TBLPROPERTIES:     "TBLPROPERTIES",
	TEMPORARY:         "TEMPORARY",
	TERMINATED:        "TERMINATED",
	THEN:              "THEN",
	TIME:              "TIME",
	TO:                "TO",
	TOUCH:             "TOUCH",
	TRAILING:          "TRAILING",
	TRANSACTION:       "TRANSACTION",
	TRANSACTIONS:      "TRANSACTIONS",
	TRANSFORM:         "TRANSFORM",
	TRIM:              "TRIM",
	TRUE:              "TRUE",
	TRUNCATE:          "TRUNCATE",
	TYPE:              "TYPE",
	UNARCHIVE:         "UNARCHIVE",
	UNBOUNDED:         "UNBOUNDED",
	UNCACHE:           "UNCACHE",
	UNION:             "UNION",
	UNIQUE:            "UNIQUE",
	UNKNOWN:           "UNKNOWN",
	UNLOCK:            "UNLOCK",
	UNSET:             "UNSET",
	UPDATE:            "UPDATE",
	USE:               "USE",
	USER:              "USER",
	USING:             "USING",
	VALUES:            "VALUES",
	VIEW:              "VIEW",
	VIEWS:             "VIEWS",
	WHEN:              "WHEN",
	WHERE:             "WHERE",
	WINDOW:            "WINDOW",
	WITH:              "WITH",
	YEAR:              "YEAR",
	ZONE:              "ZONE",
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// Keywords maps upper-case keyword strings to their token types.
var Keywords map[string]Token

// aliases are alternative spellings the lexer folds onto a single keyword.
var aliases = map[string]Token{
	"TEMP":    TEMPORARY,
	"REGEXP":  RLIKE,
	"SCHEMAS": DATABASES,
}

func init() {
	Keywords = make(map[string]Token, len(tokens)+len(aliases))
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
	for s, tok := range aliases {
		Keywords[s] = tok
	}
}

// Lookup returns the token type for an upper-cased identifier string.
// If the string is a keyword, it returns the keyword token.
// Otherwise, it returns IDENT.
func Lookup(ident string) Token {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsNumeric returns true for every numeric literal shape.
func (tok Token) IsNumeric() bool {
	return tok >= INTEGER_VALUE && tok <= BIGDECIMAL_LITERAL
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}
