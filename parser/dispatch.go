package parser

import (
	"sort"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// step is one position of a statement prefix: any of toks, possibly
// skipped when optional.
type step struct {
	toks     []token.Token
	optional bool
}

func kw(toks ...token.Token) step  { return step{toks: toks} }
func opt(toks ...token.Token) step { return step{toks: toks, optional: true} }

// shape pairs a keyword prefix with the parser for the statements it starts.
type shape struct {
	name   string
	prefix []step
	parse  func(p *Parser) ast.Statement
}

var namespaceKinds = []token.Token{token.NAMESPACE, token.DATABASE, token.SCHEMA}
var describeKinds = []token.Token{token.DESC, token.DESCRIBE}

// shapes is ordered. The first shape whose prefix matches builds the
// statement; a longer prefix is listed before any shorter prefix it
// extends. Builders such as EXPLAIN call back into statement, so the
// table is filled in by init.
var shapes []shape

// statementStarts lists the keywords a statement may begin with.
var statementStarts []string

func init() {
	shapes = []shape{
		{"Query", []step{kw(token.SELECT, token.WITH, token.VALUES, token.FROM, token.MAP, token.REDUCE, token.TABLE, token.LPAREN)}, (*Parser).queryStatement},
		{"InsertStatement", []step{kw(token.INSERT)}, (*Parser).insertStatement},
		{"DeleteFromTable", []step{kw(token.DELETE), kw(token.FROM)}, (*Parser).deleteStatement},
		{"UpdateTable", []step{kw(token.UPDATE)}, (*Parser).updateStatement},
		{"MergeIntoTable", []step{kw(token.MERGE), kw(token.INTO)}, (*Parser).mergeStatement},

		{"Use", []step{kw(token.USE)}, (*Parser).useStatement},
		{"CreateNamespace", []step{kw(token.CREATE), kw(namespaceKinds...)}, (*Parser).createNamespace},
		{"AlterNamespace", []step{kw(token.ALTER), kw(namespaceKinds...)}, (*Parser).alterNamespace},
		{"DropNamespace", []step{kw(token.DROP), kw(namespaceKinds...)}, (*Parser).dropNamespace},
		{"ShowNamespaces", []step{kw(token.SHOW), kw(token.DATABASES, token.NAMESPACES)}, (*Parser).showNamespaces},

		{"CreateTable", []step{kw(token.CREATE), opt(token.TEMPORARY), opt(token.EXTERNAL), kw(token.TABLE)}, (*Parser).createTable},
		{"ReplaceTable", []step{kw(token.CREATE), kw(token.OR), kw(token.REPLACE), kw(token.TABLE)}, (*Parser).replaceTable},
		{"ReplaceTable", []step{kw(token.REPLACE), kw(token.TABLE)}, (*Parser).replaceTable},
		{"Analyze", []step{kw(token.ANALYZE), kw(token.TABLE)}, (*Parser).analyzeStatement},
		{"AlterTable", []step{kw(token.ALTER), kw(token.TABLE)}, (*Parser).alterTable},
		{"AlterView", []step{kw(token.ALTER), kw(token.VIEW)}, (*Parser).alterView},
		{"DropTable", []step{kw(token.DROP), kw(token.TABLE)}, (*Parser).dropTable},
		{"DropView", []step{kw(token.DROP), kw(token.VIEW)}, (*Parser).dropView},
		{"CreateView", []step{kw(token.CREATE), opt(token.OR), opt(token.REPLACE), opt(token.GLOBAL), opt(token.TEMPORARY), kw(token.VIEW)}, (*Parser).createView},
		{"CreateFunction", []step{kw(token.CREATE), opt(token.OR), opt(token.REPLACE), opt(token.TEMPORARY), kw(token.FUNCTION)}, (*Parser).createFunction},
		{"DropFunction", []step{kw(token.DROP), opt(token.TEMPORARY), kw(token.FUNCTION)}, (*Parser).dropFunction},

		{"Explain", []step{kw(token.EXPLAIN)}, (*Parser).explainStatement},

		{"ShowTables", []step{kw(token.SHOW), kw(token.TABLES)}, (*Parser).showTables},
		{"ShowTableExtended", []step{kw(token.SHOW), kw(token.TABLE), kw(token.EXTENDED)}, (*Parser).showTableExtended},
		{"ShowTblProperties", []step{kw(token.SHOW), kw(token.TBLPROPERTIES)}, (*Parser).showTblProperties},
		{"ShowColumns", []step{kw(token.SHOW), kw(token.COLUMNS)}, (*Parser).showColumns},
		{"ShowViews", []step{kw(token.SHOW), kw(token.VIEWS)}, (*Parser).showViews},
		{"ShowPartitions", []step{kw(token.SHOW), kw(token.PARTITIONS)}, (*Parser).showPartitions},
		{"ShowFunctions", []step{kw(token.SHOW), opt(token.USER, token.ALL, token.IDENT), kw(token.FUNCTIONS)}, (*Parser).showFunctions},
		{"ShowCreateTable", []step{kw(token.SHOW), kw(token.CREATE), kw(token.TABLE)}, (*Parser).showCreateTable},
		{"ShowCurrentNamespace", []step{kw(token.SHOW), kw(token.CURRENT), kw(token.NAMESPACE)}, (*Parser).showCurrentNamespace},

		{"DescribeFunction", []step{kw(describeKinds...), kw(token.FUNCTION)}, (*Parser).describeFunction},
		{"DescribeNamespace", []step{kw(describeKinds...), kw(namespaceKinds...)}, (*Parser).describeNamespace},
		{"DescribeQuery", []step{kw(describeKinds...), kw(token.QUERY)}, (*Parser).describeQuery},
		{"DescribeQuery", []step{kw(describeKinds...), kw(token.SELECT, token.WITH, token.VALUES, token.FROM, token.MAP, token.REDUCE, token.LPAREN)}, (*Parser).describeQuery},
		{"DescribeRelation", []step{kw(describeKinds...)}, (*Parser).describeRelation},

		{"CommentNamespace", []step{kw(token.COMMENT), kw(token.ON), kw(namespaceKinds...)}, (*Parser).commentNamespace},
		{"CommentTable", []step{kw(token.COMMENT), kw(token.ON), kw(token.TABLE)}, (*Parser).commentTable},

		{"RefreshTable", []step{kw(token.REFRESH), kw(token.TABLE)}, (*Parser).refreshTable},
		{"RefreshFunction", []step{kw(token.REFRESH), kw(token.FUNCTION)}, (*Parser).refreshFunction},
		{"RefreshResource", []step{kw(token.REFRESH)}, (*Parser).refreshResource},
		{"CacheTable", []step{kw(token.CACHE), opt(token.LAZY), kw(token.TABLE)}, (*Parser).cacheTable},
		{"UncacheTable", []step{kw(token.UNCACHE), kw(token.TABLE)}, (*Parser).uncacheTable},
		{"ClearCache", []step{kw(token.CLEAR), kw(token.CACHE)}, (*Parser).clearCache},
		{"LoadData", []step{kw(token.LOAD), kw(token.DATA)}, (*Parser).loadData},
		{"TruncateTable", []step{kw(token.TRUNCATE), kw(token.TABLE)}, (*Parser).truncateTable},
		{"RepairTable", []step{kw(token.MSCK), kw(token.REPAIR), kw(token.TABLE)}, (*Parser).repairTable},
		{"ManageResource", []step{kw(token.ADD, token.LIST)}, (*Parser).manageResource},

		{"SetTimeZone", []step{kw(token.SET), kw(token.TIME), kw(token.ZONE)}, (*Parser).setTimeZone},
		{"UnsupportedCommand", []step{kw(token.SET), kw(token.ROLE)}, unsupportedCommand(2)},
		{"SetConfiguration", []step{kw(token.SET)}, (*Parser).setConfiguration},
		{"ResetConfiguration", []step{kw(token.RESET)}, (*Parser).resetConfiguration},

		{"UnsupportedCommand", []step{kw(token.CREATE, token.DROP), kw(token.ROLE)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.GRANT, token.REVOKE)}, unsupportedCommand(1)},
		{"UnsupportedCommand", []step{kw(token.SHOW), kw(token.GRANT, token.ROLE, token.ROLES, token.PRINCIPALS, token.COMPACTIONS, token.TRANSACTIONS, token.INDEXES, token.LOCKS)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.SHOW), kw(token.CURRENT), kw(token.ROLES)}, unsupportedCommand(3)},
		{"UnsupportedCommand", []step{kw(token.EXPORT, token.IMPORT), kw(token.TABLE)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.CREATE, token.DROP, token.ALTER), kw(token.INDEX)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.LOCK, token.UNLOCK), kw(token.TABLE, token.DATABASE)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.CREATE, token.DROP), kw(token.TEMPORARY), kw(token.MACRO)}, unsupportedCommand(3)},
		{"UnsupportedCommand", []step{kw(token.START), kw(token.TRANSACTION)}, unsupportedCommand(2)},
		{"UnsupportedCommand", []step{kw(token.COMMIT, token.ROLLBACK, token.DFS)}, unsupportedCommand(1)},
	}
	statementStarts = startKeywords(shapes)
}

// match returns the number of tokens the prefix of s covers, or -1.
func (p *Parser) match(s *shape) int {
	n := 0
	for _, st := range s.prefix {
		found := false
		for _, t := range st.toks {
			if p.peekTok(n) == t {
				found = true
				break
			}
		}
		switch {
		case found:
			n++
		case !st.optional:
			return -1
		}
	}
	return n
}

// startKeywords returns the sorted keywords the shapes begin with.
func startKeywords(shapes []shape) []string {
	seen := map[string]bool{}
	var starts []string
	for _, s := range shapes {
		for _, t := range s.prefix[0].toks {
			name := quote(t)
			if !seen[name] {
				seen[name] = true
				starts = append(starts, name)
			}
		}
	}
	sort.Strings(starts)
	return starts
}

// statement dispatches on the leading keywords. Two shapes matching the
// same number of tokens indicate an ambiguous table and fail.
func (p *Parser) statement() ast.Statement {
	best, length := -1, -1
	for i := range shapes {
		n := p.match(&shapes[i])
		if n < 0 {
			continue
		}
		if best < 0 {
			best, length = i, n
			continue
		}
		if n == length && shapes[i].name != shapes[best].name {
			p.failf(CodeAmbiguousShape, p.peek().Pos, "ambiguous statement: %s and %s both match %s",
				shapes[best].name, shapes[i].name, p.prefixText(n))
		}
	}
	if best < 0 {
		p.unexpected(statementStarts...)
	}
	return shapes[best].parse(p)
}

func (p *Parser) prefixText(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.ToUpper(p.peekN(i).Value)
	}
	return strings.Join(parts, " ")
}
