package query

// Expr is a node in a parsed search expression
type Expr interface {
	isExpr()

	// String renders the node in tsquery concrete syntax
	String() string

	// precedence returns the binding strength of the node's operator,
	// used to decide where parentheses are required during rendering
	precedence() int
}

const (
	precOr = iota + 1
	precAnd
	precNot
	precLeaf
)

// Term is a single search word
type Term struct {
	Text string
}

func (Term) isExpr() {}

func (t Term) String() string { return t.Text }

func (Term) precedence() int { return precLeaf }

// Phrase is a quoted span matched as a unit
type Phrase struct {
	Text string
}

func (Phrase) isExpr() {}

func (p Phrase) String() string { return "'" + p.Text + "'" }

func (Phrase) precedence() int { return precLeaf }

// Not negates a single expression
type Not struct {
	Inner Expr
}

func (Not) isExpr() {}

func (n Not) String() string { return "!" + render(n.Inner, precNot) }

func (Not) precedence() int { return precNot }

// And is a boolean conjunction of two expressions
type And struct {
	Left  Expr
	Right Expr
}

func (And) isExpr() {}

func (a And) String() string {
	return render(a.Left, precAnd) + " & " + render(a.Right, precAnd)
}

func (And) precedence() int { return precAnd }

// Or is a boolean disjunction of two expressions
type Or struct {
	Left  Expr
	Right Expr
}

func (Or) isExpr() {}

func (o Or) String() string {
	return render(o.Left, precOr) + " | " + render(o.Right, precOr)
}

func (Or) precedence() int { return precOr }

// render wraps a child in parentheses when its operator binds looser
// than the parent's, so the rendered string parses back to the same tree
func render(e Expr, parent int) string {
	s := e.String()
	if e.precedence() < parent {
		return "(" + s + ")"
	}
	return s
}
