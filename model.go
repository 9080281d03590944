// Package implicant implements a CDCL (Conflict-Driven Clause Learning)
// SAT solver: boolean constraint propagation via the unit rule, an
// implication graph recording decisions and their antecedents, and a
// conflict-analysis procedure that finds a first Unique Implication
// Point, learns a clause by resolution, and backjumps non-chronologically.
package implicant

import (
	"sort"
	"strconv"
)

// Value is the tri-state assignment of a Variable.
type Value int8

const (
	Unassigned Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// Variable is a stable boolean identity, named so that two Literals built
// from clauses that mention the "same" variable can be unified by
// Canonicalize. Exactly one Variable exists per name within a solve run.
type Variable struct {
	Name string
	Value Value

	// node is the current graph node this variable is bound to (nil when
	// unassigned). It lets graph edge-construction find a variable's
	// decision node in O(1) instead of scanning every node in the graph.
	node *node
}

func (v *Variable) hasValue() bool { return v.Value != Unassigned }

// Literal is a variable or its negation. Literals are value objects: many
// Literals may reference the same Variable.
type Literal struct {
	Var      *Variable
	Positive bool
}

func (l Literal) String() string {
	if l.Positive {
		return l.Var.Name
	}
	return "!" + l.Var.Name
}

// Eval returns the literal's truth value under the variable's current
// assignment: Unassigned if the variable has no value, else True/False
// according to (value XNOR positive).
func (l Literal) Eval() Value {
	if l.Var.Value == Unassigned {
		return Unassigned
	}
	if (l.Var.Value == True) == l.Positive {
		return True
	}
	return False
}

func (l Literal) hasValue() bool { return l.Var.hasValue() }

// Negate returns the complementary literal over the same variable.
func (l Literal) Negate() Literal {
	return Literal{Var: l.Var, Positive: !l.Positive}
}

// Clause is an ordered disjunction of literals. Its status is always
// derived from the current assignment, never stored.
type Clause struct {
	Lits []Literal
}

// NewClause builds a clause from the given literals, preserving order.
func NewClause(lits ...Literal) *Clause {
	return &Clause{Lits: append([]Literal(nil), lits...)}
}

// Satisfied reports whether at least one literal evaluates to true.
func (c *Clause) Satisfied() bool {
	for _, l := range c.Lits {
		if l.Eval() == True {
			return true
		}
	}
	return false
}

// Falsified reports whether every literal is assigned and none is true.
// An empty clause is immediately falsified.
func (c *Clause) Falsified() bool {
	if len(c.Lits) == 0 {
		return true
	}
	for _, l := range c.Lits {
		if !l.hasValue() {
			return false
		}
		if l.Eval() == True {
			return false
		}
	}
	return true
}

// Unit reports whether exactly one literal is unassigned and every other
// literal evaluates to false, returning that literal.
func (c *Clause) Unit() (Literal, bool) {
	var unassigned Literal
	count := 0
	for _, l := range c.Lits {
		if !l.hasValue() {
			count++
			if count > 1 {
				return Literal{}, false
			}
			unassigned = l
			continue
		}
		if l.Eval() == True {
			// Already satisfied by a different literal; not unit.
			return Literal{}, false
		}
	}
	return unassigned, count == 1
}

// Unresolved reports whether the clause is neither satisfied, falsified
// nor unit.
func (c *Clause) Unresolved() bool {
	return !c.Satisfied() && !c.Falsified() && !unitOK(c)
}

func unitOK(c *Clause) bool {
	_, ok := c.Unit()
	return ok
}

// Resolve returns the resolvent of c1 and c2: the literals of their union
// with every complementary pair removed. Duplicate literals collapse.
// Resolving with an empty clause yields the other operand. The result is
// built in first-appearance order (c1 then c2) so that iterated folding
// over an antecedent set is reproducible.
func Resolve(c1, c2 *Clause) *Clause {
	var order []Literal
	seen := make(map[Literal]bool)
	hasPos := make(map[*Variable]bool)
	hasNeg := make(map[*Variable]bool)

	add := func(c *Clause) {
		for _, l := range c.Lits {
			if !seen[l] {
				seen[l] = true
				order = append(order, l)
			}
			if l.Positive {
				hasPos[l.Var] = true
			} else {
				hasNeg[l.Var] = true
			}
		}
	}
	add(c1)
	add(c2)

	var lits []Literal
	for _, l := range order {
		if l.Positive && !hasNeg[l.Var] {
			lits = append(lits, l)
		}
		if !l.Positive && !hasPos[l.Var] {
			lits = append(lits, l)
		}
	}
	return &Clause{Lits: lits}
}

// Canonicalize rebuilds clauses so that every occurrence of the same
// variable name shares one Variable instance, and resets every variable
// to Unassigned. It is a pure transformation with no failure mode.
func Canonicalize(clauses []*Clause) ([]*Clause, map[string]*Variable) {
	vars := make(map[string]*Variable)
	out := make([]*Clause, len(clauses))
	for i, c := range clauses {
		lits := make([]Literal, len(c.Lits))
		for j, l := range c.Lits {
			name := l.Var.Name
			v, ok := vars[name]
			if !ok {
				v = &Variable{Name: name}
				vars[name] = v
			}
			lits[j] = Literal{Var: v, Positive: l.Positive}
		}
		out[i] = &Clause{Lits: lits}
	}
	for _, v := range vars {
		v.Value = Unassigned
		v.node = nil
	}
	return out, vars
}

// FromInts builds a canonical clause set from DIMACS-style integer
// clauses: a negative integer is a negated literal over the variable
// named by its absolute value, rendered as a decimal string. Variables
// are shared by construction, so no separate canonicalization pass is
// required; sortedVarNames returns the variable names in ascending numeric
// order for deterministic reporting.
func FromInts(problem [][]int) ([]*Clause, map[string]*Variable, error) {
	vars := make(map[string]*Variable)
	clauses := make([]*Clause, len(problem))
	for i, raw := range problem {
		lits := make([]Literal, len(raw))
		for j, n := range raw {
			if n == 0 {
				return nil, nil, &MalformedInputError{Reason: "clause contains literal 0"}
			}
			name := strconv.Itoa(abs(n))
			v, ok := vars[name]
			if !ok {
				v = &Variable{Name: name}
				vars[name] = v
			}
			lits[j] = Literal{Var: v, Positive: n > 0}
		}
		clauses[i] = &Clause{Lits: lits}
	}
	return clauses, vars, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sortedVarNames returns the names of vars sorted by their underlying
// numeric value (DIMACS variables are decimal strings of a positive int).
func sortedVarNames(vars map[string]*Variable) []string {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return len(names[i]) < len(names[j]) || (len(names[i]) == len(names[j]) && names[i] < names[j])
	})
	return names
}
