package implicant

import "sort"

// Heuristic selects the next free decision: a variable together with the
// polarity to assign it. Implementations return ok=false once every
// clause is satisfied or no unresolved clause has an unassigned variable.
type Heuristic interface {
	Decide(clauses []*Clause) (v *Variable, value bool, ok bool, err error)
}

// FirstFitHeuristic selects the first unresolved clause and, within it,
// the first unassigned literal, assigning its variable to true. It is the
// default heuristic.
type FirstFitHeuristic struct{}

func (FirstFitHeuristic) Decide(clauses []*Clause) (*Variable, bool, bool, error) {
	for _, c := range clauses {
		if !c.Unresolved() {
			continue
		}
		for _, lit := range c.Lits {
			if !lit.hasValue() {
				return lit.Var, true, true, nil
			}
		}
	}
	return nil, false, false, nil
}

// DLISHeuristic implements the Dynamic Largest Individual Sum heuristic:
// over every unresolved clause, count positive and negative occurrences
// of each unassigned variable, pick the variable maximizing the larger of
// the two counts, and assign the polarity with the larger count (ties
// favor true). Ties between variables are broken by first-seen order.
type DLISHeuristic struct{}

func (DLISHeuristic) Decide(clauses []*Clause) (*Variable, bool, bool, error) {
	type counts struct{ pos, neg int }
	tally := make(map[*Variable]*counts)
	var order []*Variable

	any := false
	for _, c := range clauses {
		if !c.Unresolved() {
			continue
		}
		any = true
		for _, lit := range c.Lits {
			if lit.hasValue() {
				continue
			}
			ct, ok := tally[lit.Var]
			if !ok {
				ct = &counts{}
				tally[lit.Var] = ct
				order = append(order, lit.Var)
			}
			if lit.Positive {
				ct.pos++
			} else {
				ct.neg++
			}
		}
	}
	if !any {
		return nil, false, false, nil
	}

	var best *Variable
	var bestScore int
	var bestValue bool
	for _, v := range order {
		ct := tally[v]
		score := ct.pos
		value := true
		if ct.neg > ct.pos {
			score = ct.neg
			value = false
		}
		if best == nil || score > bestScore {
			best, bestScore, bestValue = v, score, value
		}
	}
	return best, bestValue, true, nil
}

// ExternalChooser is supplied by a test harness or interactive CLI to pick
// the next decision. candidates lists every currently-unassigned variable
// that occurs in an unresolved clause, in a deterministic order. Returning
// ok=false signals the chooser has nothing left to decide.
type ExternalChooser func(candidates []*Variable) (name string, value bool, ok bool)

// ExternalHeuristic defers decisions to an external oracle instead of
// picking one itself. An unrecognized variable name returned by the
// chooser surfaces as UserAbortError.
type ExternalHeuristic struct {
	Choose ExternalChooser
}

func (h ExternalHeuristic) Decide(clauses []*Clause) (*Variable, bool, bool, error) {
	seen := make(map[*Variable]bool)
	var candidates []*Variable
	any := false
	for _, c := range clauses {
		if !c.Unresolved() {
			continue
		}
		any = true
		for _, lit := range c.Lits {
			if lit.hasValue() || seen[lit.Var] {
				continue
			}
			seen[lit.Var] = true
			candidates = append(candidates, lit.Var)
		}
	}
	if !any {
		return nil, false, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })

	name, value, ok := h.Choose(candidates)
	if !ok {
		return nil, false, false, nil
	}
	for _, v := range candidates {
		if v.Name == name {
			return v, value, true, nil
		}
	}
	return nil, false, false, &UserAbortError{VariableName: name}
}
