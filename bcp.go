package implicant

// bcp carries out boolean constraint propagation to fixpoint: it repeatedly
// finds a unit clause, assigns its forced literal, and records a forced
// decision node, until either no unit clause remains (success) or some
// clause is falsified (conflict).
//
// The falsified-clause scan runs at the top of every iteration, including
// the first, so a clause that is already falsified (or, for the empty
// clause, unconditionally falsified) is caught even when no unit clause
// exists anywhere in the formula to trigger a later scan.
func (s *Solver) bcp() (bool, error) {
	for {
		if idx, ok := s.findFalsified(); ok {
			clause := s.clauses[idx]
			v := conflictVariable(clause)
			if err := s.graph.AddConflict(v, clause, s.level); err != nil {
				return false, err
			}
			s.stats.Conflicts++
			return false, nil
		}

		idx, lit, ok := s.findUnit()
		if !ok {
			return true, nil
		}
		clause := s.clauses[idx]

		if lit.Var.hasValue() {
			return false, &InternalInvariantViolationError{
				Reason: "BCP selected a unit clause whose literal is already assigned",
			}
		}
		if lit.Positive {
			lit.Var.Value = True
		} else {
			lit.Var.Value = False
		}
		s.stats.Implications++
		if err := s.graph.AddForced(lit.Var, lit.Positive, clause, s.level); err != nil {
			return false, err
		}
	}
}

// findUnit returns the index and forced literal of the first clause (in
// insertion order) that is currently unit. Scanning in insertion order
// makes clause selection, and hence the whole solve, deterministic for a
// given input and heuristic.
func (s *Solver) findUnit() (int, Literal, bool) {
	for i, c := range s.clauses {
		if lit, ok := c.Unit(); ok {
			return i, lit, true
		}
	}
	return 0, Literal{}, false
}

// findFalsified returns the index of the first clause (in insertion
// order) that is currently falsified.
func (s *Solver) findFalsified() (int, bool) {
	for i, c := range s.clauses {
		if c.Falsified() {
			return i, true
		}
	}
	return 0, false
}

// conflictVariable picks a representative variable for a freshly
// discovered conflict node's display identity: the variable of the
// clause's first literal, or nil for a genuinely empty clause (which has
// no literals and therefore no predecessors in the implication graph).
func conflictVariable(c *Clause) *Variable {
	if len(c.Lits) == 0 {
		return nil
	}
	return c.Lits[0].Var
}
