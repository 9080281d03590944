package implicant

// resolveConflict is called when bcp returned a conflict. It returns
// (true, nil) if the solver may continue (a backjump occurred and a
// clause was learned), (false, nil) if UNSAT has been proved, or a
// non-nil error for an internal invariant violation.
func (s *Solver) resolveConflict() (bool, error) {
	if !s.graph.HasConflict() {
		return true, nil
	}
	if s.level <= 0 {
		return false, nil
	}

	uip := s.graph.FirstUIP()
	if uip == nil {
		return false, &InternalInvariantViolationError{
			Reason: "conflict analysis found no first UIP for a live conflict",
		}
	}

	antecedents, levels := s.graph.ConflictInfo(uip)
	if len(levels) < 2 {
		return false, nil
	}
	backjumpLevel := levels[1]

	if err := s.graph.Truncate(backjumpLevel); err != nil {
		return false, err
	}

	learned := &Clause{}
	for _, a := range antecedents {
		learned = Resolve(learned, a)
	}
	s.clauses = append(s.clauses, learned)
	s.stats.LearnedClauses++
	s.stats.Backjumps++

	s.level = backjumpLevel
	s.lastLearned = learned
	return true, nil
}
