package implicant

import "github.com/google/uuid"

// Stats are informational counters about a solve run. The set of fields
// may grow over time; none of them affect the verdict.
type Stats struct {
	Decisions              int
	Implications           int
	Conflicts              int
	LearnedClauses         int
	Backjumps              int
	SolvedBySimplification bool
}

// Option configures a Solver.
type Option func(*Solver)

// WithHeuristic selects the decision policy. The default is FirstFitHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(s *Solver) { s.heuristic = h }
}

// WithEventSink installs a sink receiving trace events at the boundaries
// of decide, BCP, and conflict-resolution. The default sink is a no-op.
func WithEventSink(sink EventSink) Option {
	return func(s *Solver) { s.sink = sink }
}

// Solver is a CDCL SAT solver instance. A Solver is not safe for
// concurrent use; each Solve call resets all per-run state first, so one
// Solver may be reused for sequential solve runs.
type Solver struct {
	heuristic Heuristic
	sink      EventSink

	runID string
	vars  map[string]*Variable
	clauses []*Clause
	graph   *Graph
	level   int
	stats   Stats

	lastLearned *Clause
	satisfiable bool
	solved      bool
}

// NewSolver returns a Solver configured with the given options.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		heuristic: FirstFitHeuristic{},
		sink:      noopSink{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset clears all solve-run state so the Solver can be reused. Solve
// calls Reset internally, so callers need not call it directly.
func (s *Solver) Reset() {
	s.runID = ""
	s.vars = nil
	s.clauses = nil
	s.graph = nil
	s.level = 0
	s.stats = Stats{}
	s.lastLearned = nil
	s.satisfiable = false
	s.solved = false
}

func (s *Solver) emit(e Event) {
	e.RunID = s.runID
	s.sink.Emit(e)
}

// Solve decides whether problem (a DIMACS-style list of integer clauses)
// is satisfiable. It returns true and records a satisfying assignment
// (retrievable via Assignment) on success, or false on UNSAT.
func (s *Solver) Solve(problem [][]int) (bool, error) {
	s.Reset()
	s.runID = uuid.New().String()

	clauses, vars, err := FromInts(problem)
	if err != nil {
		return false, err
	}
	// FromInts already builds one Variable per name, so no separate
	// canonicalization pass is required for DIMACS-encoded input; the
	// exported Canonicalize function exists for callers building clauses
	// directly from Literal/Variable values that may alias by name.
	s.vars = vars
	s.clauses = clauses
	s.graph = NewGraph()
	s.level = 0

	if len(s.clauses) == 0 {
		s.satisfiable = true
		s.solved = true
		s.stats.SolvedBySimplification = true
		return true, nil
	}

	ok, err := s.runBCP()
	if err != nil {
		return false, err
	}
	if !ok {
		resolved, err := s.runResolveConflict()
		if err != nil {
			return false, err
		}
		if !resolved {
			s.solved = true
			return false, nil
		}
	}

	for {
		s.level++
		_, _, decided, err := s.runDecide()
		if err != nil {
			return false, err
		}
		if !decided {
			s.satisfiable = true
			s.solved = true
			return true, nil
		}

		for {
			ok, err := s.runBCP()
			if err != nil {
				return false, err
			}
			if ok {
				break
			}
			resolved, err := s.runResolveConflict()
			if err != nil {
				return false, err
			}
			if !resolved {
				s.solved = true
				return false, nil
			}
		}
	}
}

func (s *Solver) runDecide() (*Variable, bool, bool, error) {
	s.emit(Event{Kind: PreDecide, Level: s.level})
	v, value, ok, err := s.heuristic.Decide(s.clauses)
	if err != nil {
		s.emit(Event{Kind: PostDecide, Level: s.level, Success: false})
		return nil, false, false, err
	}
	if !ok {
		s.emit(Event{Kind: PostDecide, Level: s.level, Success: false})
		return nil, false, false, nil
	}
	if value {
		v.Value = True
	} else {
		v.Value = False
	}
	s.graph.AddDecision(v, value, s.level)
	s.stats.Decisions++
	s.emit(Event{Kind: PostDecide, Level: s.level, Var: v, Value: value, Success: true})
	return v, value, true, nil
}

func (s *Solver) runBCP() (bool, error) {
	s.emit(Event{Kind: PreBCP, Level: s.level})
	ok, err := s.bcp()
	if err != nil {
		s.emit(Event{Kind: PostBCP, Level: s.level, Success: false})
		return false, err
	}
	s.emit(Event{Kind: PostBCP, Level: s.level, Success: ok})
	return ok, nil
}

func (s *Solver) runResolveConflict() (bool, error) {
	s.emit(Event{Kind: PreResolve, Level: s.level})
	ok, err := s.resolveConflict()
	if err != nil {
		s.emit(Event{Kind: PostResolve, Level: s.level, Success: false})
		return false, err
	}
	s.emit(Event{Kind: PostResolve, Level: s.level, Learned: s.lastLearned, Success: ok})
	return ok, nil
}

// Assignment returns a total assignment covering every variable that
// appeared in the input, defined only after a SAT verdict.
func (s *Solver) Assignment() map[string]bool {
	if !s.satisfiable {
		return nil
	}
	out := make(map[string]bool, len(s.vars))
	for name, v := range s.vars {
		out[name] = v.Value == True
	}
	return out
}

// Stats returns the statistics gathered by the most recent Solve call.
func (s *Solver) Stats() Stats { return s.stats }

// Result is the outcome of a top-level Solve call.
type Result struct {
	Satisfiable bool
	Assignment  map[string]bool
	Stats       Stats
	RunID       string
}

// Solve is the top-level entry point: it decides whether problem is
// satisfiable and, if so, reports a witnessing assignment.
func Solve(problem [][]int, opts ...Option) (*Result, error) {
	s := NewSolver(opts...)
	sat, err := s.Solve(problem)
	if err != nil {
		return nil, err
	}
	return &Result{
		Satisfiable: sat,
		Assignment:  s.Assignment(),
		Stats:       s.Stats(),
		RunID:       s.runID,
	}, nil
}
