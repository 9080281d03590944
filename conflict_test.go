package implicant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveConflictNoConflictIsNoOp(t *testing.T) {
	s := newTestSolver(t, [][]int{{1, 2}})
	s.level = 1
	ok, err := s.resolveConflict()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestResolveConflictAtLevelZeroProvesUnsat(t *testing.T) {
	s := newTestSolver(t, [][]int{{1}, {-1}})
	s.level = 0
	_, err := s.bcp()
	require.NoError(t, err)
	require.True(t, s.graph.HasConflict())

	ok, err := s.resolveConflict()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolveConflictBackjumpsAndLearnsClause(t *testing.T) {
	// Two independent decisions, a and b, both at their own level; c is
	// forced at level 2 from both, and a clause over c and a conflicts.
	s := newTestSolver(t, nil)
	a := &Variable{Name: "a"}
	b := &Variable{Name: "b"}
	c := &Variable{Name: "c"}
	s.vars = map[string]*Variable{"a": a, "b": b, "c": c}

	s.level = 1
	a.Value = True
	s.graph.AddDecision(a, true, 1)

	s.level = 2
	b.Value = True
	s.graph.AddDecision(b, true, 2)

	ant := NewClause(Literal{Var: a, Positive: false}, Literal{Var: b, Positive: false}, Literal{Var: c, Positive: true})
	c.Value = True
	require.NoError(t, s.graph.AddForced(c, true, ant, 2))

	conflictClause := NewClause(Literal{Var: c, Positive: false}, Literal{Var: a, Positive: false})
	require.NoError(t, s.graph.AddConflict(c, conflictClause, 2))

	nClausesBefore := len(s.clauses)
	ok, err := s.resolveConflict()
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 1, s.level) // backjumped to the second-highest conflict level
	require.Len(t, s.clauses, nClausesBefore+1)
	require.Equal(t, 1, s.stats.LearnedClauses)
	require.Equal(t, 1, s.stats.Backjumps)
	require.NotNil(t, s.lastLearned)

	// b was above the backjump level and must have been unassigned.
	require.Equal(t, Unassigned, b.Value)
	require.Equal(t, True, a.Value)
}

func TestResolveConflictSingleLevelProvesUnsat(t *testing.T) {
	// A conflict whose antecedents are all at the same single level has
	// no second distinct level to backjump to.
	s := newTestSolver(t, [][]int{{1}, {-1}})
	s.level = 1

	x := s.vars["1"]
	x.Value = True
	s.graph.AddDecision(x, true, 1)

	conflictClause := NewClause(Literal{Var: x, Positive: false})
	require.NoError(t, s.graph.AddConflict(x, conflictClause, 1))

	resolved, err := s.resolveConflict()
	require.NoError(t, err)
	require.False(t, resolved)
}
