package implicant

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/nkcraddock/implicant/bruteforce"
	"github.com/stretchr/testify/require"
)

func assertSatisfies(t *testing.T, problem [][]int, assignment map[string]bool) {
	t.Helper()
	for _, clause := range problem {
		ok := false
		for _, lit := range clause {
			name := strconv.Itoa(abs(lit))
			v := assignment[name]
			if lit < 0 {
				v = !v
			}
			if v {
				ok = true
				break
			}
		}
		require.Truef(t, ok, "clause %v not satisfied by %v", clause, assignment)
	}
}

func TestEmptyClauseSetIsSatWithEmptyAssignment(t *testing.T) {
	result, err := Solve(nil)
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	require.Empty(t, result.Assignment)
	require.True(t, result.Stats.SolvedBySimplification)
}

func TestFormulaContainingEmptyClauseIsUnsatBeforeFirstDecision(t *testing.T) {
	result, err := Solve([][]int{{1, 2}, {}})
	require.NoError(t, err)
	require.False(t, result.Satisfiable)
	require.Zero(t, result.Stats.Decisions)
}

func TestSingleUnitClausePositiveIsSatTrue(t *testing.T) {
	result, err := Solve([][]int{{1}})
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	require.True(t, result.Assignment["1"])
}

func TestSingleUnitClauseNegativeIsSatFalse(t *testing.T) {
	result, err := Solve([][]int{{-1}})
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	require.False(t, result.Assignment["1"])
}

func TestContradictionIsUnsatAtDecisionLevelZero(t *testing.T) {
	result, err := Solve([][]int{{1}, {-1}})
	require.NoError(t, err)
	require.False(t, result.Satisfiable)
	require.Zero(t, result.Stats.Decisions)
}

func TestS1BuiltInSampleIsSat(t *testing.T) {
	problem := [][]int{{1, 2}, {-1, -2}, {3, 4}, {-2, 4, 2}, {-3, -4}}
	result, err := Solve(problem)
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	assertSatisfies(t, problem, result.Assignment)
}

func TestS2SimpleContradictionIsUnsat(t *testing.T) {
	result, err := Solve([][]int{{1}, {-1}})
	require.NoError(t, err)
	require.False(t, result.Satisfiable)
}

func TestS3Pigeonhole3Into2IsUnsat(t *testing.T) {
	problem := [][]int{
		{1, 2}, {3, 4}, {5, 6}, // each pigeon takes at least one hole
		{-1, -3}, {-1, -5}, {-3, -5}, // hole 1 holds at most one pigeon
		{-2, -4}, {-2, -6}, {-4, -6}, // hole 2 holds at most one pigeon
	}
	result, err := Solve(problem)
	require.NoError(t, err)
	require.False(t, result.Satisfiable)
}

func TestS4UnsatRequiringBacktrackToLevelZero(t *testing.T) {
	problem := [][]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	result, err := Solve(problem)
	require.NoError(t, err)
	require.False(t, result.Satisfiable)
}

func TestS5ChainResolvedEntirelyByBCP(t *testing.T) {
	problem := [][]int{{-1, 2}, {-2, 3}, {-3, 4}, {1}}
	result, err := Solve(problem)
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	require.True(t, result.Assignment["1"])
	require.True(t, result.Assignment["2"])
	require.True(t, result.Assignment["3"])
	require.True(t, result.Assignment["4"])
	// The unit fact (1) forces the whole chain via BCP alone; no free
	// decision is ever needed.
	require.Zero(t, result.Stats.Decisions)
}

func TestS6RandomInstanceAgreesWithBruteForceOracle(t *testing.T) {
	problem := randomThreeCNF(10, 42, 1)
	result, err := Solve(problem)
	require.NoError(t, err)

	_, bruteSat := bruteforce.Solve(problem)
	require.Equal(t, bruteSat, result.Satisfiable)
	if result.Satisfiable {
		assertSatisfies(t, problem, result.Assignment)
	}
}

func TestOracleAgreementOnSmallRandomThreeCNF(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		problem := randomThreeCNF(4, 10, seed)
		result, err := Solve(problem)
		require.NoError(t, err)

		_, bruteSat := bruteforce.Solve(problem)
		require.Equalf(t, bruteSat, result.Satisfiable, "seed=%d problem=%v", seed, problem)
	}
}

func TestSolveIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	problem := randomThreeCNF(8, 30, 7)
	first, err := Solve(problem)
	require.NoError(t, err)
	second, err := Solve(problem)
	require.NoError(t, err)

	require.Equal(t, first.Satisfiable, second.Satisfiable)
	require.Equal(t, first.Assignment, second.Assignment)
}

// randomThreeCNF builds a random 3-CNF instance over the given number of
// variables and clause count, each clause three distinct literals over
// distinct variables, using the given seed for reproducibility.
func randomThreeCNF(numVars, numClauses int, seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	problem := make([][]int, 0, numClauses)
	for i := 0; i < numClauses; i++ {
		vs := r.Perm(numVars)[:3]
		clause := make([]int, 3)
		for j, v := range vs {
			lit := v + 1
			if r.Intn(2) == 0 {
				lit = -lit
			}
			clause[j] = lit
		}
		problem = append(problem, clause)
	}
	return problem
}
