// Package bruteforce implements an exhaustive reference solver for small
// CNF instances: it tries every possible truth assignment until one
// satisfies every clause, or exhausts the search space. It exists only to
// serve as a test oracle — the CDCL solver is the real production path —
// and is deliberately simple rather than fast.
package bruteforce

// Solve reports whether problem (a DIMACS-style list of integer clauses)
// is satisfiable, trying every assignment of the variables that occur in
// it. On success it also returns a satisfying assignment keyed by
// variable index (always positive).
func Solve(problem [][]int) (assignment map[int]bool, sat bool) {
	vars := collectVars(problem)
	assignment = make(map[int]bool, len(vars))
	if assignNext(problem, vars, 0, assignment) {
		return assignment, true
	}
	return nil, false
}

func collectVars(problem [][]int) []int {
	seen := make(map[int]bool)
	var vars []int
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	return vars
}

func assignNext(problem [][]int, vars []int, i int, assignment map[int]bool) bool {
	if i == len(vars) {
		return satisfies(problem, assignment)
	}
	v := vars[i]
	assignment[v] = true
	if assignNext(problem, vars, i+1, assignment) {
		return true
	}
	assignment[v] = false
	if assignNext(problem, vars, i+1, assignment) {
		return true
	}
	return false
}

func satisfies(problem [][]int, assignment map[int]bool) bool {
clauseLoop:
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				if !assignment[-v] {
					continue clauseLoop
				}
			} else if assignment[v] {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}
