package implicant

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format into the integer-clause
// encoding Solve expects: a negative integer is a negated literal over the
// variable named by its absolute value, and 0 terminates a clause.
//
// A few non-standard variations are accepted, matching common DIMACS
// corpora:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line ("p cnf <vars> <clauses>") may be missing.
//   - A line containing a lone '%' ends the formula; anything after it
//     (a conventional trailer) is ignored.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
		seen    bool
	}
	var clauses [][]int
	var clause []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, &MalformedInputError{Reason: "problem line appears after clauses"}
			}
			if problem.seen {
				return nil, &MalformedInputError{Reason: "multiple problem lines"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, &MalformedInputError{Reason: fmt.Sprintf("malformed problem line %q", line)}
			}
			vars, err := strconv.Atoi(fields[2])
			if err != nil || vars < 0 {
				return nil, &MalformedInputError{Reason: fmt.Sprintf("malformed #vars in problem line: %q", line)}
			}
			n, err := strconv.Atoi(fields[3])
			if err != nil || n < 0 {
				return nil, &MalformedInputError{Reason: fmt.Sprintf("malformed #clauses in problem line: %q", line)}
			}
			problem.vars, problem.clauses, problem.seen = vars, n, true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid token %q: %s", field, err)}
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if problem.seen {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, &MalformedInputError{Reason: fmt.Sprintf(
						"formula contains var %d, but problem line asserts %d vars", v, problem.vars)}
				}
				vars[v] = struct{}{}
			}
		}
		if len(vars) > problem.vars {
			return nil, &MalformedInputError{Reason: fmt.Sprintf(
				"problem line specifies %d vars, but there are %d", problem.vars, len(vars))}
		}
		if len(clauses) != problem.clauses {
			return nil, &MalformedInputError{Reason: fmt.Sprintf(
				"problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))}
		}
	}
	return clauses, nil
}

// WriteDIMACS serializes an integer-clause formula as DIMACS CNF text,
// writing a problem line computed from the highest variable index present
// and the clause count. ParseDIMACS is its left inverse modulo comments
// and the optional problem line: ParseDIMACS(WriteDIMACS(f)) == f for any
// f already in this encoding.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	maxVar := 0
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(problem)); err != nil {
		return err
	}
	for _, clause := range problem {
		var b strings.Builder
		for _, v := range clause {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("0")
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
