package implicant_test

import (
	"fmt"

	"github.com/nkcraddock/implicant"
)

func Example() {
	// (x1 ∨ x2) ∧ (¬x1 ∨ ¬x2) ∧ (x3 ∨ x4) ∧ (¬x2 ∨ x4 ∨ x2) ∧ (¬x3 ∨ ¬x4)
	problem := [][]int{
		{1, 2},
		{-1, -2},
		{3, 4},
		{-2, 4, 2},
		{-3, -4},
	}

	result, err := implicant.Solve(problem)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Satisfiable)
	// Output:
	// true
}
