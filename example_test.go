package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func ExampleEvaluate() {
	for _, src := range []string{"2+3*4", "8-3-2", "1.5+2.5", "6/0", "1+"} {
		r, err := calculator.Evaluate(src)
		if err != nil {
			fmt.Println(src, "=>", err)
			continue
		}
		fmt.Println(src, "=", calculator.FormatResult(r))
	}

	// Output:
	// 2+3*4 = 14
	// 8-3-2 = 3
	// 1.5+2.5 = 4
	// 6/0 => 2: division by zero
	// 1+ => 3: malformed expression: operator at end of expression
}
