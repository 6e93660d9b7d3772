package worksheet_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/worksheet"
)

func ExampleParseColumns() {
	problems, err := worksheet.ParseColumns("64 \n23 \n314\n+  ")
	if err != nil {
		panic(err)
	}
	for _, p := range problems {
		fmt.Println(p.Op, p.Operands, p.Result())
	}
	// Output: + [623 431 4] 1058
}
