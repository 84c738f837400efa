// Command armstrong reports whether 153 is an Armstrong number.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/minic/internal/core/digits"
)

const input = 153

func main() {
	run(os.Stdout, input)
}

func run(out io.Writer, n int) {
	fmt.Fprintln(out, digits.Verdict(digits.IsArmstrong(n)))
}
