// Command reverse-digits reverses the digits of 1234 and prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/minic/internal/core/digits"
)

const input = 1234

func main() {
	run(os.Stdout)
}

func run(out io.Writer) {
	fmt.Fprintf(out, "Reversed Digits: %d\n", digits.Reverse(input))
}
