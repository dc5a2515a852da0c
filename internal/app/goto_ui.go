package app

import (
	"fmt"
	"strconv"
	"strings"
)

// runGoToPrompt prompts for a 1-based line number and moves the cursor to
// the start of that line. Numbers past the end go to the last line.
func (r *Runner) runGoToPrompt() {
	r.runPrompt("Go to line: ", "", func(input string) error {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n <= 0 {
			return fmt.Errorf("not a line number: %q", input)
		}
		r.gotoLine(n)
		return nil
	})
}
