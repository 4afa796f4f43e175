package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Styled output
// and spinners are only selected when it is.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
