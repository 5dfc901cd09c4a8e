// Package cli is the console front end: command dispatch, rendering of
// the category tree and the list screens, and the small amount of form
// plumbing around the services.
package cli

import (
	"fmt"
	"io"
)

// consoleNotifier prints transient notices, the console's stand-in for
// the web admin's toast popups.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Success(msg string) {
	fmt.Fprintf(n.out, "✔ %s\n", msg)
}

func (n consoleNotifier) Error(msg string) {
	fmt.Fprintf(n.out, "✖ %s\n", msg)
}
