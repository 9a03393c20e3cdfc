// Command okayjack resolves okayjack directives from HTML documents and runs
// the polls demo server.
//
//	okayjack resolve --file page.html --id vote-form
//	okayjack keys --format yaml
//	okayjack serve
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
