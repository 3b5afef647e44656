package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Append(ctx context.Context, text string) error
	AppendBold(ctx context.Context, text string) error
	AppendItalic(ctx context.Context, text string) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the JotSync CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the sync status (from statusFn). Any errors returned by
// command handlers are ignored here; handlers render their own messages.
// This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jot %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn("Available commands: show, edit, append <text>, bold <text>, italic <text>, sync, status, exit")

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "append":
			_ = a.Append(ctx, rest)

		case "bold":
			_ = a.AppendBold(ctx, rest)

		case "italic":
			_ = a.AppendItalic(ctx, rest)

		case "sync":
			_ = a.Sync(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
