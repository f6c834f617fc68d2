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
	Generate(ctx context.Context) error
	Gift(ctx context.Context) error
	Bulk(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
	List(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a. It returns
// on scanner EOF, on "exit"/"quit", or once ctx is cancelled.
//
//	help            show available commands
//	generate | g    generate one UUID
//	gift            generate one UUID flagged as a gift
//	bulk <n>        generate n UUIDs at once
//	stats           totals and collision probability
//	list | l        the live list, newest first
//	whoami          this client's id
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("uuidfeed (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (g)enerate, gift, bulk <n>, stats, (l)ist, whoami, exit")

		case "g", "generate":
			_ = a.Generate(ctx)

		case "gift":
			_ = a.Gift(ctx)

		case "bulk":
			if len(args) == 0 {
				printlnFn("Usage: bulk <n>")
				continue
			}
			_ = a.Bulk(ctx, args[0])

		case "stats":
			_ = a.Stats(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
