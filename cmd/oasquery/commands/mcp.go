package commands

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasquery/internal/config"
	"github.com/erraggy/oasquery/internal/mcpserver"
)

// HandleMCP serves the queries as MCP tools over stdio until the client
// disconnects or the process is interrupted. Logs go to stderr since stdout
// carries the protocol.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasquery mcp\n\n")
		Writef(fs.Output(), "Serve the queries as MCP tools over stdio.\n")
		Writef(fs.Output(), "Configure with OASQUERY_* environment variables; see 'oasquery help'.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	slog.SetDefault(config.Load().NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
