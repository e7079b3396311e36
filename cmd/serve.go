package cmd

import (
	"os"

	"github.com/tellahq/plain-mcp/internal/plain"
	"github.com/tellahq/plain-mcp/internal/tools"
	"github.com/tellahq/plain-mcp/pkg/logging"

	"github.com/spf13/cobra"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveEndpoint overrides the Plain GraphQL endpoint. Empty means the
// production endpoint; mainly useful against a staging workspace.
var serveEndpoint string

// serveCmd defines the serve command structure. This is the main command
// of plain-mcp: it validates configuration, builds the Plain client and
// serves the MCP tool set over stdio until the host closes the stream.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Plain tool set over MCP stdio",
	Long: `Starts the MCP server on stdio. The host process (an AI assistant
runtime such as Claude Desktop or Cursor) launches this command and speaks
the Model Context Protocol over stdin/stdout.

All logging goes to stderr; stdout is reserved for MCP framing.

Requires the PLAIN_API_KEY environment variable to contain a Plain API key
with access to the target workspace. The process exits with status 2 when
the key is missing.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if serveDebug {
		level = logging.LevelDebug
	}
	// stdout carries MCP stdio framing, so logs must go to stderr.
	logging.Init(level, os.Stderr)

	apiKey := os.Getenv("PLAIN_API_KEY")
	if apiKey == "" {
		logging.Error("serve", ErrMissingAPIKey, "cannot start without a Plain API key")
		return ErrMissingAPIKey
	}

	var opts []plain.Option
	if serveEndpoint != "" {
		opts = append(opts, plain.WithEndpoint(serveEndpoint))
	}
	client := plain.New(apiKey, opts...)

	srv := tools.NewServer(client, GetVersion())
	logging.Info("serve", "starting plain-mcp MCP server on stdio")
	return srv.ServeStdio()
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveEndpoint, "endpoint", "", "Override the Plain GraphQL endpoint")
}
