package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These follow common conventions so wrappers and process supervisors
// can distinguish misconfiguration from runtime failure.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfig indicates required configuration is missing or invalid.
	ExitCodeConfig = 2
)

// ErrMissingAPIKey is returned by serve when PLAIN_API_KEY is absent or empty.
var ErrMissingAPIKey = errors.New("PLAIN_API_KEY environment variable is not set")

// rootCmd represents the base command for the plain-mcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "plain-mcp",
	Short: "MCP server exposing the Plain customer support API as tools",
	Long: `plain-mcp is a Model Context Protocol server that exposes the Plain
customer support platform (threads, customers, companies, tenants, labels
and more) as callable tools for AI assistants.

It speaks MCP over stdio and talks to Plain's GraphQL API using the
API key supplied in the PLAIN_API_KEY environment variable.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that
	// are handled by the application, keeping error output clean for the host.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "plain-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if errors.Is(err, ErrMissingAPIKey) {
		return ExitCodeConfig
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
