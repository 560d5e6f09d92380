// Tvremote is a keyboard remote control for Roku TVs and streaming sticks
// on the local network.
//
// It discovers devices over SSDP (or mDNS), shows them as tabs, and sends
// each keypress to the selected device over the External Control Protocol.
//
// Usage:
//
//	tvremote [command] [flags]
//
// Running without arguments starts the interactive remote.
// See 'tvremote --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/tvremote/internal/logging"
	"github.com/muurk/tvremote/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tvremote",
	Short: "Keyboard remote for Roku devices on your network",
	Long: `A terminal remote control for Roku TVs and streaming sticks.

Devices are discovered automatically and appear as tabs as soon as they
answer. Keys are sent to the selected device immediately.

If no command is specified, the interactive remote starts.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRemote,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:              "version",
	Short:            "Print version information",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tvremote %s\n", version.Full())
	},
}
