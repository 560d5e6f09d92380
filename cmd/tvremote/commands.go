package main

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/logging"
	"github.com/muurk/tvremote/internal/roku"
	"github.com/muurk/tvremote/internal/ui"
)

// Command flags
var (
	scanTimeout time.Duration
	pressVerb   string
	pressDelay  time.Duration
)

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(pressCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to listen for devices")

	pressCmd.Flags().StringVar(&pressVerb, "verb", "press", "Key verb: press, down, up")
	pressCmd.Flags().DurationVar(&pressDelay, "delay", 0, "Pause between keys")
}

// scanCmd lists devices without starting the interactive remote
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List Roku devices on the network",
	Long: `Search the local network for Roku devices and print each one as soon
as it answers its device-info query.`,
	Example: `  # Scan for 5 seconds (default)
  tvremote scan

  # Longer scan using mDNS instead of SSDP
  tvremote scan --timeout 15s --backend mdns`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Device Scan", "tvremote scan",
		ui.Detail{Key: "Backend", Value: settings.Discovery.Backend},
		ui.Detail{Key: "Timeout", Value: scanTimeout.String()},
	)

	a := newApp(settings)
	engine := a.engine()

	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- engine.Run(ctx) }()

	found := 0
	for rec := range engine.Devices() {
		found++
		printer.PrintDevice(rec)
	}

	err := <-errc
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		printer.PrintError("Scan failed", err, []string{
			"Check that this machine is connected to the same network as the TV",
			"Multicast traffic may be blocked by a firewall or the router",
			"Try --backend mdns if SSDP is filtered on your network",
		})
		return fmt.Errorf("scan failed: %w", err)
	}

	if found == 0 {
		printer.PrintWarning("No devices found", []ui.Detail{
			{Key: "Hint", Value: "Ensure the TV is on and try a longer --timeout"},
		})
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("Found %d device(s)", found), nil)
	return nil
}

// infoCmd queries one device directly
var infoCmd = &cobra.Command{
	Use:   "info <ip>",
	Short: "Show the details of one device",
	Long: `Query a device's information endpoint directly, skipping discovery.
Devices are always contacted on the Roku control port (8060).`,
	Example: `  tvremote info 192.168.1.20`,
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	a := newApp(settings)

	addr, err := parseDeviceAddress(args[0], a.family)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.Lookup.Timeout)
	defer cancel()

	printer := ui.NewPrinter(cmd.OutOrStdout())
	rec, err := a.family.Lookup(ctx, addr)
	if err != nil {
		printer.PrintError("Device query failed", err, roku.Troubleshooting(err))
		return fmt.Errorf("query %s: %w", addr, err)
	}

	printer.PrintSuccess(rec.Name, ui.DeviceDetails(rec))
	return nil
}

// pressCmd sends keys without the interactive remote
var pressCmd = &cobra.Command{
	Use:   "press <ip> <key>...",
	Short: "Send one or more keys to a device",
	Long: `Send remote keys to a device in order. Valid keys are:

  ` + strings.Join(actionNames(), ", "),
	Example: `  # Open the home screen
  tvremote press 192.168.1.20 home

  # Navigate and select
  tvremote press 192.168.1.20 down down select --delay 300ms

  # Hold the left key
  tvremote press 192.168.1.20 left --verb down`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPress,
}

func runPress(cmd *cobra.Command, args []string) error {
	a := newApp(settings)

	addr, err := parseDeviceAddress(args[0], a.family)
	if err != nil {
		return err
	}
	verb, err := parseVerb(pressVerb)
	if err != nil {
		return err
	}
	actions, err := parseActions(args[1:])
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	failed := 0
	for i, action := range actions {
		if i > 0 && pressDelay > 0 {
			select {
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			case <-time.After(pressDelay):
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), settings.Commands.Timeout)
		err := a.family.Send(ctx, addr, verb, action)
		cancel()

		printer.PrintStep(action.String(), err)
		if err != nil {
			logging.Warn("Key not delivered",
				zap.Stringer("addr", addr),
				zap.String("action", action.String()),
				zap.Error(err),
			)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d key(s) failed", failed, len(actions))
	}
	return nil
}

// parseDeviceAddress accepts "ip" or "ip:port" and returns the command
// address for that host. Any given port is replaced by the control port.
func parseDeviceAddress(s string, family *roku.Family) (netip.AddrPort, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		ap, perr := netip.ParseAddrPort(s)
		if perr != nil {
			return netip.AddrPort{}, fmt.Errorf("invalid device address %q: expected an IP or IP:port", s)
		}
		ip = ap.Addr()
	}
	return family.CommandAddress(netip.AddrPortFrom(ip.Unmap(), 0)), nil
}

func parseVerb(s string) (roku.Verb, error) {
	switch strings.ToLower(s) {
	case "press":
		return roku.VerbPress, nil
	case "down":
		return roku.VerbDown, nil
	case "up":
		return roku.VerbUp, nil
	default:
		return "", fmt.Errorf("invalid verb %q: expected press, down or up", s)
	}
}

// parseActions validates every key before anything is sent.
func parseActions(names []string) ([]device.Action, error) {
	actions := make([]device.Action, 0, len(names))
	for _, name := range names {
		action, err := device.ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func actionNames() []string {
	names := make([]string, 0, len(device.Actions))
	for _, a := range device.Actions {
		names = append(names, a.String())
	}
	return names
}
