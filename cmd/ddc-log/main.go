// Command ddc-log views and summarizes DDC/CI capture files.
//
// Capture files are written by ddc-usb when run with the -capture flag.
//
// Usage:
//
//	ddc-log <command> [flags] <file.ddclog>
//
// Examples:
//
//	# View every frame
//	ddc-log view session.ddclog
//
//	# View only replies to capability requests
//	ddc-log view -op capabilities -dir in session.ddclog
//
//	# Show statistics
//	ddc-log stats session.ddclog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/moffa90/go-ddcci/cmd/ddc-log/commands"
)

const usage = `ddc-log - DDC/CI capture viewer

Usage:
  ddc-log <command> [flags] <file.ddclog>

Commands:
  view     Print captured frames and failed attempts
  stats    Show statistics about the capture file

Use "ddc-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddc-log view - Print captured frames and failed attempts

Usage:
  ddc-log view [flags] <file.ddclog>

Flags:
`)
		fs.PrintDefaults()
	}

	var filter commands.ViewFilter
	fs.StringVar(&filter.Op, "op", "", "Filter by operation (get-vcp, set-vcp, save-settings, capabilities)")
	fs.StringVar(&filter.Direction, "dir", "", "Filter by direction (in, out)")
	fs.StringVar(&filter.SessionID, "session", "", "Filter by session ID")

	path := parsePath(fs, args)

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ddc-log stats - Show statistics about the capture file

Usage:
  ddc-log stats <file.ddclog>
`)
	}

	path := parsePath(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parsePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}
