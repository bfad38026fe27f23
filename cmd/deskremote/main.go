// Package main starts the DeskRemote server and its command-line tools.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var debug bool

// main is the entrypoint for the DeskRemote binary.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logFatal(err)
	}
}

// newRootCmd builds the command tree. Running without a subcommand serves HTTP.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "deskremote",
		Short:         "Remote keyboard and system control over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return serve(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return serve(debug)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "exec <command>",
		Short: "Run a named command and wait for it to finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execOnce(cmd, args[0], debug)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "press <button>",
		Short: "Press a key or chord such as alt-f4",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pressOnce(cmd, args[0], debug)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "commands",
		Short: "List the available commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listCommands(cmd)
		},
	})

	return root
}

// listCommands prints the command vocabulary, one per line.
func listCommands(cmd *cobra.Command) error {
	svc, err := newServices(false, true)
	if err != nil {
		return err
	}
	defer svc.Close()
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(svc.dispatcher.Commands(), "\n"))
	return err
}
