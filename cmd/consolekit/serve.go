package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagProgram     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the consolekit SSH server",
	Long: `Start an SSH server that lets users connect and run programs.

Each SSH connection gets its own session with a program picker menu,
or goes straight to --program when it is set. Every session has its own
engine and windows; committed entries go to the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.consolekit/host_key

Examples:
  consolekit serve                           # Listen on :23234 with auto-generated key
  consolekit serve --ssh :2222               # Listen on port 2222
  consolekit serve --program demo            # Skip the picker
  consolekit serve --db ./entries.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagProgram, "program", "", "Run this program instead of the picker")
}

func runServe(cmd *cobra.Command, _ []string) {
	serverCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		DBPath:      cfg.Storage.DB,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		Program:     flagProgram,
		Configure:   cfg.Apply,
	}
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		serverCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		serverCfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting consolekit SSH server on %s\n", serverCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(serverCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
