package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blightgrid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagScramble    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blightgrid SSH server",
	Long: `Start an SSH server that lets users connect and explore worlds.

Each SSH connection gets its own world. By default every session starts
from the configured seed; --scramble gives each one a fresh seed instead.
Runs are recorded in the server's run log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blightgrid/host_key

Examples:
  blightgrid serve                           # Listen on :23234
  blightgrid serve --ssh :2222               # Listen on port 2222
  blightgrid serve --scramble --preset harsh # Harsh random worlds

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagScramble, "scramble", false, "Give every session a clock-derived seed")
}

func runServe(_ *cobra.Command, _ []string) error {
	wcfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("blightgrid-ssh")
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Params = wcfg.Params()
	cfg.Seed = wcfg.Seed
	cfg.Scramble = flagScramble
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting blightgrid SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
