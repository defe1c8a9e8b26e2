package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileblast/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagDefaultLevel int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tileblast SSH server",
	Long: `Start an SSH server that allows users to connect and play levels.

Each SSH connection gets its own level session and obstacle goals.
Results are stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tileblast/host_key

Examples:
  tileblast serve                           # Listen on :23234 with auto-generated key
  tileblast serve --ssh :2222               # Listen on port 2222
  tileblast serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234        # default level
  ssh localhost -p 23234 3      # level 3`,
	Run: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagDefaultLevel, "level", def.DefaultLevel, "Level played when the client does not name one")
}

// serveConfig applies the serve flags and loaded config over the defaults.
func serveConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	if appConfig.Storage.DBPath != "" {
		cfg.DBPath = appConfig.Storage.DBPath
	}
	if flagDefaultLevel > 0 {
		cfg.DefaultLevel = flagDefaultLevel
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.Play = tui.PlayConfigFrom(appConfig, "")
	return cfg
}

func runServe(_ *cobra.Command, _ []string) {
	server, err := tui.NewSSHServer(serveConfig(), newLoader())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tileblast SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
