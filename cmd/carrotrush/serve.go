package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/carrot-rush/internal/leaderboard"
	"github.com/vovakirdan/carrot-rush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server so players can connect and play.

Each SSH connection gets its own session with the variant picker.
All sessions share one scores database. With --http the leaderboard is
also served as JSON:

  GET /api/games                all variants with play counts and best scores
  GET /api/scores/{variant}     top runs, ?limit=N (max 100)
  GET /api/runs/{id}            one run
  GET /api/runs/{id}/replay     the run's compressed replay

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.carrotrush/host_key

Examples:
  carrotrush serve
  carrotrush serve --ssh :2222 --http :8080
  carrotrush serve --host-key ./my_host_key --db ./scores.db

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	} else if flagHTTPAddr != "" {
		return errors.New("the leaderboard needs the scores database")
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = flagDifficulty

	sshServer, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sshServer.Serve(ctx)
	})

	if flagHTTPAddr != "" {
		board := leaderboard.NewServer(flagHTTPAddr, store, logger.WithPrefix("http"))
		g.Go(board.Start)
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return board.Shutdown(shutdownCtx)
		})
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		logger.Info("Players can connect with", "command", "ssh localhost -p "+port)
	}
	return g.Wait()
}
