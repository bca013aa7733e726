// Package cmd contains the CLI command for drip.
package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pheano/drip/internal/rain"
	"github.com/pheano/drip/internal/term"
)

// rootCmd is the one and only command: drip takes no flags and no arguments.
var rootCmd = &cobra.Command{
	Use:   "drip",
	Short: "Digital rain for your terminal",
	Long: `Drip fills the terminal with a cascading digital-rain effect:
columns of katakana glyphs that drop in at a random cadence and fade from
blue or green down to black.

It runs until interrupted (Ctrl-C).`,
	Args: cobra.NoArgs,
	RunE: runRain,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRain(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal() {
		return errors.New("stdout is not a terminal")
	}

	width, height, err := term.Size()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	base := rain.ColorBlue
	if rng.Float64() < 0.5 {
		base = rain.ColorGreen
	}
	waterfall := rain.NewWaterfall(width, height, base)

	sink := term.NewANSISink(os.Stdout)
	if err := sink.EnterAltScreen(); err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}
	defer restoreTerminal(sink)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rain.Run(ctx, sink, waterfall, rng); err != nil {
		return fmt.Errorf("running animation: %w", err)
	}
	return nil
}

// restoreTerminal undoes the startup terminal state: colors reset, cursor
// back on, primary screen buffer restored.
func restoreTerminal(sink *term.ANSISink) {
	sink.Reset()
	sink.ShowCursor()
	sink.ExitAltScreen()
	sink.Flush()
}
