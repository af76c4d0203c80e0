package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/commanderHR1/hx"
	"github.com/commanderHR1/hx/internal/buffer"
	"github.com/commanderHR1/hx/internal/config"
	"github.com/commanderHR1/hx/internal/editor"
	"github.com/commanderHR1/hx/internal/key"
	"github.com/commanderHR1/hx/internal/logger"
	"github.com/commanderHR1/hx/internal/term"
)

// Version info (set by ldflags).
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		octets     int
		grouping   int
	)

	cmd := &cobra.Command{
		Use:   "hx [flags] filename",
		Short: "hx is a hex editor for the terminal",
		Long: `hx edits the raw bytes of a file in hexadecimal and ASCII
representation simultaneously.

Navigate with the arrow keys or h/j/k/l, jump groups with b/w, hit r to
replace or i to insert the byte at the cursor as two hex digits, x to
delete it, and ]/[ to increment or decrement it. Ctrl-S saves, Ctrl-Q
quits.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("octets") {
				cfg.OctetsPerLine = octets
			}
			if cmd.Flags().Changed("grouping") {
				cfg.Grouping = grouping
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			cfg.Normalize()

			logger.Init(cfg.Log.Level, cfg.Log.File)
			defer logger.Close()

			return run(args[0], cfg)
		},
	}

	cmd.Flags().IntVarP(&octets, "octets", "o", config.DefaultOctetsPerLine, "amount of octets per line")
	cmd.Flags().IntVarP(&grouping, "grouping", "g", config.DefaultGrouping, "grouping of bytes in one line")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/hx/config.yaml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(filename string, cfg *config.Config) error {
	doc, err := buffer.Load(filename)
	if err != nil {
		return err
	}

	t, err := term.Open()
	if err != nil {
		return err
	}
	defer t.Close()
	defer t.Restore()

	ed, err := editor.New(doc, t, cfg.OctetsPerLine, cfg.Grouping)
	if err != nil {
		return err
	}
	defer ed.Close()

	// React to screen resizing while the loop below is blocked on input.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			ed.Resize()
		}
	}()

	ed.Refresh()
	return keyLoop(ed, key.NewDecoder(t))
}

func keyLoop(ed hx.Editor, dec *key.Decoder) error {
	for {
		k, err := dec.Next()
		if errors.Is(err, key.ErrNoInput) {
			// Nothing arrived this tick, or a signal aborted the read.
			continue
		}
		if err != nil {
			return fmt.Errorf("unable to read from terminal: %w", err)
		}

		if err := ed.Handle(k); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
