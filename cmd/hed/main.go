package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hed-editor/hed"
	"github.com/hed-editor/hed/clip"
	"github.com/hed-editor/hed/log"
	"github.com/hed-editor/hed/syntax"
	"github.com/hed-editor/hed/term"
)

var (
	flagDebug   bool
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:     "hed [file]",
	Short:   "A small terminal text editor",
	Version: hed.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
	// Keep the terminal clean: errors are printed by Execute below.
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write a debug log to hed-debug.log")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "path to a YAML syntax profile")
}

func run(cmd *cobra.Command, args []string) error {
	if err := log.Init("hed-debug.log", flagDebug); err != nil {
		return err
	}
	defer log.Close()

	profile := syntax.Default()
	if flagProfile != "" {
		p, err := syntax.LoadProfile(flagProfile)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		profile = p
	}

	screen, err := term.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	editor := hed.New(screen, syntax.NewHighlighter(profile), clip.New())
	if len(args) == 1 {
		if err := editor.Open(args[0]); err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
	}
	return editor.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hed:", err)
		os.Exit(1)
	}
}
