package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/segbar/internal/backend/raster"
	"github.com/muurk/segbar/internal/backend/term"
	"github.com/muurk/segbar/internal/config"
	"github.com/muurk/segbar/internal/logging"
	"github.com/muurk/segbar/internal/segbar"
	"github.com/muurk/segbar/internal/version"
)

// app holds the persistent flags shared by every command.
type app struct {
	configPath string
	logLevel   string
}

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "segbar",
		Short: "Draw segmented progress bars",
		Long: `Draw segmented progress bars on a PNG canvas or the terminal.

A bar is a row of equally sized segments inside a 1 pixel frame. Only the
attributes you pass are applied; everything else uses the library defaults
(20 segments of 12x20 pixels, 2 pixels of padding, centered near the
bottom of the screen).

Saved profiles and preferences live in a YAML file in your config
directory. Set SEGBAR_LOG_LEVEL=debug to see what the library is doing.`,
		Version:       version.Version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Initialize(a.logLevel); err != nil {
				return err
			}
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Profiles file (default: segbar/profiles.yaml in the user config directory)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides SEGBAR_LOG_LEVEL)")

	root.AddCommand(
		a.drawCmd(),
		a.demoCmd(),
		a.layoutCmd(),
		statusCmd(),
		a.profileCmd(),
		versionCmd(),
	)

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "segbar %s\n", version.Full())
		},
	}
}

func (a *app) loadRegistry() (*config.Registry, error) {
	var (
		reg *config.Registry
		err error
	)
	if a.configPath != "" {
		reg, err = config.LoadRegistryFrom(a.configPath)
	} else {
		reg, err = config.LoadRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return reg, nil
}

func (a *app) saveRegistry(reg *config.Registry) error {
	if a.configPath != "" {
		return reg.SaveTo(a.configPath)
	}
	return reg.Save()
}

// request merges a profile (if named) with the bar flags the user changed.
func (a *app) request(cmd *cobra.Command, reg *config.Registry, profile string, bf *barFlags) (segbar.Mask, *segbar.Attr, error) {
	var p *config.Profile
	if profile != "" {
		if p = reg.GetProfile(profile); p == nil {
			return 0, nil, fmt.Errorf("profile %q not found (see 'segbar profile list')", profile)
		}
	}
	mask, attr := bf.apply(cmd, p.Builder()).Build()
	return mask, attr, nil
}

// barFlags are the bar attributes settable on the command line. Only
// flags the user actually passes set mask bits.
type barFlags struct {
	segments  int
	padding   int
	segWidth  int
	segHeight int
	x, y      int
	fg, bg    string
}

func addBarFlags(cmd *cobra.Command) *barFlags {
	f := &barFlags{}
	fl := cmd.Flags()
	fl.IntVar(&f.segments, "segments", segbar.DefaultSegments, "Number of segments")
	fl.IntVar(&f.padding, "padding", segbar.DefaultPadding, "Gap between segments and around them, in pixels")
	fl.IntVar(&f.segWidth, "seg-width", segbar.DefaultSegmentWidth, "Segment width in pixels")
	fl.IntVar(&f.segHeight, "seg-height", segbar.DefaultSegmentHeight, "Segment height in pixels")
	fl.IntVar(&f.x, "x", 0, "Left edge of the bar (default: centered)")
	fl.IntVar(&f.y, "y", 0, "Top edge of the bar (default: 15/16 down the screen)")
	fl.StringVar(&f.fg, "fg", segbar.DefaultForeground, "Foreground color: name or #rrggbb")
	fl.StringVar(&f.bg, "bg", segbar.DefaultBackground, "Background color: name or #rrggbb")
	return f
}

func (f *barFlags) apply(cmd *cobra.Command, b *segbar.RequestBuilder) *segbar.RequestBuilder {
	changed := cmd.Flags().Changed
	if changed("segments") {
		b.SetSegments(f.segments)
	}
	if changed("padding") {
		b.SetPadding(f.padding)
	}
	if changed("seg-width") {
		b.SetSegmentWidth(f.segWidth)
	}
	if changed("seg-height") {
		b.SetSegmentHeight(f.segHeight)
	}
	if changed("x") {
		b.SetX(f.x)
	}
	if changed("y") {
		b.SetY(f.y)
	}
	if changed("fg") {
		b.SetForeground(f.fg)
	}
	if changed("bg") {
		b.SetBackground(f.bg)
	}
	return b
}

// outputFlags pick the drawing backend. Unset values come from the
// preferences in the profiles file.
type outputFlags struct {
	backend string
	out     string
	screen  string
	crop    bool
}

func addOutputFlags(cmd *cobra.Command) *outputFlags {
	f := &outputFlags{}
	fl := cmd.Flags()
	fl.StringVar(&f.backend, "backend", "", "Drawing backend: png or term (default from preferences)")
	fl.StringVar(&f.out, "out", "", "PNG file to write (png backend)")
	fl.StringVar(&f.screen, "screen", "", "Canvas size as WxH (png backend)")
	fl.BoolVar(&f.crop, "crop", false, "Write only the bar instead of the whole canvas (png backend)")
	return f
}

func (f *outputFlags) backendName(prefs *config.Preferences) string {
	if f.backend != "" {
		return f.backend
	}
	if prefs != nil && prefs.Backend != "" {
		return prefs.Backend
	}
	return config.BackendPNG
}

func (f *outputFlags) output(prefs *config.Preferences) string {
	if f.out != "" || prefs == nil {
		return f.out
	}
	return prefs.Output
}

func (f *outputFlags) screenSize(prefs *config.Preferences) (int, int, error) {
	if f.screen != "" {
		return parseScreen(f.screen)
	}
	if prefs != nil && prefs.ScreenWidth > 0 && prefs.ScreenHeight > 0 {
		return prefs.ScreenWidth, prefs.ScreenHeight, nil
	}
	return raster.DefaultWidth, raster.DefaultHeight, nil
}

// open returns the backend to draw with and its name.
func (f *outputFlags) open(prefs *config.Preferences) (segbar.Backend, string, error) {
	name := f.backendName(prefs)
	switch name {
	case config.BackendPNG:
		w, h, err := f.screenSize(prefs)
		if err != nil {
			return nil, name, err
		}
		return raster.New(
			raster.WithScreenSize(w, h),
			raster.WithOutput(f.output(prefs)),
			raster.WithCrop(f.crop),
		), name, nil
	case config.BackendTerm:
		return term.New(), name, nil
	default:
		return nil, name, fmt.Errorf("unknown backend %q (expected %s or %s)", name, config.BackendPNG, config.BackendTerm)
	}
}

// parseScreen parses "WxH", e.g. "1920x1080".
func parseScreen(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid screen size %q (expected WxH, e.g. 1920x1080)", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid screen size %q (expected WxH, e.g. 1920x1080)", s)
	}
	return w, h, nil
}

// wait blocks for d or until ctx is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
