package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/segbar/internal/backend/raster"
	"github.com/muurk/segbar/internal/config"
	"github.com/muurk/segbar/internal/logging"
	"github.com/muurk/segbar/internal/segbar"
	"github.com/muurk/segbar/internal/ui"
)

// drawCmd draws a bar once
func (a *app) drawCmd() *cobra.Command {
	var (
		current, maxValue int
		profile           string
		hold              time.Duration
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a bar once",
		Long: `Create a bar, draw it at current/max and release it.

With the png backend the canvas is written to --out. With the term backend
the bar is shown on the terminal for --hold before the screen is restored.`,
		Example: `  # Half-full default bar on a 1920x1080 canvas
  segbar draw --current 1 --max 2 --out bar.png

  # Just the bar, 10 green segments at the top-left corner
  segbar draw --current 3 --max 10 --segments 10 --fg green --x 0 --y 0 --crop

  # A saved profile, on the terminal
  segbar draw --profile tiny --backend term --current 7 --max 9`,
		Args: cobra.NoArgs,
	}

	bf := addBarFlags(cmd)
	of := addOutputFlags(cmd)
	cmd.Flags().IntVar(&current, "current", 0, "Progress value")
	cmd.Flags().IntVar(&maxValue, "max", 1, "Value at which the bar is full")
	cmd.Flags().StringVar(&profile, "profile", "", "Start from a saved or built-in profile")
	cmd.Flags().DurationVar(&hold, "hold", 2*time.Second, "How long the term backend shows the bar")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Suppress usage on execution errors (we're past argument parsing)
		cmd.SilenceUsage = true
		p := ui.NewPrinter(cmd.OutOrStdout())

		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}
		mask, attr, err := a.request(cmd, reg, profile, bf)
		if err != nil {
			return err
		}
		backend, name, err := of.open(reg.Preferences)
		if err != nil {
			return err
		}

		bar, err := segbar.Init(mask, attr, backend)
		if err != nil {
			p.PrintBarError("Could not create bar", err)
			return fmt.Errorf("init: %w", err)
		}

		drawErr := bar.Draw(current, maxValue)
		if drawErr == nil && name == config.BackendTerm {
			_ = wait(cmd.Context(), hold)
		}

		layout := bar.Layout()
		fg, bg := bar.Colors()
		if err := bar.Close(); err != nil && drawErr == nil {
			p.PrintBarError("Could not finish drawing", err)
			return fmt.Errorf("close: %w", err)
		}
		if drawErr != nil {
			p.PrintBarError("Draw failed", drawErr)
			return fmt.Errorf("draw: %w", drawErr)
		}

		percent, _ := segbar.Percent(current, maxValue)
		details := []ui.Param{
			{Key: "Backend", Value: name},
			{Key: "Bar", Value: layout.Bounds().String()},
			{Key: "Progress", Value: fmt.Sprintf("%d/%d (%.1f%%)", current, maxValue, percent)},
		}
		if name == config.BackendPNG {
			details = append(details, ui.Param{Key: "Output", Value: of.output(reg.Preferences)})
		}
		p.PrintSuccess("Bar drawn", details...)
		p.Println(ui.NewPreview(layout, fg, bg).SetWidth(p.Width()).Render(percent))
		return nil
	}

	return cmd
}

// demoCmd steps a bar from empty to full
func (a *app) demoCmd() *cobra.Command {
	var (
		steps   int
		delay   time.Duration
		profile string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Step a bar from empty to full",
		Long: `Draw a bar at 0/steps, 1/steps, ... steps/steps, pausing --delay after
each frame. Runs on the terminal unless another backend is chosen; with
the png backend each frame overwrites --out and a text preview is printed.`,
		Example: `  # Default bar on the terminal, 4 steps one second apart
  segbar demo

  # Compact bar that fits an 80x24 terminal
  segbar demo --segments 10 --seg-width 5 --seg-height 5 --padding 1 --x 0 --y 0

  # Ten frames into a PNG, with a text preview per frame
  segbar demo --backend png --steps 10 --delay 100ms --out demo.png`,
		Args: cobra.NoArgs,
	}

	bf := addBarFlags(cmd)
	of := addOutputFlags(cmd)
	cmd.Flags().IntVar(&steps, "steps", 4, "Number of steps from empty to full")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "Pause after each frame")
	cmd.Flags().StringVar(&profile, "profile", "", "Start from a saved or built-in profile")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if steps <= 0 {
			return fmt.Errorf("--steps must be positive, got %d", steps)
		}
		cmd.SilenceUsage = true
		p := ui.NewPrinter(cmd.OutOrStdout())

		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}
		mask, attr, err := a.request(cmd, reg, profile, bf)
		if err != nil {
			return err
		}
		if of.backend == "" {
			of.backend = config.BackendTerm
		}
		backend, name, err := of.open(reg.Preferences)
		if err != nil {
			return err
		}

		bar, err := segbar.Init(mask, attr, backend)
		if err != nil {
			p.PrintBarError("Could not create bar", err)
			return fmt.Errorf("init: %w", err)
		}

		layout := bar.Layout()
		fg, bg := bar.Colors()
		preview := ui.NewPreview(layout, fg, bg).SetWidth(p.Width())

		var runErr error
		frames := 0
		for i := 0; i <= steps; i++ {
			if runErr = bar.Draw(i, steps); runErr != nil {
				break
			}
			frames++
			logging.Debug("Demo frame", zap.Int("current", i), zap.Int("max", steps))

			if name != config.BackendTerm {
				line, _ := preview.RenderStep(i, steps)
				p.Println(line)
			}
			if runErr = wait(cmd.Context(), delay); runErr != nil {
				break
			}
		}

		if err := bar.Close(); err != nil && runErr == nil {
			runErr = err
		}

		switch {
		case runErr != nil && errors.Is(runErr, context.Canceled):
			p.PrintWarning("Demo interrupted", ui.Param{Key: "Frames", Value: strconv.Itoa(frames)})
			return nil
		case runErr != nil:
			p.PrintBarError("Demo failed", runErr)
			return runErr
		}

		p.PrintSuccess("Demo complete",
			ui.Param{Key: "Backend", Value: name},
			ui.Param{Key: "Bar", Value: layout.String()},
			ui.Param{Key: "Frames", Value: strconv.Itoa(frames)},
		)
		return nil
	}

	return cmd
}

// layoutCmd resolves a request without drawing it
func (a *app) layoutCmd() *cobra.Command {
	var (
		profile string
		percent float64
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the geometry a request resolves to",
		Long: `Validate a bar request against a screen size and print the resulting
geometry and colors, with a text preview. Nothing is drawn. Color names are
checked against the SVG color names used by the png backend.`,
		Example: `  # Where does the default bar go on a 1920x1080 screen?
  segbar layout

  # Will 60 squares fit on a laptop screen?
  segbar layout --profile many-squares --screen 1366x768`,
		Args: cobra.NoArgs,
	}

	bf := addBarFlags(cmd)
	of := addOutputFlags(cmd)
	cmd.Flags().StringVar(&profile, "profile", "", "Start from a saved or built-in profile")
	cmd.Flags().Float64Var(&percent, "percent", 50, "Fill shown in the preview (0-100)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		p := ui.NewPrinter(cmd.OutOrStdout())

		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}
		mask, attr, err := a.request(cmd, reg, profile, bf)
		if err != nil {
			return err
		}
		w, h, err := of.screenSize(reg.Preferences)
		if err != nil {
			return err
		}

		p.PrintHeader("Layout", cmd.CommandPath(),
			ui.Param{Key: "Screen", Value: fmt.Sprintf("%dx%d", w, h)},
			ui.Param{Key: "Request", Value: mask.String()},
		)

		layout, err := segbar.Resolve(mask, attr, w, h)
		if err != nil {
			p.PrintBarError("Invalid layout", err)
			return err
		}

		display, err := raster.New(raster.WithScreenSize(w, h)).Open()
		if err != nil {
			return err
		}
		defer func() { _ = display.Close() }()

		fg, bg, err := segbar.BindColors(mask, attr, display)
		if err != nil {
			p.PrintBarError("Invalid colors", err)
			return err
		}

		p.PrintLayout(*layout, fg, bg)
		p.Println(ui.NewPreview(*layout, fg, bg).SetWidth(p.Width()).Render(percent))
		return nil
	}

	return cmd
}

// statusCmd describes status codes
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [code...]",
		Short: "Describe status codes",
		Long: `Print the description of each status code, or of every known code when
none is given. segbar exits with the status code of a failed bar operation.`,
		Example: `  segbar status
  segbar status 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := segbar.Statuses()
			if len(args) > 0 {
				statuses = make([]segbar.Status, 0, len(args))
				for _, arg := range args {
					code, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("invalid status code %q", arg)
					}
					statuses = append(statuses, segbar.Status(code))
				}
			}
			ui.NewPrinter(cmd.OutOrStdout()).Println(ui.RenderStatusTable(statuses))
			return nil
		},
	}
}
