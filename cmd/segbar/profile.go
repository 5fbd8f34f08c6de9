package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/segbar/internal/config"
	"github.com/muurk/segbar/internal/segbar"
	"github.com/muurk/segbar/internal/ui"
)

func (a *app) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved bar profiles",
		Long: `List, show, save and delete named bar profiles.

A profile stores only the attributes it was saved with. Built-in profiles
are always available and cannot be changed.`,
	}

	cmd.AddCommand(
		a.profileListCmd(),
		a.profileShowCmd(),
		a.profileSaveCmd(),
		a.profileDeleteCmd(),
	)
	return cmd
}

func (a *app) profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}

			var rows []ui.ProfileRow
			for _, name := range reg.ProfileNames() {
				p := reg.GetProfile(name)
				mask, _ := p.Request()
				rows = append(rows, ui.ProfileRow{
					Name:        name,
					Description: p.Description,
					Mask:        mask,
					Builtin:     config.IsBuiltin(name),
				})
			}

			ui.NewPrinter(cmd.OutOrStdout()).Println(ui.RenderProfileList(rows))
			return nil
		},
	}
}

func (a *app) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a profile as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry()
			if err != nil {
				return err
			}
			p := reg.GetProfile(args[0])
			if p == nil {
				return fmt.Errorf("profile %q not found", args[0])
			}

			data, err := yaml.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to marshal profile: %w", err)
			}

			printer := ui.NewPrinter(cmd.OutOrStdout())
			mask, _ := p.Request()
			printer.PrintHeader("Profile "+args[0], cmd.CommandPath(), ui.Param{Key: "Sets", Value: mask.String()})
			printer.Println(strings.TrimRight(string(data), "\n"))
			return nil
		},
	}
}

func (a *app) profileSaveCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the given bar flags as a profile",
		Long: `Save the bar flags passed on the command line as a named profile.
Flags that are not passed are not stored, so the profile keeps using the
library defaults for them. Saving over an existing profile replaces it.`,
		Example: `  segbar profile save tiny --segments 10 --seg-width 5 --seg-height 5 --padding 1
  segbar profile save corner --x 0 --y 0 --description "Top-left corner"`,
		Args: cobra.ExactArgs(1),
	}

	bf := addBarFlags(cmd)
	cmd.Flags().StringVar(&description, "description", "", "Short description shown by 'profile list'")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name := args[0]

		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}

		mask, attr := bf.apply(cmd, segbar.NewRequest()).Build()
		p := config.ProfileFromRequest(mask, attr)
		p.Description = description

		if err := reg.SetProfile(name, p); err != nil {
			return err
		}
		if err := a.saveRegistry(reg); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Profile saved",
			ui.Param{Key: "Name", Value: name},
			ui.Param{Key: "Sets", Value: mask.String()},
		)
		return nil
	}

	return cmd
}

func (a *app) profileDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name := args[0]

		reg, err := a.loadRegistry()
		if err != nil {
			return err
		}
		if config.IsBuiltin(name) {
			return fmt.Errorf("profile %q is built in and cannot be deleted", name)
		}
		if reg.GetProfile(name) == nil {
			return fmt.Errorf("profile %q not found", name)
		}

		if !yes && !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "DELETE PROFILE",
			[]string{fmt.Sprintf("Profile %q will be removed from the profiles file", name)}, name) {
			return nil
		}

		if err := reg.DeleteProfile(name); err != nil {
			return err
		}
		if err := a.saveRegistry(reg); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Profile deleted", ui.Param{Key: "Name", Value: name})
		return nil
	}

	return cmd
}
