package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefront/internal/db"
	"storefront/internal/theme"
	viewtheme "storefront/internal/views/theme"
	"storefront/models"
)

type themeOutput struct {
	Theme  string `json:"theme"`
	Label  string `json:"label"`
	Active bool   `json:"active,omitempty"`
}

func themeCmd(v *viper.Viper) *cobra.Command {
	themeRoot := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the site-wide default theme",
		Long: "The default theme applies to every visitor who has not picked a theme\n" +
			"in their own session.",
	}

	themeRoot.AddCommand(
		themeGetCmd(v),
		themeSetCmd(v),
		themeListCmd(v),
	)
	return themeRoot
}

func openPreferences(cmd *cobra.Command, v *viper.Viper) (*db.PreferenceStorage, error) {
	conn, err := openDatabase(cmd.Context(), v)
	if err != nil {
		return nil, fmt.Errorf("open preference database: %w", err)
	}
	return db.NewPreferenceStorage(conn), nil
}

func themeGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the default theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := openPreferences(cmd, v)
			if err != nil {
				return err
			}
			def := viewtheme.Resolve(theme.Open(cmd.Context(), prefs).Get())

			out := cmd.OutOrStdout()
			if jsonOutput(v) {
				return outputJSON(out, themeOutput{Theme: string(def.ID), Label: def.Label})
			}
			_, err = fmt.Fprintf(out, "%s (%s)\n", def.ID, def.Label)
			return err
		},
	}
}

func themeSetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "set <theme>",
		Short:     "Change the default theme",
		Example:   "  storefront theme set theme2",
		Args:      cobra.ExactArgs(1),
		ValidArgs: themeIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !models.ValidTheme(id) {
				return fmt.Errorf("unknown theme %q (want one of %s)", id, strings.Join(themeIDs(), ", "))
			}
			prefs, err := openPreferences(cmd, v)
			if err != nil {
				return err
			}
			if err := prefs.Set(cmd.Context(), theme.StorageKey, id); err != nil {
				return err
			}

			def := viewtheme.Resolve(models.Theme(id))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Default theme set to %s (%s)\n", def.ID, def.Label)
			return err
		},
	}
}

func themeListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := openPreferences(cmd, v)
			if err != nil {
				return err
			}
			active := theme.Open(cmd.Context(), prefs).Get()

			options := viewtheme.Options()
			rows := make([]themeOutput, 0, len(options))
			for _, def := range options {
				rows = append(rows, themeOutput{Theme: string(def.ID), Label: def.Label, Active: def.ID == active})
			}

			out := cmd.OutOrStdout()
			if jsonOutput(v) {
				return outputJSON(out, rows)
			}
			tw := newTabWriter(out)
			tw.writef("THEME\tLABEL\tACTIVE\n")
			for _, row := range rows {
				marker := ""
				if row.Active {
					marker = "*"
				}
				tw.writef("%s\t%s\t%s\n", row.Theme, row.Label, marker)
			}
			return tw.finish()
		},
	}
}

func themeIDs() []string {
	ids := make([]string, 0, len(models.Themes))
	for _, id := range models.Themes {
		ids = append(ids, string(id))
	}
	return ids
}
