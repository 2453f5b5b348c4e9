package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surpluslink/surpluslink/internal/theme"
)

var themeFile string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or toggle the stored theme preference",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := theme.NewFileStore(appFs, themeFile).Load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the stored theme; a server started with THEME_WATCH=true picks it up",
	RunE: func(cmd *cobra.Command, args []string) error {
		// A nil publisher: the running server learns about the change from its file watcher.
		svc := theme.NewService(cmd.Context(), theme.NewFileStore(appFs, themeFile), nil)
		t, err := svc.Toggle(cmd.Context())
		if err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	themeCmd.PersistentFlags().StringVar(&themeFile, "file", "data/theme.json", "theme preference file")
	themeCmd.AddCommand(themeShowCmd, themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
