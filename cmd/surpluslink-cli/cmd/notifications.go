package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/surpluslink/surpluslink/internal/notifications"
)

var notificationsUser string

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Shows the mock notifications and unread counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := notifications.NewRepository()

		users := repo.UserIDs()
		if notificationsUser != "" {
			users = []string{notificationsUser}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "USER\tUNREAD\tREAD\tTITLE")
		for _, id := range users {
			items := repo.List(id)
			if len(items) == 0 {
				fmt.Fprintf(w, "%s\t%d\t\t(none)\n", id, 0)
				continue
			}
			for _, n := range items {
				read := "no"
				if n.Read {
					read = "yes"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", id, repo.UnreadCount(id), read, n.Title)
			}
		}
		return w.Flush()
	},
}

func init() {
	notificationsCmd.Flags().StringVar(&notificationsUser, "user", "", "only show this user id (e.g. donor-1)")
	rootCmd.AddCommand(notificationsCmd)
}
