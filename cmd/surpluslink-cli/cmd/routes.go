package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/surpluslink/surpluslink/internal/config"
	"github.com/surpluslink/surpluslink/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lists the HTTP routes registered by the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		// The route table does not depend on stored state.
		s, err := server.New(cfg, afero.NewMemMapFs())
		if err != nil {
			return err
		}
		defer s.Services.Bus.Close()
		s.RegisterRoutes()

		routes := s.Routes()
		sort.Strings(routes)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH")
		for _, r := range routes {
			method, path, _ := strings.Cut(r, " ")
			fmt.Fprintf(w, "%s\t%s\n", method, path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
