package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kongnyuysido/portfolio/internal/models"
	"github.com/kongnyuysido/portfolio/internal/repos"
)

func newReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "Fetch the projects list once and print it as JSON",
		Long: `Runs the same single best-effort fetch the server does at startup.
A failed fetch is logged to stderr and prints an empty list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, loader, err := setup(cmd.Context(), viper.New(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			loader.Start(cmd.Context())

			list := []models.RepositorySummary{}
			if s, ok := loader.State().(repos.Settled); ok && s.Repos != nil {
				list = s.Repos
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		},
	}
}
