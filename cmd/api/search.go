// ABOUTME: search command runs a single lookup and prints the JSON result
// ABOUTME: Runs Sherlock locally or asks a remote server when --remote is set

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"profile-search-api/pkg/config"
	"profile-search-api/pkg/profilesearch"
)

func newSearchCmd(v *viper.Viper) *cobra.Command {
	var (
		sites   []string
		remote  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "search <username>",
		Short: "Search for a username and print the profile links as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searcher, err := newSearcher(v, remote, verbose)
			if err != nil {
				return err
			}

			result, err := searcher.Search(cmd.Context(), args[0], sites...)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringArrayVar(&sites, "site", nil, "Limit the search to a site (repeatable, passed through unchanged)")
	cmd.Flags().StringVar(&remote, "remote", "", "Base URL of a running profile-search-api server")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log tool activity to stderr")

	return cmd
}

// newSearcher returns a remote client when baseURL is set, otherwise an in-process client
func newSearcher(v *viper.Viper, baseURL string, verbose bool) (profilesearch.Searcher, error) {
	if baseURL != "" {
		return profilesearch.NewRemoteClient(baseURL, nil)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	opts := []profilesearch.Option{
		profilesearch.WithToolPath(cfg.Tool.Path),
		profilesearch.WithTimeout(cfg.Tool.Timeout),
		profilesearch.WithMaxConcurrent(cfg.Tool.MaxConcurrent),
		profilesearch.WithInstallHint(cfg.Tool.InstallHint),
	}
	if verbose {
		opts = append(opts, profilesearch.WithLogger(profilesearch.DefaultLogger()))
	}

	return profilesearch.NewClient(opts...)
}

func writeResult(w io.Writer, result *profilesearch.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
