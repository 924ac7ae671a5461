package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nfomaker/internal/naming"
	"nfomaker/internal/tmdb"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var year int
	var limit int

	cmd := &cobra.Command{
		Use:   "identify <title or filename>",
		Short: "Search TMDB and list the candidate matches",
		Long: `Search TMDB for a title and list the candidates with the popularity
ranking used for automatic selection. A release-style filename is parsed
first, so both forms work:

  nfomaker identify "The Matrix"
  nfomaker identify The.Matrix.1999.1080p.BluRay.x264-GRP.mkv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cfg.TMDB.APIKey == "" {
				return fmt.Errorf("no TMDB API key configured (set tmdb.api_key or TMDB_API_KEY)")
			}

			query := strings.TrimSpace(args[0])
			searchYear := year
			if strings.ContainsAny(query, "._") {
				parsed := naming.Parse(query)
				if parsed.Title != "" {
					query = parsed.Title
				}
				if searchYear == 0 {
					searchYear = parsed.Year
				}
			}

			client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			response, err := client.SearchMovie(cmd.Context(), query, tmdb.SearchOptions{Year: searchYear})
			if err != nil {
				return fmt.Errorf("search TMDB: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(response.Results) == 0 {
				fmt.Fprintf(out, "No TMDB results for %q\n", query)
				return nil
			}

			results := response.Results
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				yearValue := "N/A"
				if y := result.Year(); y > 0 {
					yearValue = strconv.Itoa(y)
				}
				rows = append(rows, []string{
					strconv.FormatInt(result.ID, 10),
					result.Title,
					yearValue,
					fmt.Sprintf("%.1f", result.Popularity),
					fmt.Sprintf("%.1f", result.VoteAverage),
				})
			}

			fmt.Fprintf(out, "TMDB results for %q", query)
			if searchYear > 0 {
				fmt.Fprintf(out, " (%d)", searchYear)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Title", "Year", "Popularity", "Rating"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Restrict the search to a release year")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of candidates to show")

	return cmd
}
