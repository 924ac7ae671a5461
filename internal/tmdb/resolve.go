package tmdb

import (
	"context"
	"fmt"
	"sort"
)

// Chooser picks one of the presented search results and returns its index.
// A negative index falls back to the automatic ranking.
type Chooser func(results []SearchResult) int

// ResolveParams describes how to find a movie.
type ResolveParams struct {
	ID      int64
	Title   string
	Year    int
	Chooser Chooser
}

// exactYearBoost is added to a result's popularity when its release year
// matches the requested year.
const exactYearBoost = 5.0

// Resolve finds the movie described by params. A known TMDB ID is fetched
// directly. Otherwise the title is searched and the best candidate picked,
// either by the supplied chooser or by popularity ranking. The returned note
// records which search candidate was chosen; it is empty for direct ID
// lookups and when nothing matched.
func (c *Client) Resolve(ctx context.Context, params ResolveParams) (*Movie, string, error) {
	if params.ID > 0 {
		movie, err := c.GetMovie(ctx, params.ID)
		if err != nil {
			return nil, "", err
		}
		return movie, "", nil
	}
	if params.Title == "" {
		return nil, "", nil
	}

	response, err := c.SearchMovie(ctx, params.Title, SearchOptions{Year: params.Year})
	if err != nil {
		return nil, "", err
	}
	if len(response.Results) == 0 {
		return nil, "", nil
	}

	picked := pickResult(response.Results, params)
	movie, err := c.GetMovie(ctx, picked.ID)
	if err != nil {
		return nil, "", err
	}
	return movie, matchNote(picked), nil
}

func pickResult(results []SearchResult, params ResolveParams) SearchResult {
	if params.Chooser != nil {
		if idx := params.Chooser(results); idx >= 0 && idx < len(results) {
			return results[idx]
		}
	}

	ranked := make([]SearchResult, len(results))
	copy(ranked, results)
	score := func(r SearchResult) float64 {
		s := r.Popularity
		if params.Year > 0 && r.Year() == params.Year {
			s += exactYearBoost
		}
		return s
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked[0]
}

func matchNote(result SearchResult) string {
	year := "N/A"
	if y := result.Year(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	return fmt.Sprintf("%d %s (%s)", result.ID, result.Title, year)
}
