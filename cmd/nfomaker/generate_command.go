package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"nfomaker/internal/config"
	"nfomaker/internal/fileutil"
	"nfomaker/internal/interactive"
	"nfomaker/internal/logging"
	"nfomaker/internal/lookupcache"
	"nfomaker/internal/media"
	"nfomaker/internal/naming"
	"nfomaker/internal/nfo"
	"nfomaker/internal/omdb"
	"nfomaker/internal/render"
	"nfomaker/internal/tmdb"
)

type generateOptions struct {
	tmdbID      int64
	title       string
	year        int
	language    string
	output      string
	overwrite   bool
	noLookup    bool
	interactive bool
	printOnly   bool
	hashAlgo    string
	group       string
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate an NFO document for a video file",
		Long: `Generate a bordered NFO document for a video file.

The pipeline extracts technical metadata (mediainfo, falling back to
ffprobe), resolves the movie on TMDB (guessing title and year from the
filename when not given), hashes the file, and renders the final document
next to the input file.

Examples:
  nfomaker generate movie.mkv
  nfomaker generate movie.mkv --tmdb-id 603
  nfomaker generate movie.mkv --title "The Matrix" --year 1999
  nfomaker generate movie.mkv --interactive
  nfomaker generate movie.mkv --print`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			return runGenerate(cmd, cfg, args[0], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.tmdbID, "tmdb-id", 0, "TMDB movie ID (skips the title search)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Movie title override")
	cmd.Flags().IntVar(&opts.year, "year", 0, "Release year override")
	cmd.Flags().StringVar(&opts.language, "lang", "", "TMDB metadata language (e.g. fr-FR, en-US)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path for the NFO document")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Overwrite an existing NFO document")
	cmd.Flags().BoolVar(&opts.noLookup, "no-tmdb", false, "Skip the TMDB lookup entirely")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Review and correct sections before rendering")
	cmd.Flags().BoolVar(&opts.printOnly, "print", false, "Print the document to stdout instead of writing a file")
	cmd.Flags().StringVar(&opts.hashAlgo, "hash", "", "Hash algorithm for the File section (sha1 or sha256)")
	cmd.Flags().StringVar(&opts.group, "group", "", "Release group used in the proposed filename")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, input string, opts generateOptions) error {
	cmdCtx := cmd.Context()
	out := cmd.OutOrStdout()

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	logger = logging.NewComponentLogger(logger, "generate")

	path, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	if opts.hashAlgo == "" {
		opts.hashAlgo = cfg.Naming.HashAlgo
	}
	if opts.language != "" {
		cfg.TMDB.Language = opts.language
	}
	if opts.group == "" {
		opts.group = cfg.Naming.Group
	}

	parsed := naming.Parse(filepath.Base(path))
	source := naming.DetectSource(filepath.Base(path))
	title := opts.title
	if title == "" {
		title = parsed.Title
	}
	year := opts.year
	if year == 0 {
		year = parsed.Year
	}
	logger.Info("input parsed",
		logging.String("file", filepath.Base(path)),
		logging.String("title", title),
		logging.Int("year", year),
		logging.String("source", source))

	tech, err := media.Extract(cmdCtx, path)
	if err != nil {
		logger.Warn("technical extraction failed", logging.Error(err))
		tech = nil
	} else {
		logger.Info("technical metadata extracted",
			logging.String("tool", tech.Tool),
			logging.Int("video_tracks", len(tech.Videos)),
			logging.Int("audio_tracks", len(tech.Audios)))
	}

	var prompter interactive.Prompter
	if opts.interactive {
		if !interactive.IsTerminal() {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		prompter = interactive.NewPrompter()
	}

	lookup := newLookupRunner(cfg, logger, prompter)
	defer lookup.Close()

	var movie *tmdb.Movie
	var note string
	if !opts.noLookup {
		movie, note = lookup.resolve(cmd, tmdb.ResolveParams{
			ID:    opts.tmdbID,
			Title: title,
			Year:  year,
		})
	}
	if movie != nil {
		if movie.Title != "" {
			title = movie.Title
		}
		if y := movie.Year(); y > 0 {
			year = y
		}
	}

	hash := ""
	if opts.hashAlgo != "" {
		digest, err := fileutil.HashFile(path, opts.hashAlgo)
		if err != nil {
			return fmt.Errorf("hash input file: %w", err)
		}
		hash = strings.ToUpper(opts.hashAlgo) + " " + digest
	}

	file := nfo.FileInfo{
		Path:      path,
		SizeBytes: info.Size(),
		Hash:      hash,
	}
	if tech != nil {
		file.DurationSec = tech.General.DurationSec
	}

	buildOpts := nfo.BuildOptions{
		Title:     title,
		Year:      year,
		Source:    source,
		MatchNote: note,
	}
	sections := nfo.BuildSections(movie, tech, file, buildOpts)

	if opts.interactive {
		session := &interactive.Session{
			Prompter: prompter,
			Out:      out,
			RefreshLookup: func() ([]render.Section, error) {
				fresh, freshNote := lookup.resolve(cmd, tmdb.ResolveParams{
					ID:    opts.tmdbID,
					Title: title,
					Year:  year,
				})
				if fresh == nil {
					return nil, fmt.Errorf("no TMDB match for %q", title)
				}
				refreshed := buildOpts
				refreshed.MatchNote = freshNote
				return nfo.BuildSections(fresh, tech, file, refreshed), nil
			},
			RefreshTech: func() ([]render.Section, error) {
				freshTech, err := media.Extract(cmdCtx, path)
				if err != nil {
					return nil, err
				}
				return nfo.BuildSections(movie, freshTech, file, buildOpts), nil
			},
		}

		sections, err = session.Review(sections)
		if err != nil {
			return err
		}
		extras, err := session.ExtraSections()
		if err != nil {
			return err
		}
		sections = append(sections, extras...)

		proposed := naming.ReleaseName(path, title, year, tech, source, opts.group)
		renamed, err := session.ProposeRename(path, proposed)
		if err != nil {
			return err
		}
		if renamed != path {
			logger.Info("file renamed",
				logging.String("from", filepath.Base(path)),
				logging.String("to", filepath.Base(renamed)))
			path = renamed
		}
	}

	templates, err := render.LoadTemplates(cfg.Paths.BannersDir)
	if err != nil {
		return fmt.Errorf("load banner templates: %w", err)
	}
	document := render.Assemble(sections, templates)

	if opts.printOnly {
		fmt.Fprint(out, document)
		return nil
	}

	target := strings.TrimSpace(opts.output)
	if target == "" {
		target = defaultOutputPath(path)
	} else if target, err = filepath.Abs(target); err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if !opts.overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("output %s already exists (use --overwrite to replace it)", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check output path: %w", err)
		}
	}
	if err := fileutil.WriteFileLocked(target, []byte(document), 0o644); err != nil {
		return fmt.Errorf("write NFO document: %w", err)
	}

	logger.Info("nfo written",
		logging.String("output", target),
		logging.Int("sections", len(sections)))
	fmt.Fprintf(out, "Wrote %s\n", target)
	return nil
}

// defaultOutputPath swaps the video extension for .nfo next to the input.
func defaultOutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".nfo"
}

// lookupRunner bundles the TMDB client, its sqlite-backed cache, and the
// OMDb fallback so the generate flow and the interactive refresh share one
// resolution path. Lookup failures degrade to a document without a Movie
// section instead of aborting the run.
type lookupRunner struct {
	cfg      *config.Config
	logger   *slog.Logger
	prompter interactive.Prompter
	cache    *lookupcache.Store
	client   *tmdb.Client
}

func newLookupRunner(cfg *config.Config, logger *slog.Logger, prompter interactive.Prompter) *lookupRunner {
	r := &lookupRunner{cfg: cfg, logger: logger, prompter: prompter}
	if cfg.TMDB.APIKey == "" {
		return r
	}

	clientOpts := []tmdb.Option{}
	if cfg.Paths.CacheDir != "" {
		store, err := lookupcache.Open(cfg.Paths.CacheDir)
		if err != nil {
			logger.Warn("lookup cache unavailable", logging.Error(err))
		} else {
			r.cache = store
			clientOpts = append(clientOpts, tmdb.WithCache(store))
		}
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, clientOpts...)
	if err != nil {
		logger.Warn("tmdb client unavailable", logging.Error(err))
		return r
	}
	r.client = client
	return r
}

func (r *lookupRunner) Close() {
	if r.cache != nil {
		r.cache.Close()
	}
}

// resolve finds the movie, falling back to an OMDb title correction when the
// TMDB search comes up empty. It never fails the run; a nil movie means the
// document is rendered without lookup metadata.
func (r *lookupRunner) resolve(cmd *cobra.Command, params tmdb.ResolveParams) (*tmdb.Movie, string) {
	if r.client == nil {
		if r.cfg.TMDB.APIKey == "" {
			r.logger.Warn("tmdb lookup skipped", logging.String("reason", "no API key configured"))
		}
		return nil, ""
	}
	ctx := cmd.Context()
	if r.prompter != nil {
		params.Chooser = r.chooser(cmd)
	}

	movie, note, err := r.client.Resolve(ctx, params)
	if err != nil {
		r.logger.Warn("tmdb lookup failed", logging.Error(err))
		return nil, ""
	}
	if movie == nil && params.ID == 0 && r.cfg.OMDb.APIKey != "" {
		movie, note = r.omdbRetry(cmd, params)
	}
	if movie == nil {
		r.logger.Warn("no tmdb match", logging.String("title", params.Title), logging.Int("year", params.Year))
		return nil, ""
	}

	if movie.IMDbID == "" {
		if ids, err := r.client.GetExternalIDs(ctx, movie.ID); err != nil {
			r.logger.Warn("external ids lookup failed", logging.Error(err))
		} else {
			movie.IMDbID = ids.IMDbID
		}
	}

	r.logger.Info("movie resolved",
		logging.Int64("tmdb_id", movie.ID),
		logging.String("title", movie.Title),
		logging.Int("year", movie.Year()))
	return movie, note
}

// omdbRetry asks OMDb for a corrected title and year, then searches TMDB
// again with the correction.
func (r *lookupRunner) omdbRetry(cmd *cobra.Command, params tmdb.ResolveParams) (*tmdb.Movie, string) {
	client, err := omdb.New(r.cfg.OMDb.APIKey, r.cfg.OMDb.BaseURL)
	if err != nil {
		r.logger.Warn("omdb client unavailable", logging.Error(err))
		return nil, ""
	}
	match, err := client.SearchTitle(cmd.Context(), params.Title, params.Year)
	if err != nil {
		r.logger.Warn("omdb fallback failed", logging.Error(err))
		return nil, ""
	}
	if match == nil || match.Title == params.Title {
		return nil, ""
	}

	r.logger.Info("retrying tmdb with omdb correction",
		logging.String("title", match.Title),
		logging.Int("year", match.Year))
	retry := params
	retry.Title = match.Title
	if match.Year > 0 {
		retry.Year = match.Year
	}
	movie, note, err := r.client.Resolve(cmd.Context(), retry)
	if err != nil {
		r.logger.Warn("tmdb retry failed", logging.Error(err))
		return nil, ""
	}
	return movie, note
}

// chooser presents the search candidates and lets the user pick one. Index
// -1 falls back to the automatic popularity ranking.
func (r *lookupRunner) chooser(cmd *cobra.Command) tmdb.Chooser {
	return func(results []tmdb.SearchResult) int {
		options := make([]string, 0, len(results)+1)
		for _, result := range results {
			year := "N/A"
			if y := result.Year(); y > 0 {
				year = fmt.Sprintf("%d", y)
			}
			options = append(options, fmt.Sprintf("%s (%s)  [TMDB %d]", result.Title, year, result.ID))
		}
		options = append(options, "Pick automatically")
		idx, err := r.prompter.Select("TMDB candidates", options)
		if err != nil || idx >= len(results) {
			return -1
		}
		return idx
	}
}
