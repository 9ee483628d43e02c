package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kurihiro0119/github-user-finder/internal/collector"
	"github.com/kurihiro0119/github-user-finder/internal/config"
	"github.com/kurihiro0119/github-user-finder/internal/domain"
	"github.com/kurihiro0119/github-user-finder/internal/storage"
	"github.com/kurihiro0119/github-user-finder/internal/storage/postgres"
	"github.com/kurihiro0119/github-user-finder/internal/storage/sqlite"
	"github.com/kurihiro0119/github-user-finder/internal/widget"
	"github.com/kurihiro0119/github-user-finder/pkg/client"
)

var (
	outputJSON   bool
	remote       bool
	verbose      bool
	historyLimit int
)

var rootCmd = &cobra.Command{
	Use:   "github-finder",
	Short: "GitHub user finder",
	Long: `A CLI tool for looking up GitHub users.

It fetches a user's public profile together with their ten most recently
created repositories, either directly from GitHub or through a running
github-user-finder API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [username]",
	Short: "Look up a GitHub user",
	Long:  `Fetch the profile and latest repositories of a GitHub user.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lookups",
	Long:  `Display the most recent lookups recorded in the lookup history.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false, "query the API server at API_ENDPOINT instead of GitHub")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	historyCmd.Flags().IntVar(&historyLimit, "limit", storage.DefaultHistoryLimit, "number of lookups to show")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func getStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "postgres":
		return postgres.NewPostgresStorage(cfg.PostgresURL)
	case "sqlite":
		return sqlite.NewSQLiteStorage(cfg.SQLitePath)
	default:
		return nil, nil
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if remote {
		lookup, err := client.NewClient(cfg.APIEndpoint).Lookup(args[0])
		if err != nil {
			return err
		}
		return printLookup(cmd.OutOrStdout(), lookup)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	coll, err := collector.NewGitHubCollector(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		return err
	}

	opts := []widget.Option{widget.WithLogger(logger)}
	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, widget.WithRecorder(store))
	}

	notifier := widget.NotifierFunc(func(level widget.Level, message string) {
		if level == widget.LevelWarning {
			logger.Warn(message)
			return
		}
		logger.Info(message)
	})

	ctrl := widget.NewController(coll, widget.NewView(), notifier, opts...)
	lookup, err := ctrl.Submit(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return printLookup(cmd.OutOrStdout(), lookup)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var records []*domain.LookupRecord
	if remote {
		records, err = client.NewClient(cfg.APIEndpoint).GetHistory(historyLimit)
		if err != nil {
			return err
		}
	} else {
		if !cfg.HistoryEnabled() {
			return fmt.Errorf("lookup history is disabled: set STORAGE_TYPE to 'sqlite' or 'postgres'")
		}
		store, err := getStorage(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()

		records, err = store.GetRecentLookups(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
	}

	return printHistory(cmd.OutOrStdout(), records)
}

func printLookup(w io.Writer, lookup *domain.Lookup) error {
	if outputJSON {
		return writeJSON(w, lookup)
	}

	p := lookup.Profile
	fmt.Fprintf(w, "\nAbout %s\n\n", p.Login)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Profile", p.HTMLURL})
	table.Append([]string{"Avatar", p.AvatarURL})
	table.Append([]string{"Bio", p.BioText()})
	table.Append([]string{"Followers", strconv.Itoa(p.Followers)})
	table.Append([]string{"Following", strconv.Itoa(p.Following)})
	table.Append([]string{"Public Repos", strconv.Itoa(p.PublicRepos)})
	table.Append([]string{"Public Gists", strconv.Itoa(p.PublicGists)})
	table.Render()

	if len(lookup.Repositories) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nLatest Repos:\n\n")
	table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Stars", "Watchers", "Forks", "URL"})
	for _, repo := range lookup.Repositories {
		table.Append([]string{
			repo.Name,
			strconv.Itoa(repo.Stars),
			strconv.Itoa(repo.Watchers),
			strconv.Itoa(repo.Forks),
			repo.HTMLURL,
		})
	}
	table.Render()

	return nil
}

func printHistory(w io.Writer, records []*domain.LookupRecord) error {
	if outputJSON {
		return writeJSON(w, records)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Requested At", "Query", "Result", "Login", "Repos"})
	for _, rec := range records {
		result := "not found"
		if rec.Succeeded {
			result = "ok"
		}
		table.Append([]string{
			rec.RequestedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Query,
			result,
			rec.Login,
			strconv.Itoa(rec.RepoCount),
		})
	}
	table.Render()

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
