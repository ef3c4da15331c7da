package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/user/moviescraper/internal/config"
	"github.com/user/moviescraper/internal/model"
	"github.com/user/moviescraper/internal/repository"
	"github.com/user/moviescraper/internal/service"
	"github.com/user/moviescraper/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moviescraper",
		Short:         "Search IMDb through Brave Search and extract movie metadata",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSearchCmd(nil))
	return root
}

type searchOptions struct {
	year        int
	asJSON      bool
	showHistory bool
	verbose     bool
}

// newSearchCmd gateway 为空时按环境变量创建 Brave 客户端
func newSearchCmd(gateway service.SearchGateway) *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search a movie title and print the extracted records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			}

			if err := godotenv.Load(); err != nil {
				log.Println("未找到 .env 文件，使用系统环境变量")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if gateway == nil {
				shutdownTracer, err := telemetry.Init(cmd.Context(), "moviescraper-cli")
				if err != nil {
					log.Printf("[Telemetry] 初始化失败: %v", err)
				} else {
					defer func() {
						if err := shutdownTracer(context.Background()); err != nil {
							log.Printf("[Telemetry] 关闭失败: %v", err)
						}
					}()
				}
				gateway = service.NewBraveGateway(service.BraveConfig{
					Endpoint:  cfg.BraveEndpoint,
					APIKey:    cfg.BraveAPIKey,
					Timeout:   cfg.RequestTimeout,
					Transport: otelhttp.NewTransport(http.DefaultTransport),
				})
			}

			scraper := service.NewMovieScraper(gateway, repository.NewMovieStore(),
				service.WithResultLimit(cfg.ResultCount),
				service.WithCastErrorsFatal(cfg.CastErrorsFatal),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSearch(ctx, cmd.OutOrStdout(), scraper, strings.Join(args, " "), opts)
		},
	}
	cmd.Flags().IntVar(&opts.year, "year", 0, "release year to narrow the search")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.showHistory, "history", false, "print the search history after the results")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show request logs")
	return cmd
}

func runSearch(ctx context.Context, out io.Writer, scraper *service.MovieScraper, title string, opts *searchOptions) error {
	movies, err := scraper.SearchMovie(ctx, title, opts.year)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(movies); err != nil {
			return err
		}
	} else {
		printMovies(out, movies)
	}

	if opts.showHistory {
		for _, h := range scraper.GetSearchHistory() {
			fmt.Fprintf(out, "%s  %s  (%d results)\n", h.Timestamp.Format("2006-01-02 15:04:05"), h.Query, h.ResultsCount)
		}
	}
	return nil
}

func printMovies(out io.Writer, movies []model.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(out, "No movies found.")
		return
	}
	for _, m := range movies {
		fmt.Fprintf(out, "%s (%d)", m.Title, m.Year)
		if m.ID != "" {
			fmt.Fprintf(out, " [%s]", m.ID)
		}
		fmt.Fprintln(out)
		if m.Director != "" {
			fmt.Fprintf(out, "  Director: %s\n", m.Director)
		}
		if m.Rating != nil {
			fmt.Fprintf(out, "  Rating:   %.1f\n", *m.Rating)
		}
		if len(m.Genres) > 0 {
			fmt.Fprintf(out, "  Genres:   %s\n", strings.Join(m.Genres, ", "))
		}
		for _, c := range m.Cast {
			if c.Character != "" {
				fmt.Fprintf(out, "  - %s as %s\n", c.Actor, c.Character)
			} else {
				fmt.Fprintf(out, "  - %s\n", c.Actor)
			}
		}
	}
}
