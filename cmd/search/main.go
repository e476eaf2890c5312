package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"estate-search/internal/config"
	"estate-search/internal/observability"
	"estate-search/internal/render"
	"estate-search/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	query := flag.String("q", "", "run a single query and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Logs go to stderr so they do not interleave with results
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.Logging.Level).Output(os.Stderr)

	searchService, err := service.NewSearchServiceFromConfig(context.Background(), cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load listings")
	}

	renderer := render.NewTextRenderer(cfg.Listings.Currency)

	if *query != "" {
		if err := runQuery(searchService, renderer, os.Stdout, *query); err != nil {
			log.Fatal().Err(err).Msg("render failed")
		}
		return
	}

	if err := repl(searchService, renderer, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
}

// repl answers one query per input line until EOF or "exit"
func repl(s *service.SearchService, r *render.TextRenderer, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "🏠 AI-Powered Real Estate Search")
	fmt.Fprint(out, "Ask: e.g., '2 BHK flat in Pune under 60 lakhs'\n> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "exit", "quit":
			return nil
		default:
			if err := runQuery(s, r, out, line); err != nil {
				return err
			}
		}
		fmt.Fprint(out, "\n> ")
	}
	return scanner.Err()
}

func runQuery(s *service.SearchService, r *render.TextRenderer, out io.Writer, query string) error {
	fmt.Fprintln(out, "Analyzing your query...")
	return r.Render(out, s.Search(context.Background(), query))
}
