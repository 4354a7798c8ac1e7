package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/p0llard/vericert/internal/badge"
	"github.com/p0llard/vericert/internal/collector"
	"github.com/p0llard/vericert/internal/config"
	"github.com/p0llard/vericert/internal/models"
	"github.com/p0llard/vericert/internal/readme"
	"github.com/p0llard/vericert/internal/remote"
	"github.com/p0llard/vericert/internal/report"
)

func main() {
	remoteRepo := flag.String("remote", "", "Scan a GitHub repository (owner/name) instead of a local directory")
	output := flag.String("output", "", "Badge output path (default admitted.svg)")
	offline := flag.Bool("offline", false, "Render the badge locally instead of fetching it")
	jsonReport := flag.Bool("json", false, "Also write a statistics.json report next to the badge")
	checkReadme := flag.Bool("check-readme", false, "Check that the README references the badge")
	configPath := flag.String("config", "statistics.yaml", "Optional configuration file")

	flag.Parse()

	dir := flag.Arg(0)

	if dir == "" && *remoteRepo == "" {
		fmt.Println("Usage: vericert [options] <directory>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if dir != "" && *remoteRepo != "" {
		fmt.Println("Error: Cannot scan both a directory and a remote repository.")
		os.Exit(1)
	}

	if err := run(dir, *remoteRepo, *output, *configPath, *offline, *jsonReport, *checkReadme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, remoteRepo, output, configPath string, offline, jsonReport, checkReadme bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}

	var counts models.KeywordCounts
	source := dir
	if remoteRepo != "" {
		source = remoteRepo
		counts, err = remote.Scan(context.Background(), remote.Options{
			Repo:     remoteRepo,
			Include:  cfg.Include,
			Patterns: cfg.CollectorPatterns(),
			Token:    os.Getenv("GITHUB_TOKEN"),
		})
		if err != nil {
			return err
		}
	} else {
		counts = collector.Collect(dir, cfg.CollectorPatterns())
	}

	colour := badge.PickColour(counts.Admitted, counts.Theorems)
	fmt.Printf("Found %d admitted, %d theorem and %d completion markers (%s).\n",
		counts.Admitted, counts.Theorems, counts.Qed, colour)

	style := badge.ParseStyle(cfg.Style)
	badgeURL := badge.URL(cfg.BadgeURL, cfg.Label, counts.Admitted, colour, style)

	var data []byte
	if offline {
		data = []byte(badge.RenderSVG(cfg.Label, strconv.Itoa(counts.Admitted), colour, style))
	} else {
		data, err = badge.Fetch(badgeURL)
		if err != nil {
			return err
		}
	}
	if err := badge.Save(cfg.Output, data); err != nil {
		return err
	}
	fmt.Printf("Wrote %s.\n", cfg.Output)

	if jsonReport {
		reportPath := filepath.Join(filepath.Dir(cfg.Output), "statistics.json")
		err := report.Write(reportPath, models.Report{
			Source:    source,
			Counts:    counts,
			Colour:    string(colour),
			BadgeURL:  badgeURL,
			Generated: time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s.\n", reportPath)
	}

	if checkReadme && dir != "" {
		found, refs, err := readme.CheckBadge(dir, cfg.Output, cfg.Label)
		if err != nil {
			return err
		}
		if found {
			fmt.Println("README.md references the badge.")
		} else {
			fmt.Printf("Warning: README.md does not reference %s (%d image reference(s) found).\n",
				filepath.Base(cfg.Output), len(refs))
		}
	}

	return nil
}
