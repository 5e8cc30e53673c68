package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/awhite/deckbrief/internal/config"
	"github.com/awhite/deckbrief/internal/deck"
	"github.com/awhite/deckbrief/internal/parser"
	"github.com/awhite/deckbrief/internal/refs"
	"github.com/awhite/deckbrief/internal/report"
	"github.com/awhite/deckbrief/internal/summarize"
)

func main() {
	// Logs go to stderr so stdout stays clean for the report.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <deck.pptx|deck.pdf|deck.md|deck.txt>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, os.Args[1], log); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, path string, log *slog.Logger) error {
	p, err := parser.ForFile(path)
	if err != nil {
		return err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	log.Info("loading slide deck", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	d, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("parse deck: %w", err)
	}
	log.Info("extracted slide content", "slides", len(d.Slides))

	sel, err := parseSelection(cfg.Slides)
	if err != nil {
		return err
	}

	text, err := d.JoinedText(sel)
	if err != nil {
		return err
	}

	s, err := summarize.New(cfg)
	if err != nil {
		return err
	}
	lim := summarize.Limits{
		SplitThreshold: cfg.SplitThresholdWords,
		ChunkWords:     cfg.ChunkWords,
		BudgetRatio:    cfg.BudgetRatio,
	}

	var summary string
	var slideSummaries map[int]string
	if cfg.PerSlide {
		log.Info("summarizing each slide")
		slideSummaries, err = summarize.PerSlide(ctx, s, d, sel, lim)
	} else {
		log.Info("summarizing deck")
		summary, err = summarize.Document(ctx, s, text, lim)
	}
	if err != nil {
		return err
	}

	references := refs.Find(text, d.Slides)
	log.Info("scanned for citations", "found", len(references))

	if cfg.Display {
		fmt.Println("Summary")
		fmt.Println("-------")
		if cfg.PerSlide {
			if err := report.WriteSlideSummaries(os.Stdout, slideSummaries); err != nil {
				return err
			}
		} else {
			if err := report.WriteSummary(os.Stdout, summary); err != nil {
				return err
			}
		}
		fmt.Println()
		fmt.Println("References")
		fmt.Println("----------")
		if err := report.WriteReferences(os.Stdout, references); err != nil {
			return err
		}
	}

	if cfg.Save {
		if err := report.Save(cfg.SavePath, summary, references); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return nil
}

// parseSelection turns a comma-separated index list ("2,5") into a slide
// selection. Empty means the whole deck. Indices are 0-based.
func parseSelection(spec string) (deck.Selection, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return deck.All(), nil
	}

	var indices []int
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return deck.Selection{}, fmt.Errorf("invalid slide selection %q: %w", spec, err)
		}
		indices = append(indices, n)
	}
	return deck.Only(indices...), nil
}
