package watcher

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mindsgn-studio/page-watcher/diff"
	"github.com/mindsgn-studio/page-watcher/fetch"
	"github.com/mindsgn-studio/page-watcher/internal/model"
	"github.com/mindsgn-studio/page-watcher/scrape"
	"github.com/mindsgn-studio/page-watcher/state"
)

// Checker runs one-shot page checks: fetch, extract, diff against the stored
// snapshot, optionally persist.
type Checker struct {
	fetcher *fetch.Client
	store   state.Store
	logger  *log.Logger
}

func NewChecker(fetcher *fetch.Client, store state.Store, logger *log.Logger) *Checker {
	return &Checker{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// CheckPage checks a single URL. When save is true the new snapshot is
// persisted even if nothing changed, which keeps checked_at fresh and guards
// against heuristic drift going unnoticed.
func (c *Checker) CheckPage(ctx context.Context, url string, save bool) (model.ChangeReport, error) {
	body, err := c.fetcher.Fetch(url)
	if err != nil {
		return model.ChangeReport{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return model.ChangeReport{}, fmt.Errorf("parse %s: %w", url, err)
	}

	snap := model.Snapshot{
		Price:        scrape.ExtractPrice(doc),
		Availability: scrape.ExtractAvailability(doc),
		Details:      scrape.ExtractDetails(doc),
		CheckedAt:    time.Now().UTC(),
	}

	prev, err := c.store.Get(ctx, url)
	if err != nil {
		return model.ChangeReport{}, err
	}

	report := diff.Summarize(prev, &snap)

	if save {
		if err := c.store.Put(ctx, url, snap); err != nil {
			return model.ChangeReport{}, err
		}
	}

	return report, nil
}

// CheckAll processes URLs strictly sequentially. A failed URL is recorded in
// the result set and does not stop the remaining URLs from being checked.
// onResult, when non-nil, is invoked after each URL completes.
func (c *Checker) CheckAll(ctx context.Context, urls []string, save bool, onResult func(url string, res model.Result)) map[string]model.Result {
	results := make(map[string]model.Result, len(urls))
	for _, u := range urls {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		c.logger.Printf("checking %s", u)
		report, err := c.CheckPage(ctx, u, save)

		var res model.Result
		if err != nil {
			c.logger.Printf("error checking %s: %v", u, err)
			res = model.Result{Error: err.Error()}
		} else {
			res = model.Result{Report: &report}
		}
		results[u] = res

		if onResult != nil {
			onResult(u, res)
		}
	}
	return results
}
