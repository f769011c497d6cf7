// wx/awc.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/util"
	"golang.org/x/sync/errgroup"
)

const awcWindTempAPI = "https://aviationweather.gov/api/data/windtemp"

// FD products are issued four times daily; don't refetch more often
// than this.
const fdTextMaxAge = 30 * time.Minute

// PickLevel returns which FD product covers the given cruise altitude.
func PickLevel(alt float32) string {
	return util.Select(alt > 24000, "high", "low")
}

// Fetcher retrieves FD winds aloft text from the Aviation Weather
// Center, caching results both in memory and on disk so that repeated
// planning runs within a forecast period don't hammer the API.
type Fetcher struct {
	client  *http.Client
	baseURL string
	fcst    string // forecast period: "06", "12", or "24"
	cache   *expirable.LRU[string, string]
	lg      *log.Logger
}

func NewFetcher(lg *log.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 12 * time.Second},
		baseURL: awcWindTempAPI,
		fcst:    "06",
		cache:   expirable.NewLRU[string, string](4, nil, fdTextMaxAge),
		lg:      lg,
	}
}

type cachedFDText struct {
	Text    string
	Fetched time.Time
}

// FetchText returns the raw FD text for the given product level ("low"
// or "high").
func (f *Fetcher) FetchText(ctx context.Context, level string) (string, error) {
	if text, ok := f.cache.Get(level); ok {
		return text, nil
	}

	cachePath := "windtemp-" + level + ".msgpack.zst"
	var cached cachedFDText
	if _, err := util.CacheRetrieveObject(cachePath, &cached); err == nil &&
		time.Since(cached.Fetched) < fdTextMaxAge {
		f.cache.Add(level, cached.Text)
		return cached.Text, nil
	}

	v := url.Values{"region": {"us"}, "level": {level}, "fcst": {f.fcst}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+v.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrFetchFailed, f.baseURL, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(b) < 200 {
		// The API occasionally returns an empty or truncated product.
		return "", fmt.Errorf("%w: implausibly short response (%d bytes)", ErrFetchFailed, len(b))
	}

	text := string(b)
	f.cache.Add(level, text)
	if err := util.CacheStoreObject(cachePath, cachedFDText{Text: text, Fetched: time.Now()}); err != nil {
		f.lg.Warnf("%s: unable to cache FD text: %v", cachePath, err)
	}

	return text, nil
}

// FetchGrid fetches and decodes the FD products for the given levels
// (deduplicated) concurrently and merges them into a single WindGrid.
// Where the low and high products overlap (FL240-FL390), the low
// product's layers win. Decoding problems are accumulated in the
// ErrorLogger; the error return is for fetch failures only.
func (f *Fetcher) FetchGrid(ctx context.Context, levels []string, e *util.ErrorLogger) (*WindGrid, error) {
	levels = slices.Compact(slices.Sorted(slices.Values(levels)))

	texts := make([]string, len(levels))
	g, ctx := errgroup.WithContext(ctx)
	for i, level := range levels {
		g.Go(func() error {
			text, err := f.FetchText(ctx, level)
			texts[i] = text
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// "high" sorts before "low", so later products take precedence in
	// the merge below, which is what we want for the overlapping levels.
	merged := make(map[string]*StationWinds)
	for i, text := range texts {
		e.Push(levels[i] + " level product")
		for _, st := range ParseFD(text, e) {
			m, ok := merged[st.ID]
			if !ok {
				merged[st.ID] = &st
				continue
			}
			for _, layer := range st.Layers {
				idx := slices.IndexFunc(m.Layers, func(l WindLayer) bool { return l.Altitude == layer.Altitude })
				if idx >= 0 {
					m.Layers[idx] = layer
				} else {
					m.Layers = append(m.Layers, layer)
				}
			}
		}
		e.Pop()
	}

	stations := util.MapSlice(slices.Collect(maps.Values(merged)),
		func(st *StationWinds) StationWinds { return *st })
	if len(stations) == 0 {
		return nil, ErrNoWindData
	}

	return MakeWindGrid(stations), nil
}
