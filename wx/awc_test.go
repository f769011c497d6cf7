// wx/awc_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mmp/preflight/util"
)

func TestFetcher(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Query().Get("level") != "low" {
			http.Error(w, "unexpected level", http.StatusBadRequest)
			return
		}
		// Pad the product so it clears the truncation check.
		w.Write([]byte(fdLowSample + strings.Repeat("\n", 200)))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	f.baseURL = srv.URL

	text, err := f.FetchText(context.Background(), "low")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "ABI") {
		t.Errorf("fetched text is missing the station rows")
	}

	// A second fetch within the forecast period is served from cache.
	if _, err := f.FetchText(context.Background(), "low"); err != nil {
		t.Fatal(err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("expected one upstream request, saw %d", n)
	}

	var e util.ErrorLogger
	grid, err := f.FetchGrid(context.Background(), []string{"low", "low"}, &e)
	if err != nil {
		t.Fatal(err)
	}
	if e.HaveErrors() {
		t.Fatalf("unexpected decode errors: %s", e.String())
	}
	if !grid.HaveStation("ABI") || !grid.HaveStation("DEN") {
		t.Errorf("grid is missing expected stations")
	}
}
