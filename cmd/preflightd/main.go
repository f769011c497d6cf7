// cmd/preflightd/main.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// preflightd serves the planning engine over HTTP: aircraft profiles,
// fuel plans, and winds aloft fetched on demand from the AWC.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/mmp/preflight/aviation"
	"github.com/mmp/preflight/log"
	"github.com/mmp/preflight/server"
	"github.com/mmp/preflight/wx"
)

var (
	addr     = flag.String("addr", ":6502", "Address to listen on")
	logLevel = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
	logDir   = flag.String("logdir", "", "Directory for the server log")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	aviation.InitDB()

	h := server.New(server.FetcherSource(wx.NewFetcher(lg)), lg)

	lg.Infof("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, h); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *addr, err)
		os.Exit(1)
	}
}
