// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/ChainSafe/resistance/internal/httpserver"
)

const defaultAddress = "localhost:6060"

// Settings are the settings for the pprof service.
type Settings struct {
	// ListeningAddress defaults to localhost:6060.
	ListeningAddress string
	// BlockProfileRate is given to runtime.SetBlockProfileRate,
	// 0 disabling block profiling.
	BlockProfileRate int
	// MutexProfileRate is given to runtime.SetMutexProfileFraction,
	// 0 disabling mutex profiling.
	MutexProfileRate int
}

// Service serves the runtime profiles of the process over HTTP.
type Service struct {
	*httpserver.Service
	settings Settings
	server   *httpserver.Server
}

// NewService creates a pprof service.
func NewService(settings Settings, logger httpserver.Logger) *Service {
	if settings.ListeningAddress == "" {
		settings.ListeningAddress = defaultAddress
	}
	server := httpserver.New("pprof", settings.ListeningAddress, newHandler(), logger)
	return &Service{
		Service:  httpserver.NewService("pprof", server),
		settings: settings,
		server:   server,
	}
}

// Start sets the profiling rates and starts the pprof server.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)
	return s.Service.Start()
}

// Address returns the address the server listens on.
func (s *Service) Address() string {
	return s.server.GetAddress()
}

func newHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, profile := range []string{"block", "goroutine", "heap", "mutex"} {
		mux.Handle("/debug/pprof/"+profile, pprof.Handler(profile))
	}
	return mux
}
