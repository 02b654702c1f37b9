// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"net/http"

	"github.com/ChainSafe/resistance/internal/httpserver"
	"github.com/ChainSafe/resistance/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Server is a metrics http server exposing the prometheus
// collectors of a gatherer on /metrics.
type Server struct {
	*httpserver.Service
	server *httpserver.Server
}

// NewServer creates a metrics server listening on the address
// given and serving the default prometheus gatherer.
func NewServer(address string) (s *Server) {
	return NewServerWithGatherer(address, prometheus.DefaultGatherer)
}

// NewServerWithGatherer creates a metrics server serving the
// collectors of the gatherer given.
func NewServerWithGatherer(address string, gatherer prometheus.Gatherer) (s *Server) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	server := httpserver.New("metrics", address, mux, logger)
	return &Server{
		Service: httpserver.NewService("metrics", server),
		server:  server,
	}
}

// Start starts the metrics server and returns once it listens.
func (s *Server) Start() (err error) {
	if err := s.Service.Start(); err != nil {
		return err
	}
	logger.Infof("metrics available at http://%s/metrics", s.server.GetAddress())
	return nil
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}
