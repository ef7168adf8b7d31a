// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/k3a/html2text"
	"github.com/rs/cors"

	"github.com/ianlewis/go-subedict"
	"github.com/ianlewis/go-subedict/edict"
	"github.com/ianlewis/go-subedict/internal/folding"
)

type annotateRequest struct {
	Text  string `json:"text"`
	Names bool   `json:"names"`
	HTML  bool   `json:"html"`
}

type annotateResponse struct {
	Lines []string `json:"lines"`
}

type lookupResponse struct {
	Key     string          `json:"key"`
	Records []*edict.Record `json:"records"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// newHandler returns the HTTP handler serving annotations from r.
func newHandler(r *subedict.Reloader, logger *slog.Logger, cfg *Config) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /api/annotate", handleAnnotate(r, cfg.Server.MaxBodyBytes))
	mux.Handle("GET /api/lookup", handleLookup(r))
	mux.Handle("GET /api/stats", handleStats(r))
	mux.Handle("GET /healthz", handleHealth())

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         cfg.CORS.MaxAge,
	})
	return logRequests(logger, c.Handler(mux))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleAnnotate(r *subedict.Reloader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body annotateRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBytes))
		if err := dec.Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}

		text := body.Text
		if body.HTML {
			text = html2text.HTML2Text(text)
		}
		text = folding.Text(text)

		var lines []string
		if body.Names {
			if !r.Current().HasNames() {
				writeError(w, http.StatusNotFound, "no name dictionary loaded")
				return
			}
			lines = r.AnnotateNames(text)
		} else {
			lines = r.Annotate(text)
		}
		if lines == nil {
			lines = []string{}
		}
		writeJSON(w, http.StatusOK, annotateResponse{Lines: lines})
	}
}

func handleLookup(r *subedict.Reloader) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		key := folding.Key(req.URL.Query().Get("key"))
		if key == "" {
			writeError(w, http.StatusBadRequest, "missing 'key' query parameter")
			return
		}
		names, _ := strconv.ParseBool(req.URL.Query().Get("names"))

		records := lookupRecords(r.Current(), key, names)
		status := http.StatusOK
		if len(records) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{Key: key, Records: records})
	}
}

func handleStats(r *subedict.Reloader) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, r.Current().Stats())
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	}
}

// logRequests returns a handler that logs each HTTP request with method,
// path, status code and duration.
func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		level := slog.LevelInfo
		if sw.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(r.Context(), level, "http.request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
