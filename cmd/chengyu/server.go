package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/npillmayer/chengyu"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

// ---- JSON response types ------------------------------------------------

type searchResponse struct {
	Query   string  `json:"query,omitempty"`
	Matches []match `json:"matches"`
	Count   int     `json:"count"`
}

type syllableJSON struct {
	Raw     string `json:"raw"`
	Initial string `json:"initial"`
	Final   string `json:"final"`
	Tone    int    `json:"tone"`
}

type decomposeResponse struct {
	Syllables []syllableJSON `json:"syllables"`
}

type statsResponse struct {
	Corpus  string `json:"corpus"`
	Records int    `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func newHandler(corpus *chengyu.Corpus, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", handleSearchQuery(corpus))
	mux.HandleFunc("POST /api/search", handleSearchForm(corpus))
	mux.HandleFunc("GET /api/decompose", handleDecompose)
	mux.HandleFunc("GET /api/stats", handleStats(corpus))
	if len(origins) == 0 {
		return cors.Default().Handler(mux)
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

func search(w http.ResponseWriter, corpus *chengyu.Corpus, form *chengyu.QueryForm, details bool) {
	q := form.Query()
	matches := toMatches(chengyu.SearchRecords(q, corpus), details)
	writeJSON(w, http.StatusOK, searchResponse{Query: q.String(), Matches: matches, Count: len(matches)})
}

// handleSearchQuery takes the query from URL parameters, e.g.
// /api/search?char1=一&tone4=4&exclude_tones=3
func handleSearchQuery(corpus *chengyu.Corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		details, _ := strconv.ParseBool(params.Get("details"))
		search(w, corpus, buildForm(params.Get, "_"), details)
	}
}

// handleSearchForm takes the query from a JSON QueryForm body.
func handleSearchForm(corpus *chengyu.Corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form chengyu.QueryForm
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a JSON query form")
			return
		}
		details, _ := strconv.ParseBool(r.URL.Query().Get("details"))
		search(w, corpus, &form, details)
	}
}

func handleDecompose(w http.ResponseWriter, r *http.Request) {
	pinyin := r.URL.Query().Get("pinyin")
	if pinyin == "" {
		writeError(w, http.StatusBadRequest, "missing 'pinyin' query parameter")
		return
	}
	resp := decomposeResponse{Syllables: []syllableJSON{}}
	for _, raw := range strings.Fields(pinyin) {
		s := chengyu.ParseSyllable(raw)
		resp.Syllables = append(resp.Syllables, syllableJSON{
			Raw:     raw,
			Initial: s.Initial,
			Final:   s.Final,
			Tone:    int(s.Tone),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleStats(corpus *chengyu.Corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statsResponse{Corpus: corpus.Identifier, Records: corpus.Len()})
	}
}

// ---- command ------------------------------------------------------------

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	corpus, err := loadCorpus(ctx, cfg)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           newHandler(corpus, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("serving %d idioms on %s", corpus.Len(), cfg.Listen)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
