// Command server exposes a trained morphan model as a JSON REST API.
//
// Endpoints:
//
//	GET /api/analyze?word=<word>[&limit=<n>]
//	GET /api/best?word=<word>
//	GET /api/stats
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/linksyr/morphan"
	"github.com/linksyr/morphan/config"
)

// ---- JSON response types ------------------------------------------------

type analysisJSON struct {
	Prefix string  `json:"prefix"`
	Stem   string  `json:"stem"`
	Suffix string  `json:"suffix"`
	Lexeme string  `json:"lexeme"`
	Tag    string  `json:"tag"`
	POS    string  `json:"pos"`
	Score  float64 `json:"score"`
}

type analyzeResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

type bestResponse struct {
	Word     string        `json:"word"`
	Analysis *analysisJSON `json:"analysis"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toAnalysisJSON(a morphan.Analysis) analysisJSON {
	return analysisJSON{
		Prefix: a.Prefix,
		Stem:   a.Stem,
		Suffix: a.Suffix,
		Lexeme: a.Lexeme,
		Tag:    a.Tag.String(),
		POS:    a.Tag.Category.String(),
		Score:  a.Score,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(m *morphan.Model) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		limit := 0
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "'limit' must be a non-negative integer")
				return
			}
			limit = n
		}

		analyses, err := m.Analyze(word)
		if err != nil {
			log.Printf("analyze %q: %v", word, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if limit > 0 && len(analyses) > limit {
			analyses = analyses[:limit]
		}
		out := make([]analysisJSON, 0, len(analyses))
		for _, a := range analyses {
			out = append(out, toAnalysisJSON(a))
		}
		status := http.StatusOK
		if len(out) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, analyzeResponse{Word: word, Analyses: out})
	}
}

func handleBest(m *morphan.Model) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		a, ok, err := m.Best(word)
		if err != nil {
			log.Printf("analyze %q: %v", word, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, bestResponse{Word: word})
			return
		}
		aj := toAnalysisJSON(a)
		writeJSON(w, http.StatusOK, bestResponse{Word: word, Analysis: &aj})
	}
}

func handleStats(m *morphan.Model) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		stats, err := m.Stats()
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func newHandler(m *morphan.Model, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(m))
	mux.HandleFunc("/api/best", handleBest(m))
	mux.HandleFunc("/api/stats", handleStats(m))

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func loadModel(cfg *config.Config, modelFile string) (*morphan.Model, error) {
	if modelFile != "" {
		log.Printf("loading model from %s …", modelFile)
		return morphan.LoadFile(modelFile, cfg.ModelOptions()...)
	}
	log.Printf("loading corpus from %s …", cfg.CorpusPath())
	words, err := cfg.LoadCorpus()
	if err != nil {
		return nil, err
	}
	m := morphan.New(cfg.Affixes, cfg.ModelOptions()...)
	m.Train(words)
	log.Printf("trained on %d words", len(words))
	return m, nil
}

func main() {
	cfgPath := flag.String("config", "", "path to morphan.yaml (default $"+config.EnvPath+")")
	modelFile := flag.String("model", "", "saved model file; trains from the configured corpus when empty")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	m, err := loadModel(cfg, *modelFile)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}
	log.Println("model ready")

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, newHandler(m, cfg.Server.AllowedOrigins)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
