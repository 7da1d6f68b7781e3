// Package api exposes the translation service over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"wordswap/internal/domain"
	"wordswap/internal/service"

	"go.uber.org/zap"
)

// maxBodyBytes bounds the request body of POST /translate
const maxBodyBytes = 64 << 10

// Server holds the HTTP handlers
type Server struct {
	translationService *service.TranslationService
	allowedOrigin      string
	logger             *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(translationService *service.TranslationService, allowedOrigin string, logger *zap.Logger) *Server {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &Server{
		translationService: translationService,
		allowedOrigin:      allowedOrigin,
		logger:             logger,
	}
}

// Handler returns the routed handler wrapped in the CORS middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", s.handleTranslate)
	mux.HandleFunc("/languages", s.handleLanguages)
	mux.HandleFunc("/health", s.handleHealth)
	return s.corsMiddleware(mux)
}

// corsMiddleware adds CORS headers and answers preflight requests
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, domain.TranslateResponse{Error: "method not allowed"})
		return
	}

	var req domain.TranslateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.TranslateResponse{Error: "invalid JSON body"})
		return
	}

	translated, err := s.translationService.Translate(req.Sentence, domain.LanguagePair(req.LangPair))
	if err != nil {
		if service.IsRejection(err) {
			writeJSON(w, http.StatusBadRequest, domain.TranslateResponse{Error: err.Error()})
			return
		}
		s.logger.Error("Failed to translate", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, domain.TranslateResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, domain.TranslateResponse{TranslatedText: translated})
}

type languagesResponse struct {
	Default domain.LanguagePair   `json:"default"`
	Pairs   []domain.LanguagePair `json:"pairs"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, domain.TranslateResponse{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, languagesResponse{
		Default: s.translationService.DefaultPair(),
		Pairs:   s.translationService.Pairs(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
