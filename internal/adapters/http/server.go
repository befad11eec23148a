// Package http exposes the conversion service as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/pkg/figures"
	"github.com/aretw0/abacus/pkg/pascal"
	"github.com/aretw0/abacus/pkg/roman"
)

// Converter defines the interface the HTTP server needs from the service.
type Converter interface {
	ToRoman(ctx context.Context, n int) (string, error)
	FromRoman(ctx context.Context, numeral string) (int, error)
	Convert(ctx context.Context, input string) (string, abacus.Direction, error)
}

// Server handles the JSON API requests.
type Server struct {
	converter Converter
}

// NewHandler creates the API handler. A non-nil metrics handler is mounted at
// /metrics.
func NewHandler(converter Converter, metrics http.Handler) http.Handler {
	s := &Server{converter: converter}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/roman/{numeral}", s.fromRoman)
		r.Get("/arabic/{value}", s.toRoman)
		r.Get("/convert", s.convert)
		r.Get("/pascal/{n}", s.pascalRow)
		r.Post("/figures", s.figures)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	return r
}

// ConversionResponse is the payload for the conversion endpoints.
type ConversionResponse struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Direction string `json:"direction,omitempty"`
}

// PascalResponse is the payload for the pascal endpoint.
type PascalResponse struct {
	N       int   `json:"n"`
	Values  []int `json:"values,omitempty"`
	M       *int  `json:"m,omitempty"`
	Element *int  `json:"element,omitempty"`
}

// FiguresRequest is the arg-stream form of figure descriptions, the same
// syntax the CLI takes.
type FiguresRequest struct {
	Args []string `json:"args"`
}

// FigureResponse describes one computed figure.
type FigureResponse struct {
	Name      string  `json:"name"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fromRoman(w http.ResponseWriter, r *http.Request) {
	numeral := chi.URLParam(r, "numeral")

	value, err := s.converter.FromRoman(r.Context(), numeral)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ConversionResponse{
		Input:  numeral,
		Output: strconv.Itoa(value),
	})
}

func (s *Server) toRoman(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "value")

	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "not an integer: " + raw})
		return
	}

	numeral, err := s.converter.ToRoman(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ConversionResponse{
		Input:  raw,
		Output: numeral,
	})
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")

	output, direction, err := s.converter.Convert(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ConversionResponse{
		Input:     input,
		Output:    output,
		Direction: string(direction),
	})
}

func (s *Server) pascalRow(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "not an integer row number"})
		return
	}

	row, err := pascal.NewRow(n)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := PascalResponse{N: n}

	if raw := r.URL.Query().Get("m"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "not an integer index: " + raw})
			return
		}
		element, err := row.Element(m)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.M = &m
		resp.Element = &element
	} else {
		resp.Values = row.Values()
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) figures(w http.ResponseWriter, r *http.Request) {
	var req FiguresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	figs, err := figures.Parse(req.Args)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]FigureResponse, 0, len(figs))
	for _, f := range figs {
		resp = append(resp, FigureResponse{
			Name:      f.Name(),
			Area:      f.Area(),
			Perimeter: f.Perimeter(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// badInput lists the error kinds that map to 400: they all describe caller
// input problems, never internal failures.
var badInput = []error{
	roman.ErrOutOfRange,
	roman.ErrEmptyInput,
	roman.ErrInvalidNumeral,
	abacus.ErrUnclassifiable,
	pascal.ErrNegativeRow,
	pascal.ErrIndexOutOfRange,
	figures.ErrUnknownFigure,
	figures.ErrMissingParameter,
	figures.ErrUnrecognizedQuadrilateral,
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	for _, kind := range badInput {
		if errors.Is(err, kind) {
			status = http.StatusBadRequest
			break
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
