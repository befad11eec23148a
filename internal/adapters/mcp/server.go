// Package mcp exposes the conversion service as a Model Context Protocol
// server, so agents can call the converters as tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/pkg/pascal"
)

// ConvertResult is the structured output of the conversion tools.
type ConvertResult struct {
	Input     string `json:"input" jsonschema_description:"The input as it was interpreted"`
	Output    string `json:"output" jsonschema_description:"The conversion result"`
	Direction string `json:"direction" jsonschema_description:"Which way the conversion went"`
}

// ClassifyResult is the structured output of the classify tool.
type ClassifyResult struct {
	Input       string `json:"input"`
	Direction   string `json:"direction,omitempty" jsonschema_description:"Direction a conversion of this input would take"`
	Convertible bool   `json:"convertible"`
}

// PascalResult is the structured output of the pascal_row tool.
type PascalResult struct {
	N       int   `json:"n"`
	Values  []int `json:"values"`
	Element *int  `json:"element,omitempty" jsonschema_description:"The requested element, when an index was given"`
}

// Server wraps the abacus Service and exposes it as an MCP Server.
type Server struct {
	service   *abacus.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(service *abacus.Service) *Server {
	s := &Server{
		service:   service,
		mcpServer: server.NewMCPServer("abacus-mcp", abacus.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	toRomanTool := mcp.NewTool("to_roman",
		mcp.WithDescription("Encode an Arabic integer (1..4000) as a canonical Roman numeral."),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The integer to encode")),
		mcp.WithOutputSchema[ConvertResult](),
	)
	s.mcpServer.AddTool(toRomanTool, mcp.NewStructuredToolHandler(s.handleToRoman))

	fromRomanTool := mcp.NewTool("from_roman",
		mcp.WithDescription("Decode a canonical Roman numeral into its integer value."),
		mcp.WithString("numeral", mcp.Required(), mcp.Description("The Roman numeral to decode")),
		mcp.WithOutputSchema[ConvertResult](),
	)
	s.mcpServer.AddTool(fromRomanTool, mcp.NewStructuredToolHandler(s.handleFromRoman))

	classifyTool := mcp.NewTool("classify",
		mcp.WithDescription("Report which conversion direction an input string would take."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Arbitrary input string")),
		mcp.WithOutputSchema[ClassifyResult](),
	)
	s.mcpServer.AddTool(classifyTool, mcp.NewStructuredToolHandler(s.handleClassify))

	pascalTool := mcp.NewTool("pascal_row",
		mcp.WithDescription("Compute the n-th row of Pascal's triangle, optionally a single element."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Row number (0-based)")),
		mcp.WithNumber("m", mcp.Description("Element index within the row (optional)")),
		mcp.WithOutputSchema[PascalResult](),
	)
	s.mcpServer.AddTool(pascalTool, mcp.NewStructuredToolHandler(s.handlePascalRow))
}

// Handler methods for structured tools

type toRomanArgs struct {
	Value int `mapstructure:"value"`
}

func (s *Server) handleToRoman(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResult, error) {
	var in toRomanArgs
	if err := decodeArgs(args, &in); err != nil {
		return ConvertResult{}, err
	}

	numeral, err := s.service.ToRoman(ctx, in.Value)
	if err != nil {
		return ConvertResult{}, fmt.Errorf("to_roman failed: %w", err)
	}

	return ConvertResult{
		Input:     fmt.Sprintf("%d", in.Value),
		Output:    numeral,
		Direction: string(abacus.DirectionToRoman),
	}, nil
}

type fromRomanArgs struct {
	Numeral string `mapstructure:"numeral"`
}

func (s *Server) handleFromRoman(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResult, error) {
	var in fromRomanArgs
	if err := decodeArgs(args, &in); err != nil {
		return ConvertResult{}, err
	}

	value, err := s.service.FromRoman(ctx, in.Numeral)
	if err != nil {
		return ConvertResult{}, fmt.Errorf("from_roman failed: %w", err)
	}

	return ConvertResult{
		Input:     in.Numeral,
		Output:    fmt.Sprintf("%d", value),
		Direction: string(abacus.DirectionFromRoman),
	}, nil
}

type classifyArgs struct {
	Input string `mapstructure:"input"`
}

func (s *Server) handleClassify(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClassifyResult, error) {
	var in classifyArgs
	if err := decodeArgs(args, &in); err != nil {
		return ClassifyResult{}, err
	}

	direction, ok := s.service.Classify(in.Input)
	return ClassifyResult{
		Input:       in.Input,
		Direction:   string(direction),
		Convertible: ok,
	}, nil
}

type pascalArgs struct {
	N int  `mapstructure:"n"`
	M *int `mapstructure:"m"`
}

func (s *Server) handlePascalRow(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PascalResult, error) {
	var in pascalArgs
	if err := decodeArgs(args, &in); err != nil {
		return PascalResult{}, err
	}

	row, err := pascal.NewRow(in.N)
	if err != nil {
		return PascalResult{}, fmt.Errorf("pascal_row failed: %w", err)
	}

	result := PascalResult{
		N:      in.N,
		Values: row.Values(),
	}

	if in.M != nil {
		element, err := row.Element(*in.M)
		if err != nil {
			return PascalResult{}, fmt.Errorf("pascal_row failed: %w", err)
		}
		result.Element = &element
	}

	return result, nil
}

// decodeArgs maps the loosely-typed tool arguments into a typed request.
// WeaklyTypedInput tolerates the JSON number/string ambiguity of MCP clients.
func decodeArgs(args map[string]interface{}, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder setup failed: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
