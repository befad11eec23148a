package abacus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/abacus/pkg/ports"
	"github.com/aretw0/abacus/pkg/roman"
)

// Version is the release version reported by the CLI and the MCP server.
const Version = "0.3.0"

// Direction identifies which way a conversion went.
type Direction string

const (
	// DirectionToRoman is an Arabic integer encoded as a numeral.
	DirectionToRoman Direction = "to_roman"
	// DirectionFromRoman is a numeral decoded to an integer.
	DirectionFromRoman Direction = "from_roman"
)

// ErrUnclassifiable is returned by Convert when the input is neither a Roman
// numeral nor a digit string.
var ErrUnclassifiable = errors.New("input is neither roman nor arabic")

// ConversionEvent describes one completed conversion attempt, successful or
// not. It is passed to Hooks.OnConvert.
type ConversionEvent struct {
	Direction Direction
	Input     string
	Output    string
	Err       error
	Cached    bool
	Duration  time.Duration
}

// Hooks are optional observability callbacks. Nil members are skipped.
type Hooks struct {
	OnConvert func(ctx context.Context, e *ConversionEvent)
}

// Service is the high-level entry point for the abacus library.
// It wraps the pure conversion packages with caching, history and hooks.
type Service struct {
	cache   ports.Cache
	history ports.History
	hooks   Hooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithCache injects a result cache (memory, Redis, ...).
func WithCache(c ports.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithHistory journals every successful conversion.
func WithHistory(h ports.History) Option {
	return func(s *Service) {
		s.history = h
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New initializes a Service. Without options it is a thin, stateless wrapper
// around the pure packages.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// ToRoman encodes n as a canonical Roman numeral, consulting the cache first.
func (s *Service) ToRoman(ctx context.Context, n int) (string, error) {
	start := time.Now()
	key := "arabic:" + strconv.Itoa(n)

	if cached, ok := s.cacheGet(ctx, key); ok {
		s.fireConvert(ctx, &ConversionEvent{
			Direction: DirectionToRoman,
			Input:     strconv.Itoa(n),
			Output:    cached,
			Cached:    true,
			Duration:  time.Since(start),
		})
		return cached, nil
	}

	out, err := roman.ToRoman(n)
	s.fireConvert(ctx, &ConversionEvent{
		Direction: DirectionToRoman,
		Input:     strconv.Itoa(n),
		Output:    out,
		Err:       err,
		Duration:  time.Since(start),
	})
	if err != nil {
		return "", err
	}

	s.cacheSet(ctx, key, out)
	s.record(ctx, strconv.Itoa(n), out, DirectionToRoman)
	return out, nil
}

// FromRoman decodes a Roman numeral, consulting the cache first.
func (s *Service) FromRoman(ctx context.Context, numeral string) (int, error) {
	start := time.Now()
	normalized := strings.ToUpper(numeral)
	key := "roman:" + normalized

	if cached, ok := s.cacheGet(ctx, key); ok {
		if n, err := strconv.Atoi(cached); err == nil {
			s.fireConvert(ctx, &ConversionEvent{
				Direction: DirectionFromRoman,
				Input:     normalized,
				Output:    cached,
				Cached:    true,
				Duration:  time.Since(start),
			})
			return n, nil
		}
		// A corrupt entry is dropped and recomputed.
		_ = s.cache.Delete(ctx, key)
	}

	n, err := roman.FromRoman(numeral)
	s.fireConvert(ctx, &ConversionEvent{
		Direction: DirectionFromRoman,
		Input:     normalized,
		Output:    strconv.Itoa(n),
		Err:       err,
		Duration:  time.Since(start),
	})
	if err != nil {
		return 0, err
	}

	s.cacheSet(ctx, key, strconv.Itoa(n))
	s.record(ctx, normalized, strconv.Itoa(n), DirectionFromRoman)
	return n, nil
}

// Classify reports which conversion direction input would take. Roman wins
// over Arabic when both match, mirroring the reference dispatch order.
func (s *Service) Classify(input string) (Direction, bool) {
	if roman.IsRoman(input) {
		return DirectionFromRoman, true
	}
	if roman.IsArabicDigits(input) {
		return DirectionToRoman, true
	}
	return "", false
}

// Convert classifies input and converts it in the matching direction.
// The returned string is the numeral (to_roman) or the decimal value
// (from_roman).
func (s *Service) Convert(ctx context.Context, input string) (string, Direction, error) {
	direction, ok := s.Classify(input)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnclassifiable, input)
	}

	switch direction {
	case DirectionFromRoman:
		n, err := s.FromRoman(ctx, input)
		if err != nil {
			return "", direction, err
		}
		return strconv.Itoa(n), direction, nil
	default:
		n, err := strconv.Atoi(input)
		if err != nil {
			return "", direction, fmt.Errorf("%w: %q", roman.ErrOutOfRange, input)
		}
		out, err := s.ToRoman(ctx, n)
		return out, direction, err
	}
}

func (s *Service) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	v, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

func (s *Service) cacheSet(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		// Caching is best effort; the conversion already succeeded.
		s.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

func (s *Service) record(ctx context.Context, input, output string, direction Direction) {
	if s.history == nil {
		return
	}
	entry := ports.HistoryEntry{
		Input:     input,
		Output:    output,
		Direction: string(direction),
		At:        time.Now().UTC(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn("history append failed", "input", input, "error", err)
	}
}

func (s *Service) fireConvert(ctx context.Context, e *ConversionEvent) {
	if s.hooks.OnConvert != nil {
		s.hooks.OnConvert(ctx, e)
	}
}
