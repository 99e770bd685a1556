// Package server exposes the analyzer and enhancer over a
// newline-delimited JSON request/response loop, stdio in production.
// Each request is handled in isolation: validation failures surface as
// invalid_input, unexpected panics as internal, and no request shares
// mutable state with another.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/proseamp/proseamp/internal/analyzer"
	"github.com/proseamp/proseamp/internal/config"
	"github.com/proseamp/proseamp/internal/enhancer"
)

const maxLineBytes = 4 << 20

type Server struct {
	cfg      *config.Config
	analyzer *analyzer.Analyzer
	enhancer *enhancer.Enhancer
	limiter  *rate.Limiter
	validate *validator.Validate
	logger   *slog.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger configures a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithEnhancer substitutes the enhancer, used by tests to inject a
// deterministic random source.
func WithEnhancer(e *enhancer.Enhancer) Option {
	return func(s *Server) {
		s.enhancer = e
	}
}

func New(cfg *config.Config, options ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		analyzer: analyzer.New(),
		enhancer: enhancer.New(),
		limiter: rate.NewLimiter(
			rate.Limit(float64(cfg.Server.RateLimit.RequestsPerMinute)/60.0),
			cfg.Server.RateLimit.BurstSize,
		),
		validate: validator.New(),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Serve reads requests line by line until EOF or context cancellation,
// writing one JSON response per request.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		resp := s.Handle(ctx, line)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}
	return nil
}

// Handle processes one raw request and always returns a response; it
// never panics outward.
func (s *Server) Handle(ctx context.Context, raw []byte) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(uuid.NewString(), invalidInput("malformed request: %v", err))
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	result, err := s.dispatch(req)
	if err != nil {
		s.logger.Warn("request failed",
			"request_id", req.ID,
			"method", req.Method,
			"code", err.Code,
			"error", err.Cause,
		)
		return errorResponse(req.ID, err)
	}

	s.logger.Info("request handled",
		"request_id", req.ID,
		"method", req.Method,
		"result_bytes", len(result),
	)
	return Response{ID: req.ID, Result: result}
}

func (s *Server) dispatch(req Request) (result string, reqErr *RequestError) {
	// An unexpected panic in the pipeline is an internal error for this
	// request only; the next request starts clean.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			reqErr = internalError(fmt.Errorf("panic: %v", r))
		}
	}()

	switch req.Method {
	case MethodAnalyzeText:
		return s.handleAnalyze(req.Params)
	case MethodEnhanceText:
		return s.handleEnhance(req.Params, false)
	case MethodCustomEnhanceText:
		return s.handleEnhance(req.Params, true)
	default:
		return "", invalidInput("unknown method %q", req.Method)
	}
}

func (s *Server) handleAnalyze(raw json.RawMessage) (string, *RequestError) {
	var params analyzeParams
	if err := decodeParams(raw, &params); err != nil {
		return "", err
	}
	if params.Text == nil {
		return "", invalidInput("text is required and must be a string")
	}
	if len(*params.Text) > s.cfg.Enhance.MaxInputBytes {
		return "", invalidInput("text exceeds maximum size of %d bytes", s.cfg.Enhance.MaxInputBytes)
	}
	return s.analyzer.Analyze(*params.Text).Render(), nil
}

func (s *Server) handleEnhance(raw json.RawMessage, custom bool) (string, *RequestError) {
	var params enhanceParams
	if err := decodeParams(raw, &params); err != nil {
		return "", err
	}
	if params.Text == nil {
		return "", invalidInput("text is required and must be a string")
	}
	if len(*params.Text) > s.cfg.Enhance.MaxInputBytes {
		return "", invalidInput("text exceeds maximum size of %d bytes", s.cfg.Enhance.MaxInputBytes)
	}
	if err := s.validate.Struct(params); err != nil {
		return "", invalidInput("expansionTarget must be between 100 and 500: %v", err)
	}

	target := s.cfg.Enhance.TargetPercent
	if custom {
		target = s.cfg.Enhance.CustomTargetPercent
	}
	if params.ExpansionTarget != nil {
		target = *params.ExpansionTarget
	}

	if !custom {
		return s.enhancer.Enhance(*params.Text, target), nil
	}

	defaults := s.cfg.Enhance.Techniques
	opts := enhancer.Options{
		GoldenShadow:          boolOrDefault(params.EnableGoldenShadow, defaults.GoldenShadow),
		Environmental:         boolOrDefault(params.EnableEnvironmental, defaults.Environmental),
		ActionScene:           boolOrDefault(params.EnableActionScene, defaults.ActionScene),
		ProseSmoothing:        boolOrDefault(params.EnableProseSmoother, defaults.ProseSmoothing),
		RepetitionElimination: boolOrDefault(params.EnableRepetitionElimination, defaults.RepetitionElimination),
	}
	return s.enhancer.CustomEnhance(*params.Text, target, opts), nil
}

func decodeParams(raw json.RawMessage, v any) *RequestError {
	if len(raw) == 0 {
		return invalidInput("params are required")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return invalidInput("malformed params: %v", err)
	}
	return nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func errorResponse(id string, err *RequestError) Response {
	return Response{
		ID: id,
		Error: &ErrorBody{
			Code:    err.Code,
			Message: err.Cause.Error(),
		},
	}
}
