// Package api - HTTP handlers for fabric price estimation
// Handlers decode, delegate to the calculator and serialize. They contain
// no pricing logic.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fabric-price/adapters/quote/hcl"
	"fabric-price/core/determinism"
	"fabric-price/core/output"
	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Handler handles estimation requests
type Handler struct {
	calc    *pricing.Calculator
	version string
	metrics *Metrics
	logger  *zap.Logger
}

// NewHandler creates a handler over calc. metrics may be nil.
func NewHandler(calc *pricing.Calculator, version string, metrics *Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		calc:    calc,
		version: version,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleEstimate handles POST /api/estimate
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body EstimateRequest
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	req, err := body.toRequest()
	if err != nil {
		h.metrics.observeEstimate(modelLabel(req.Model), err)
		h.writeError(w, r, err)
		return
	}

	result, err := h.calc.Estimate(req)
	h.metrics.observeEstimate(modelLabel(h.calc.ModelFor(req.Model)), err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, &EstimateResponse{
		RequestID: RequestID(r.Context()),
		Timestamp: time.Now().UTC(),
		Result:    result,
		Formatted: formatResult(&result),
		Metadata: &ResponseMetadata{
			InputHash:  computeInputHash(&body),
			Version:    h.version,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// HandleQuote handles POST /api/quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body QuoteRequest
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := body.validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	lines, err := body.lines()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	q := quote.Build(h.calc, lines)
	for i := range q.Lines {
		h.metrics.observeQuoteLine(q.Lines[i].Err())
	}
	if q.Failed > 0 {
		h.logger.Debug("quote has failed lines",
			zap.String("request_id", RequestID(r.Context())),
			zap.Int("failed", q.Failed),
			zap.Int("lines", len(q.Lines)))
	}

	writeJSON(w, &QuoteResponse{
		RequestID: RequestID(r.Context()),
		Timestamp: time.Now().UTC(),
		Quote:     q,
		Metadata: &ResponseMetadata{
			InputHash:  computeInputHash(&body),
			Version:    h.version,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// lines converts the request into quote lines
func (r *QuoteRequest) lines() ([]quote.Line, error) {
	if r.HCL != "" {
		// hclparse caches files by name, so every request gets its own parser
		return hcl.NewScanner().Parse([]byte(r.HCL), "request.hcl")
	}

	lines := make([]quote.Line, 0, len(r.Lines))
	for i := range r.Lines {
		l := &r.Lines[i]
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("line-%d", i+1)
		}
		req, err := l.toRequest()
		if err != nil {
			return nil, errors.Wrapf(errors.TypeOf(err), err, "line %s", name)
		}
		lines = append(lines, quote.Line{Name: name, Request: req, Meters: l.Meters})
	}
	return lines, nil
}

// HandleCompositions handles GET /api/compositions
func (h *Handler) HandleCompositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, &CompositionsResponse{
		Compositions:    h.calc.Table().Compositions(),
		ProcessingTypes: types.ProcessingTypes(),
		Colors:          types.Colors(),
		Models:          types.Models(),
	}, http.StatusOK)
}

// HandleHealth handles GET /api/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// HandleVersion handles GET /api/version
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     h.version,
		"engine":      "fabric-price",
		"api_version": "v1",
	}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	fields := []zap.Field{
		zap.String("request_id", RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Debug("request rejected", fields...)
	}

	writeJSON(w, &ErrorResponse{Error: ErrorDetail{
		Code:    string(errors.TypeOf(err)),
		Message: err.Error(),
	}}, status)
}

// statusFor maps an error type to an HTTP status
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeNotFound:
		return http.StatusNotFound
	case errors.TypeInput, errors.TypeParsing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.TypeInput, "invalid JSON body", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func formatResult(r *types.PriceResult) FormattedPrice {
	return FormattedPrice{
		PricePerMeter: output.FormatAmount(r.PricePerMeter, r.Currency),
		PricePerKg:    output.FormatPerKg(r.PricePerKg, r.Currency),
		MeterRange: [2]string{
			output.FormatAmount(r.MeterBand.Lower, r.Currency),
			output.FormatAmount(r.MeterBand.Upper, r.Currency),
		},
		KgRange: [2]string{
			output.FormatPerKg(r.KgBand.Lower, r.Currency),
			output.FormatPerKg(r.KgBand.Upper, r.Currency),
		},
	}
}

func modelLabel(m types.Model) string {
	if m == "" {
		return "unknown"
	}
	return string(m)
}

func computeInputHash(v interface{}) string {
	hash, _ := determinism.HashJSON(v)
	return hash.Hex()
}
