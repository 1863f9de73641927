// Package api - API types for fabric price estimation
// These types define the contract for the /api endpoints.
// The API is stateless and deterministic for a given catalog.
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"fabric-price/core/pricing"
	"fabric-price/core/quote"
	"fabric-price/core/types"
	"fabric-price/internal/errors"
)

// EstimateRequest is the input to POST /api/estimate
type EstimateRequest struct {
	// Model is one of table, regression, regression-plain (or an alias).
	// Empty uses the server default.
	Model string `json:"model,omitempty"`

	GSM   int `json:"gsm"`
	Width int `json:"width"`

	// Table model inputs
	Composition string `json:"composition,omitempty"`
	Processing  string `json:"processing,omitempty"`

	// Regression model input
	Color string `json:"color,omitempty"`
}

// toRequest parses the enum fields into a pricing request
func (r *EstimateRequest) toRequest() (pricing.Request, error) {
	req := pricing.Request{
		GSM:         r.GSM,
		WidthCm:     r.Width,
		Composition: types.Composition(r.Composition),
	}

	if r.Model != "" {
		m, err := types.ParseModel(r.Model)
		if err != nil {
			return req, err
		}
		req.Model = m
	}
	if r.Processing != "" {
		p, err := types.ParseProcessingType(r.Processing)
		if err != nil {
			return req, err
		}
		req.Processing = p
	}
	if r.Color != "" {
		c, err := types.ParseColor(r.Color)
		if err != nil {
			return req, err
		}
		req.Color = c
	}
	return req, nil
}

// QuoteRequest is the input to POST /api/quote. Either Lines or HCL is set.
type QuoteRequest struct {
	Lines []QuoteLine `json:"lines,omitempty"`

	// HCL is the content of a quote file
	HCL string `json:"hcl,omitempty"`
}

// QuoteLine is one fabric of a quote request
type QuoteLine struct {
	Name string `json:"name"`
	EstimateRequest
	Meters decimal.Decimal `json:"meters"`
}

func (r *QuoteRequest) validate() error {
	if len(r.Lines) == 0 && r.HCL == "" {
		return errors.Input("either lines or hcl is required")
	}
	if len(r.Lines) > 0 && r.HCL != "" {
		return errors.Input("lines and hcl are mutually exclusive")
	}
	return nil
}

// EstimateResponse is the output of POST /api/estimate
type EstimateResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	Result    types.PriceResult `json:"result"`
	Formatted FormattedPrice    `json:"formatted"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// FormattedPrice carries display strings for a result
type FormattedPrice struct {
	PricePerMeter string    `json:"price_per_meter"`
	PricePerKg    string    `json:"price_per_kg"`
	MeterRange    [2]string `json:"price_per_meter_range"`
	KgRange       [2]string `json:"price_per_kg_range"`
}

// QuoteResponse is the output of POST /api/quote
type QuoteResponse struct {
	RequestID string       `json:"request_id"`
	Timestamp time.Time    `json:"timestamp"`
	Quote     *quote.Quote `json:"quote"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata describes how a response was produced
type ResponseMetadata struct {
	InputHash  string `json:"input_hash"`
	Version    string `json:"version"`
	DurationMs int64  `json:"duration_ms"`
}

// CompositionsResponse is the output of GET /api/compositions
type CompositionsResponse struct {
	Compositions    []types.Composition    `json:"compositions"`
	ProcessingTypes []types.ProcessingType `json:"processing_types"`
	Colors          []types.Color          `json:"colors"`
	Models          []types.Model          `json:"models"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
