package types

import "fabric-price/internal/errors"

// Model selects the pricing formula
type Model string

const (
	// ModelTable prices from the per-kg catalog
	ModelTable Model = "table"

	// ModelRegression uses the fitted formula with a color coefficient
	ModelRegression Model = "regression"

	// ModelRegressionPlain uses the fitted formula with the fixed coefficient
	ModelRegressionPlain Model = "regression-plain"
)

// Models lists every model
func Models() []Model {
	return []Model{ModelTable, ModelRegression, ModelRegressionPlain}
}

// String returns the string representation
func (m Model) String() string {
	return string(m)
}

// ParseModel parses a model name; "plain" is accepted for regression-plain.
func ParseModel(s string) (Model, error) {
	switch s {
	case "table", "lookup":
		return ModelTable, nil
	case "regression", "color":
		return ModelRegression, nil
	case "regression-plain", "plain":
		return ModelRegressionPlain, nil
	}
	return "", errors.Inputf("unknown pricing model %q", s)
}
