package model

type CompareResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Base                ScenarioResult       `json:"base"`
	Variants            []VariantResult      `json:"variants"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type VariantResult struct {
	Name                      string          `json:"name"`
	Edits                     []ProcessedEdit `json:"edits"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	// Result and Comparison are nil when an edit failed.
	Result     *ScenarioResult `json:"result"`
	Comparison *Comparison     `json:"comparison"`
}

type ProcessedEdit struct {
	Edit                      Edit  `json:"edit"`
	CalculationMessageIndexes []int `json:"calculation_message_indexes,omitempty"`
}

// Comparison summarizes a variant against the base scenario.
type Comparison struct {
	Name         string                   `json:"name"`
	AgeAtLicense float64                  `json:"age_at_license"`
	AgeDiff      float64                  `json:"age_diff"`
	MonthsDiff   int                      `json:"months_diff"`
	Faster       bool                     `json:"faster"`
	Slower       bool                     `json:"slower"`
	InputPatch   []map[string]interface{} `json:"input_patch"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
