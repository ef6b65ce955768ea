package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes reported by edits and the engine.
const (
	CodeUnknownEdit         = "UNKNOWN_EDIT"
	CodeInvalidProperties   = "INVALID_PROPERTIES"
	CodeUnknownJurisdiction = "UNKNOWN_JURISDICTION"
	CodeUnknownLicense      = "UNKNOWN_LICENSE"
	CodeRuleNotFound        = "RULE_NOT_FOUND"
	CodeValueClamped        = "VALUE_CLAMPED"
	CodeInvalidDate         = "INVALID_DATE"
	CodeTooManyVariants     = "TOO_MANY_VARIANTS"
)

// IsCritical reports whether any message in msgs is CRITICAL.
func IsCritical(msgs []CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
