package edits

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"career-pivot/internal/model"
)

// Ranges the planning form accepts.
const (
	maxBreakMonths   = 24
	minProgramMonths = 18
	maxProgramMonths = 36
	minHoursPerWeek  = 15
	maxHoursPerWeek  = 40
)

func decodeProps(edit *model.Edit, v interface{}) []model.CalculationMessage {
	if len(edit.Properties) == 0 {
		return invalidProps(edit.Name + " requires properties")
	}
	if err := json.Unmarshal(edit.Properties, v); err != nil {
		return invalidProps(fmt.Sprintf("Invalid properties for %s: %v", edit.Name, err))
	}
	return nil
}

func invalidProps(msg string) []model.CalculationMessage {
	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidProperties,
		Message: msg,
	}}
}

func missing(edit *model.Edit, field string) []model.CalculationMessage {
	return invalidProps(fmt.Sprintf("%s requires %s", edit.Name, field))
}

// clamp limits v to [lo, hi], warning when it had to move.
func clamp[T int | float64](field string, v, lo, hi T) (T, []model.CalculationMessage) {
	c := v
	if c < lo {
		c = lo
	}
	if c > hi {
		c = hi
	}
	if c == v {
		return v, nil
	}
	return c, []model.CalculationMessage{{
		Level:   model.LevelWarning,
		Code:    model.CodeValueClamped,
		Message: fmt.Sprintf("%s %v clamped to %v", field, v, c),
	}}
}

// parseDate parses "YYYY-MM-DD" without going through time.Parse layouts.
// Impossible days such as 2026-02-30 are rejected.
func parseDate(s string) (model.Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return model.Date{}, false
	}
	for i, c := range s {
		if i != 4 && i != 7 && (c < '0' || c > '9') {
			return model.Date{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 {
		return model.Date{}, false
	}
	date := model.NewDate(y, m, d)
	if date.Day() != d {
		return model.Date{}, false
	}
	return date, true
}
