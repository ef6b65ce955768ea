package edits

import (
	"fmt"

	"career-pivot/internal/model"
	"career-pivot/internal/timeline"
)

type setPathProps struct {
	Jurisdiction model.Jurisdiction `json:"jurisdiction"`
	License      model.LicenseType  `json:"license"`
}

// SetPathHandler switches the target jurisdiction and/or license type.
type SetPathHandler struct {
	rules timeline.Rules
}

func (h *SetPathHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setPathProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Jurisdiction == "" && props.License == "" {
		return missing(edit, "jurisdiction or license")
	}

	if props.Jurisdiction != "" && !props.Jurisdiction.Valid() {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownJurisdiction,
			Message: fmt.Sprintf("Unknown jurisdiction: %s", props.Jurisdiction),
		}}
	}
	if props.License != "" && !props.License.Valid() {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownLicense,
			Message: fmt.Sprintf("Unknown license type: %s", props.License),
		}}
	}

	j, l := state.Jurisdiction, state.License
	if props.Jurisdiction != "" {
		j = props.Jurisdiction
	}
	if props.License != "" {
		l = props.License
	}
	if _, ok := h.rules.Lookup(j, l); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    model.CodeRuleNotFound,
			Message: fmt.Sprintf("No requirements for %s %s; residency defaults to %d months", j, l, timeline.FallbackResidencyMonths),
		}}
	}
	return nil
}

func (h *SetPathHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setPathProps
	decodeProps(edit, &props)

	if props.Jurisdiction != "" {
		state.Jurisdiction = props.Jurisdiction
	}
	if props.License != "" {
		state.License = props.License
	}
	return nil
}
