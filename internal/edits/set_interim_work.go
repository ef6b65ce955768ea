package edits

import "career-pivot/internal/model"

type setInterimWorkProps struct {
	Enabled *bool `json:"enabled"`
	Months  *int  `json:"months"`
}

type SetInterimWorkHandler struct{}

func (h *SetInterimWorkHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setInterimWorkProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Enabled == nil {
		return missing(edit, "enabled")
	}
	return nil
}

func (h *SetInterimWorkHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setInterimWorkProps
	decodeProps(edit, &props)

	state.WorkAsInterim = *props.Enabled
	if props.Months == nil {
		return nil
	}
	months, msgs := clamp("work_months", *props.Months, 0, maxBreakMonths)
	state.WorkMonths = months
	return msgs
}
