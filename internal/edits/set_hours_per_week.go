package edits

import "career-pivot/internal/model"

type setHoursPerWeekProps struct {
	Hours *float64 `json:"hours"`
}

type SetHoursPerWeekHandler struct{}

func (h *SetHoursPerWeekHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setHoursPerWeekProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Hours == nil {
		return missing(edit, "hours")
	}
	return nil
}

func (h *SetHoursPerWeekHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setHoursPerWeekProps
	decodeProps(edit, &props)

	hours, msgs := clamp("hours_per_week", *props.Hours, minHoursPerWeek, maxHoursPerWeek)
	state.HoursPerWeek = hours
	return msgs
}
