package edits

import "career-pivot/internal/model"

type setProgramLengthProps struct {
	Months *int `json:"months"`
}

type SetProgramLengthHandler struct{}

func (h *SetProgramLengthHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setProgramLengthProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Months == nil {
		return missing(edit, "months")
	}
	return nil
}

func (h *SetProgramLengthHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setProgramLengthProps
	decodeProps(edit, &props)

	months, msgs := clamp("program_length", *props.Months, minProgramMonths, maxProgramMonths)
	state.ProgramLength = months
	return msgs
}
