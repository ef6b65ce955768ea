package edits

import "career-pivot/internal/model"

type setRemoteCourseworkProps struct {
	Allowed *bool `json:"allowed"`
}

type SetRemoteCourseworkHandler struct{}

func (h *SetRemoteCourseworkHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setRemoteCourseworkProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Allowed == nil {
		return missing(edit, "allowed")
	}
	return nil
}

func (h *SetRemoteCourseworkHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setRemoteCourseworkProps
	decodeProps(edit, &props)

	state.AllowRemoteCoursework = *props.Allowed
	return nil
}
