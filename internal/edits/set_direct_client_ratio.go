package edits

import "career-pivot/internal/model"

type setDirectClientRatioProps struct {
	Ratio *float64 `json:"ratio"`
}

type SetDirectClientRatioHandler struct{}

func (h *SetDirectClientRatioHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setDirectClientRatioProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Ratio == nil {
		return missing(edit, "ratio")
	}
	return nil
}

func (h *SetDirectClientRatioHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setDirectClientRatioProps
	decodeProps(edit, &props)

	ratio, msgs := clamp("direct_client_ratio", *props.Ratio, 0.0, 1.0)
	state.DirectClientRatio = ratio
	return msgs
}
