package edits

import (
	"fmt"

	"career-pivot/internal/model"
)

type setTrainingFinishProps struct {
	Date string `json:"date"`
}

// SetTrainingFinishHandler moves the date the prior training program ends.
type SetTrainingFinishHandler struct{}

func (h *SetTrainingFinishHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setTrainingFinishProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}

	date, ok := parseDate(props.Date)
	if !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidDate,
			Message: fmt.Sprintf("Invalid training finish date %q", props.Date),
		}}
	}
	if date.Before(state.Birthdate) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidDate,
			Message: "Training finish date is before the birthdate",
		}}
	}
	return nil
}

func (h *SetTrainingFinishHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setTrainingFinishProps
	decodeProps(edit, &props)

	state.FinishPriorTraining, _ = parseDate(props.Date)
	return nil
}
