// Package edits derives scenario variants from a base scenario. An edit is a
// named change to one group of answers; the state it works on is always a
// private copy, so the base scenario is never modified.
package edits

import "career-pivot/internal/model"

// Handler defines the contract for all edit implementations.
// Validate reports problems without touching state; Apply changes state and
// may report clamping warnings.
type Handler interface {
	Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage
	Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage
}
