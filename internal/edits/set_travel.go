package edits

import (
	"strings"

	"career-pivot/internal/model"
)

type setTravelProps struct {
	Months    *int            `json:"months"`
	Countries []model.Country `json:"countries"`
}

// SetTravelHandler changes the travel break. Omitted countries keep the
// current destinations; an empty list clears them.
type SetTravelHandler struct{}

func (h *SetTravelHandler) Validate(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setTravelProps
	if msgs := decodeProps(edit, &props); msgs != nil {
		return msgs
	}
	if props.Months == nil {
		return missing(edit, "months")
	}
	for _, c := range props.Countries {
		if strings.TrimSpace(c.Code) == "" {
			return invalidProps("Travel destinations need a country code")
		}
	}
	return nil
}

func (h *SetTravelHandler) Apply(state *model.ScenarioInput, edit *model.Edit) []model.CalculationMessage {
	var props setTravelProps
	decodeProps(edit, &props)

	months, msgs := clamp("travel_months", *props.Months, 0, maxBreakMonths)
	state.TravelMonths = months

	if props.Countries != nil {
		seen := make(map[string]bool, len(props.Countries))
		countries := make([]model.Country, 0, len(props.Countries))
		for _, c := range props.Countries {
			if seen[c.Code] {
				continue
			}
			seen[c.Code] = true
			countries = append(countries, c)
		}
		state.TravelCountries = countries
	}
	return msgs
}
