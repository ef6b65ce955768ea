package timeline

import "career-pivot/internal/model"

// Itinerary splits a travel phase of the given length across destinations in
// order. Each destination gets months/len(countries) months (at least one);
// the last destination reached absorbs the remainder. Destinations that do
// not fit into the break are dropped.
func Itinerary(travel model.TimelinePhase, months int, countries []model.Country) []model.TravelLeg {
	if months <= 0 || len(countries) == 0 {
		return nil
	}
	per := months / len(countries)
	if per < 1 {
		per = 1
	}

	legs := make([]model.TravelLeg, 0, len(countries))
	for i, c := range countries {
		from := i * per
		if from >= months {
			break
		}
		to := from + per
		if i == len(countries)-1 || to > months {
			to = months
		}
		legs = append(legs, model.TravelLeg{
			Country:   c,
			StartDate: AddMonths(travel.StartDate, from),
			EndDate:   AddMonths(travel.StartDate, to),
		})
	}
	return legs
}
