package timeline

import "career-pivot/internal/model"

// Age is the display age at asOf: whole years since birth, plus half a year
// once six or more months of the current year have elapsed.
func Age(birth, asOf model.Date) float64 {
	months := MonthsBetween(asOf, birth)
	age := float64(months / 12)
	if months%12 >= 6 {
		age += 0.5
	}
	return age
}
