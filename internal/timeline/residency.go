package timeline

import (
	"math"

	"career-pivot/internal/model"
)

const (
	// FallbackResidencyMonths is used when no requirements exist for a pair.
	FallbackResidencyMonths = 24
	// LicensureBufferMonths covers exam scheduling and board processing.
	LicensureBufferMonths = 2

	weeksPerMonth = 4.33
)

// ResidencyMonths estimates the supervised-practice duration for a pair at
// the given weekly pace. Unknown pairs get FallbackResidencyMonths.
func (g *Generator) ResidencyMonths(j model.Jurisdiction, l model.LicenseType, hoursPerWeek, directClientRatio float64) int {
	req, ok := g.rules.Lookup(j, l)
	if !ok {
		return FallbackResidencyMonths
	}
	return residencyMonths(req, hoursPerWeek, directClientRatio)
}

// residencyMonths takes the most binding of the direct-hours pace, the
// total-hours pace and the minimum duration. A pace of zero disables its
// constraint.
func residencyMonths(req model.LicenseRequirements, hoursPerWeek, directClientRatio float64) int {
	weeks := float64(req.MinWeeks)

	if direct := hoursPerWeek * directClientRatio; direct > 0 {
		weeks = math.Max(weeks, math.Ceil(float64(req.DirectHours)/direct))
	}
	if hoursPerWeek > 0 {
		weeks = math.Max(weeks, math.Ceil(float64(req.TotalHours)/hoursPerWeek))
	}

	months := int(math.Ceil(weeks / weeksPerMonth))
	if months < 1 {
		months = 1
	}
	return months
}
