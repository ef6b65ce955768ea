// Package timeline turns a scenario into a dated sequence of life phases
// ending in independent licensure.
package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"career-pivot/internal/model"
	"career-pivot/internal/rules"
)

// Rules resolves regulatory requirements. *rules.Table satisfies it.
type Rules interface {
	Lookup(j model.Jurisdiction, l model.LicenseType) (model.LicenseRequirements, bool)
}

// Generator builds timelines against one rule table. It holds no other
// state and is safe for concurrent use.
type Generator struct {
	rules Rules
}

func New(r Rules) *Generator {
	return &Generator{rules: r}
}

const (
	genericResidencyTitle = "Residency"
	unknownTotalHours     = 3000
)

// Generate computes the phases and milestones for in. Each phase starts where
// the previous one ended, except graduate study, which waits for the next
// September intake.
func (g *Generator) Generate(in model.ScenarioInput) model.ScenarioResult {
	in = in.Clone()

	var (
		phases     []model.TimelinePhase
		milestones []model.Milestone
		itinerary  []model.TravelLeg
	)
	milestone := func(date model.Date, label, description, icon string) {
		milestones = append(milestones, model.Milestone{
			Date:        date,
			Age:         Age(in.Birthdate, date),
			Label:       label,
			Description: description,
			Icon:        icon,
		})
	}

	cursor := in.FinishPriorTraining

	if in.WorkAsInterim && in.WorkMonths > 0 {
		end := AddMonths(cursor, in.WorkMonths)
		phases = append(phases, model.TimelinePhase{
			Kind:      model.PhaseWork,
			StartDate: cursor,
			EndDate:   end,
			Label:     fmt.Sprintf("Work as Sonographer (%d months)", in.WorkMonths),
			Color:     rules.PhaseColor(model.PhaseWork),
		})
		milestone(end, "Finish Sonography Work",
			fmt.Sprintf("Complete %d months of work experience", in.WorkMonths), "briefcase")
		cursor = end
	}

	if in.TravelMonths > 0 {
		end := AddMonths(cursor, in.TravelMonths)
		travel := model.TimelinePhase{
			Kind:        model.PhaseTravel,
			StartDate:   cursor,
			EndDate:     end,
			Label:       fmt.Sprintf("Travel Break (%d months)", in.TravelMonths),
			Color:       rules.PhaseColor(model.PhaseTravel),
			Description: destinations(in.TravelCountries),
		}
		phases = append(phases, travel)
		itinerary = Itinerary(travel, in.TravelMonths, in.TravelCountries)
		milestone(end, "Return from Travel",
			fmt.Sprintf("Complete %d months of travel", in.TravelMonths), "plane")
		cursor = end
	}

	mastersStart := NextIntake(cursor)
	mastersEnd := AddMonths(mastersStart, in.ProgramLength)
	coursework := "On-campus required"
	if in.AllowRemoteCoursework {
		coursework = "Remote coursework available"
	}
	phases = append(phases, model.TimelinePhase{
		Kind:        model.PhaseMasters,
		StartDate:   mastersStart,
		EndDate:     mastersEnd,
		Label:       fmt.Sprintf("Master's Program (%d months)", in.ProgramLength),
		Color:       rules.PhaseColor(model.PhaseMasters),
		Description: coursework,
	})
	milestone(mastersStart, "Start Master's Program",
		fmt.Sprintf("Begin %s program in %s", in.License, in.Jurisdiction), "books")
	milestone(mastersEnd, "Graduate Master's",
		fmt.Sprintf("Complete %s degree", in.License), "graduation-cap")
	cursor = mastersEnd

	residencyMonths := g.ResidencyMonths(in.Jurisdiction, in.License, in.HoursPerWeek, in.DirectClientRatio)
	residencyEnd := AddMonths(cursor, residencyMonths)
	title, totalHours := genericResidencyTitle, unknownTotalHours
	if req, ok := g.rules.Lookup(in.Jurisdiction, in.License); ok {
		title, totalHours = req.AssociateTitle, req.TotalHours
	}
	phases = append(phases, model.TimelinePhase{
		Kind:        model.PhaseResidency,
		StartDate:   cursor,
		EndDate:     residencyEnd,
		Label:       fmt.Sprintf("%s (%d months)", title, residencyMonths),
		Color:       rules.PhaseColor(model.PhaseResidency),
		Description: fmt.Sprintf("%d supervised hours at %s hrs/week", totalHours, strconv.FormatFloat(in.HoursPerWeek, 'f', -1, 64)),
	})
	milestone(cursor, "Begin "+title, "Start supervised practice", "clinician")
	cursor = residencyEnd

	licenseDate := AddMonths(cursor, LicensureBufferMonths)
	phases = append(phases, model.TimelinePhase{
		Kind:      model.PhaseLicensed,
		StartDate: cursor,
		EndDate:   licenseDate,
		Label:     "Exam & Licensure",
		Color:     rules.PhaseColor(model.PhaseLicensed),
	})
	milestone(licenseDate, fmt.Sprintf("Licensed %s", in.License),
		"Fully licensed to practice independently", "trophy")

	return model.ScenarioResult{
		Input:           in,
		Phases:          phases,
		Milestones:      milestones,
		TotalMonths:     MonthsBetween(licenseDate, in.FinishPriorTraining),
		LicenseDate:     licenseDate,
		AgeAtLicense:    Age(in.Birthdate, licenseDate),
		ResidencyMonths: residencyMonths,
		Itinerary:       itinerary,
	}
}

func destinations(countries []model.Country) string {
	if len(countries) == 0 {
		return ""
	}
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		if c.Name != "" {
			names = append(names, c.Name)
		} else {
			names = append(names, c.Code)
		}
	}
	return "Visiting " + strings.Join(names, ", ")
}
