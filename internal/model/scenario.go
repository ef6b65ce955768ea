package model

// Jurisdiction is the region whose licensing rules apply.
type Jurisdiction string

const (
	JurisdictionCA Jurisdiction = "CA"
	JurisdictionVA Jurisdiction = "VA"
	JurisdictionOK Jurisdiction = "OK"
	JurisdictionSC Jurisdiction = "SC"
)

// Jurisdictions lists every jurisdiction a scenario may target.
var Jurisdictions = []Jurisdiction{JurisdictionCA, JurisdictionVA, JurisdictionOK, JurisdictionSC}

// LicenseType is the professional credential being pursued.
type LicenseType string

const (
	LicenseLMFT LicenseType = "LMFT"
	LicenseLPC  LicenseType = "LPC"
	LicenseLPCC LicenseType = "LPCC"
	LicenseLCSW LicenseType = "LCSW"
)

// LicenseTypes lists every license type a scenario may target.
var LicenseTypes = []LicenseType{LicenseLMFT, LicenseLPC, LicenseLPCC, LicenseLCSW}

func (j Jurisdiction) Valid() bool {
	for _, v := range Jurisdictions {
		if v == j {
			return true
		}
	}
	return false
}

func (l LicenseType) Valid() bool {
	for _, v := range LicenseTypes {
		if v == l {
			return true
		}
	}
	return false
}

type PhaseKind string

const (
	PhaseWork      PhaseKind = "work"
	PhaseTravel    PhaseKind = "travel"
	PhaseMasters   PhaseKind = "masters"
	PhaseResidency PhaseKind = "residency"
	PhaseLicensed  PhaseKind = "licensed"
)

type Country struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// ScenarioInput is one set of answers to the planning questions. It is
// passed by value and never modified by the generator.
type ScenarioInput struct {
	Jurisdiction          Jurisdiction `json:"jurisdiction" validate:"required,oneof=CA VA OK SC"`
	License               LicenseType  `json:"license" validate:"required,oneof=LMFT LPC LPCC LCSW"`
	Birthdate             Date         `json:"birthdate" validate:"required"`
	FinishPriorTraining   Date         `json:"finish_prior_training" validate:"required"`
	TravelMonths          int          `json:"travel_months" validate:"gte=0,lte=24"`
	TravelCountries       []Country    `json:"travel_countries" validate:"dive"`
	WorkAsInterim         bool         `json:"work_as_interim"`
	WorkMonths            int          `json:"work_months" validate:"gte=0,lte=24"`
	ProgramLength         int          `json:"program_length" validate:"gte=18,lte=36"`
	HoursPerWeek          float64      `json:"hours_per_week" validate:"gte=15,lte=40"`
	DirectClientRatio     float64      `json:"direct_client_ratio" validate:"gte=0,lte=1"`
	AllowRemoteCoursework bool         `json:"allow_remote_coursework"`
}

// DefaultScenario returns the answers the planning form starts with.
func DefaultScenario() ScenarioInput {
	return ScenarioInput{
		Jurisdiction:          JurisdictionCA,
		License:               LicenseLMFT,
		Birthdate:             NewDate(2000, 3, 23),
		FinishPriorTraining:   NewDate(2026, 5, 8),
		TravelMonths:          6,
		TravelCountries:       []Country{},
		WorkAsInterim:         false,
		WorkMonths:            0,
		ProgramLength:         24,
		HoursPerWeek:          25,
		DirectClientRatio:     0.6,
		AllowRemoteCoursework: true,
	}
}

// Clone returns a copy of in that shares no slices with it.
func (in ScenarioInput) Clone() ScenarioInput {
	out := in
	if in.TravelCountries != nil {
		out.TravelCountries = append([]Country(nil), in.TravelCountries...)
	}
	return out
}

// LicenseRequirements are the regulatory requirements for one
// (jurisdiction, license type) pair.
type LicenseRequirements struct {
	TotalHours       int      `json:"total_hours" yaml:"total_hours"`
	DirectHours      int      `json:"direct_hours" yaml:"direct_hours"`
	SupervisionHours int      `json:"supervision_hours" yaml:"supervision_hours"`
	MinWeeks         int      `json:"min_weeks" yaml:"min_weeks"`
	AssociateTitle   string   `json:"associate_title" yaml:"associate_title"`
	ExamRequirements []string `json:"exam_requirements" yaml:"exam_requirements"`
}

type TimelinePhase struct {
	Kind        PhaseKind `json:"type"`
	StartDate   Date      `json:"start_date"`
	EndDate     Date      `json:"end_date"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
}

type Milestone struct {
	Date        Date    `json:"date"`
	Age         float64 `json:"age"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
}

// TravelLeg is the share of the travel break spent in one destination.
type TravelLeg struct {
	Country   Country `json:"country"`
	StartDate Date    `json:"start_date"`
	EndDate   Date    `json:"end_date"`
}

type ScenarioResult struct {
	Input           ScenarioInput   `json:"input"`
	Phases          []TimelinePhase `json:"phases"`
	Milestones      []Milestone     `json:"milestones"`
	TotalMonths     int             `json:"total_months"`
	LicenseDate     Date            `json:"license_date"`
	AgeAtLicense    float64         `json:"age_at_license"`
	ResidencyMonths int             `json:"residency_months"`
	Itinerary       []TravelLeg     `json:"itinerary,omitempty"`
}

// Phase returns the first phase of the given kind.
func (r ScenarioResult) Phase(kind PhaseKind) (TimelinePhase, bool) {
	for _, p := range r.Phases {
		if p.Kind == kind {
			return p, true
		}
	}
	return TimelinePhase{}, false
}
