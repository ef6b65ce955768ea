package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"career-pivot/internal/model"
)

//go:embed rules.yaml
var defaultRules []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Table maps jurisdiction -> license type -> requirements.
type Table struct {
	Jurisdictions map[model.Jurisdiction]JurisdictionRules `yaml:"jurisdictions" json:"jurisdictions"`
	Fieldwork     map[string]map[string]FieldworkHours     `yaml:"fieldwork" json:"fieldwork"`
}

type JurisdictionRules struct {
	Name     string                                        `yaml:"name" json:"name"`
	Licenses map[model.LicenseType]model.LicenseRequirements `yaml:"licenses" json:"licenses"`
}

// FieldworkHours are the hours a graduate placement requires.
type FieldworkHours struct {
	Total  int `yaml:"total" json:"total"`
	Direct int `yaml:"direct" json:"direct"`
}

// Default returns the table compiled into the binary.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultRules)
		if err != nil {
			panic(fmt.Sprintf("embedded rules.yaml: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Parse decodes a YAML rule table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse rule table: %w", err)
	}
	if len(t.Jurisdictions) == 0 {
		return nil, errors.New("rule table has no jurisdictions")
	}
	return &t, nil
}

// Load reads a YAML rule table from path. An empty path yields Default().
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table %s: %w", path, err)
	}
	return Parse(data)
}

// Lookup returns the requirements for a pair. The returned record does not
// share memory with the table.
func (t *Table) Lookup(j model.Jurisdiction, l model.LicenseType) (model.LicenseRequirements, bool) {
	if t == nil {
		return model.LicenseRequirements{}, false
	}
	req, ok := t.Jurisdictions[j].Licenses[l]
	if !ok {
		return model.LicenseRequirements{}, false
	}
	req.ExamRequirements = slices.Clone(req.ExamRequirements)
	return req, true
}

// Name returns the display name of j, or its code when unnamed.
func (t *Table) Name(j model.Jurisdiction) string {
	if t != nil {
		if n := t.Jurisdictions[j].Name; n != "" {
			return n
		}
	}
	return string(j)
}

// Validate checks that every pair in js x ls resolves to exactly one usable
// record. All problems are reported together.
func (t *Table) Validate(js []model.Jurisdiction, ls []model.LicenseType) error {
	var errs []error
	for _, j := range js {
		for _, l := range ls {
			req, ok := t.Lookup(j, l)
			if !ok {
				errs = append(errs, fmt.Errorf("%s/%s: no requirements", j, l))
				continue
			}
			switch {
			case req.TotalHours <= 0:
				errs = append(errs, fmt.Errorf("%s/%s: total_hours must be positive", j, l))
			case req.DirectHours < 0 || req.DirectHours > req.TotalHours:
				errs = append(errs, fmt.Errorf("%s/%s: direct_hours must be within 0..total_hours", j, l))
			case req.MinWeeks < 0:
				errs = append(errs, fmt.Errorf("%s/%s: min_weeks must not be negative", j, l))
			case req.AssociateTitle == "":
				errs = append(errs, fmt.Errorf("%s/%s: associate_title is empty", j, l))
			}
		}
	}
	return errors.Join(errs...)
}

var phaseColors = map[model.PhaseKind]string{
	model.PhaseWork:      "bg-gray-200 border-gray-300",
	model.PhaseTravel:    "bg-sky-200 border-sky-300",
	model.PhaseMasters:   "bg-emerald-200 border-emerald-300",
	model.PhaseResidency: "bg-amber-200 border-amber-300",
	model.PhaseLicensed:  "bg-rose-200 border-rose-300",
}

// PhaseColor is the presentation tag for a phase kind.
func PhaseColor(kind model.PhaseKind) string {
	return phaseColors[kind]
}
