package engine

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"career-pivot/internal/model"
	"career-pivot/internal/rules"
)

func newEngine() *Engine {
	return New(rules.Default(), DefaultMaxVariants, nil)
}

func TestProcessComparesVariants(t *testing.T) {
	req := &model.CompareRequest{
		Base: model.DefaultScenario(),
		Variants: []model.Variant{
			{
				Name: "Skip travel",
				Edits: []model.Edit{
					{EditID: "e1", Name: "set_travel", Properties: json.RawMessage(`{"months": 0}`)},
				},
			},
			{
				Edits: []model.Edit{
					{EditID: "e2", Name: "set_path", Properties: json.RawMessage(`{"jurisdiction": "VA", "license": "LPC"}`)},
				},
			},
		},
	}

	resp := newEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if _, err := uuid.Parse(resp.CalculationMetadata.CalculationID); err != nil {
		t.Fatalf("expected a UUID calculation id, got %q", resp.CalculationMetadata.CalculationID)
	}
	if len(resp.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.Messages))
	}
	if resp.Base.LicenseDate.String() != "2032-03-01" {
		t.Fatalf("expected base license date 2032-03-01, got %s", resp.Base.LicenseDate)
	}
	if len(resp.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(resp.Variants))
	}

	skip := resp.Variants[0]
	if skip.Name != "Skip travel" || skip.Result == nil || skip.Comparison == nil {
		t.Fatalf("unexpected first variant %+v", skip)
	}
	if skip.Result.LicenseDate.String() != "2031-03-01" {
		t.Fatalf("expected license date 2031-03-01 without travel, got %s", skip.Result.LicenseDate)
	}
	c := skip.Comparison
	if c.AgeDiff != -1 || c.MonthsDiff != -12 || !c.Faster || c.Slower {
		t.Fatalf("unexpected comparison %+v", c)
	}
	if len(c.InputPatch) != 1 || c.InputPatch[0]["path"] != "/travel_months" || c.InputPatch[0]["value"] != float64(0) {
		t.Fatalf("unexpected input patch %v", c.InputPatch)
	}

	va := resp.Variants[1]
	if va.Name != "Path 3" {
		t.Fatalf("expected default name Path 3, got %q", va.Name)
	}
	if va.Result.ResidencyMonths != 32 {
		t.Fatalf("expected 32 residency months for VA LPC, got %d", va.Result.ResidencyMonths)
	}
	if va.Comparison.Name != "Virginia LPC" || va.Comparison.MonthsDiff != 6 || !va.Comparison.Slower {
		t.Fatalf("unexpected comparison %+v", va.Comparison)
	}
	paths := []string{}
	for _, op := range va.Comparison.InputPatch {
		paths = append(paths, op["path"].(string))
	}
	if len(paths) != 2 || paths[0] != "/jurisdiction" || paths[1] != "/license" {
		t.Fatalf("unexpected patch paths %v", paths)
	}

	// The base scenario is untouched by the variants' edits.
	if req.Base.TravelMonths != 6 || req.Base.Jurisdiction != model.JurisdictionCA {
		t.Fatalf("base scenario was modified: %+v", req.Base)
	}
}

func TestProcessUnknownEdit(t *testing.T) {
	req := &model.CompareRequest{
		Base: model.DefaultScenario(),
		Variants: []model.Variant{
			{
				Name: "broken",
				Edits: []model.Edit{
					{Name: "set_program_length", Properties: json.RawMessage(`{"months": 30}`)},
					{Name: "retire_early", Properties: json.RawMessage(`{}`)},
					{Name: "set_travel", Properties: json.RawMessage(`{"months": 1}`)},
				},
			},
			{
				Name:  "fine",
				Edits: []model.Edit{{Name: "set_remote_coursework", Properties: json.RawMessage(`{"allowed": false}`)}},
			},
		},
	}

	resp := newEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Code != "UNKNOWN_EDIT" {
		t.Fatalf("expected a single UNKNOWN_EDIT message, got %+v", resp.Messages)
	}

	broken := resp.Variants[0]
	if broken.Result != nil || broken.Comparison != nil {
		t.Fatal("expected no result for a rejected variant")
	}
	// Processing stops at the failing edit.
	if len(broken.Edits) != 2 {
		t.Fatalf("expected 2 processed edits, got %d", len(broken.Edits))
	}
	if got := broken.Edits[1].CalculationMessageIndexes; len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected failing edit to reference message 0, got %v", got)
	}

	fine := resp.Variants[1]
	if fine.Result == nil {
		t.Fatal("expected the second variant to be generated")
	}
	masters, _ := fine.Result.Phase(model.PhaseMasters)
	if masters.Description != "On-campus required" {
		t.Fatalf("unexpected masters description %q", masters.Description)
	}
	if fine.Comparison.MonthsDiff != 0 || fine.Comparison.Faster || fine.Comparison.Slower {
		t.Fatalf("expected identical timeline, got %+v", fine.Comparison)
	}
}

func TestProcessClampWarning(t *testing.T) {
	req := &model.CompareRequest{
		Base: model.DefaultScenario(),
		Variants: []model.Variant{{
			Edits: []model.Edit{{Name: "set_hours_per_week", Properties: json.RawMessage(`{"hours": 60}`)}},
		}},
	}

	resp := newEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("warnings must not fail the calculation, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Level != "WARNING" || resp.Messages[0].Code != "VALUE_CLAMPED" {
		t.Fatalf("expected one VALUE_CLAMPED warning, got %+v", resp.Messages)
	}
	if resp.Variants[0].Result.Input.HoursPerWeek != 40 {
		t.Fatalf("expected hours clamped to 40, got %v", resp.Variants[0].Result.Input.HoursPerWeek)
	}
}

func TestProcessTooManyVariants(t *testing.T) {
	req := &model.CompareRequest{
		Base:     model.DefaultScenario(),
		Variants: make([]model.Variant, 3),
	}

	resp := newEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.Messages[0].Code != "TOO_MANY_VARIANTS" {
		t.Fatalf("expected TOO_MANY_VARIANTS, got %s", resp.Messages[0].Code)
	}
	if len(resp.Variants) != 0 {
		t.Fatalf("expected no variants, got %d", len(resp.Variants))
	}
	if resp.Base.LicenseDate.IsZero() {
		t.Fatal("expected the base scenario to be generated")
	}
}

func TestProcessMissingRuleWarns(t *testing.T) {
	table, err := rules.Parse([]byte(`
jurisdictions:
  VA:
    name: Virginia
    licenses:
      LPC: {total_hours: 3400, direct_hours: 2000, min_weeks: 104, associate_title: Resident in Counseling}
`))
	if err != nil {
		t.Fatalf("failed to parse rules: %v", err)
	}

	resp := New(table, DefaultMaxVariants, nil).Process(&model.CompareRequest{Base: model.DefaultScenario()})

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Code != "RULE_NOT_FOUND" {
		t.Fatalf("expected RULE_NOT_FOUND warning, got %+v", resp.Messages)
	}
	if resp.Base.ResidencyMonths != 24 {
		t.Fatalf("expected fallback residency of 24 months, got %d", resp.Base.ResidencyMonths)
	}
}

func TestSetRulesSwapsTable(t *testing.T) {
	eng := newEngine()
	if got := eng.Generate(model.DefaultScenario()).ResidencyMonths; got != 28 {
		t.Fatalf("expected 28 residency months, got %d", got)
	}

	table, err := rules.Parse([]byte(`
jurisdictions:
  CA:
    name: California
    licenses:
      LMFT: {total_hours: 1500, direct_hours: 0, min_weeks: 0, associate_title: AMFT}
`))
	if err != nil {
		t.Fatalf("failed to parse rules: %v", err)
	}
	eng.SetRules(table)
	eng.SetRules(nil)

	// ceil(1500 / 25) = 60 weeks -> ceil(60 / 4.33) = 14 months
	if got := eng.Generate(model.DefaultScenario()).ResidencyMonths; got != 14 {
		t.Fatalf("expected 14 residency months after swap, got %d", got)
	}
	if eng.Rules() != table {
		t.Fatal("expected Rules to return the swapped table")
	}
}
