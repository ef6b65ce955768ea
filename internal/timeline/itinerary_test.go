package timeline

import (
	"testing"

	"career-pivot/internal/model"
	"career-pivot/internal/rules"
)

func TestItinerary(t *testing.T) {
	travel := model.TimelinePhase{Kind: model.PhaseTravel, StartDate: d("2026-05-08"), EndDate: d("2026-12-08")}
	countries := []model.Country{{Code: "JP"}, {Code: "VN"}, {Code: "PE"}}

	legs := Itinerary(travel, 7, countries)
	want := [][2]string{
		{"2026-05-08", "2026-07-08"},
		{"2026-07-08", "2026-09-08"},
		{"2026-09-08", "2026-12-08"},
	}
	if len(legs) != len(want) {
		t.Fatalf("expected %d legs, got %d", len(want), len(legs))
	}
	for i, w := range want {
		if legs[i].StartDate.String() != w[0] || legs[i].EndDate.String() != w[1] {
			t.Fatalf("leg %d: got %s..%s, want %s..%s", i, legs[i].StartDate, legs[i].EndDate, w[0], w[1])
		}
		if legs[i].Country != countries[i] {
			t.Fatalf("leg %d: unexpected country %+v", i, legs[i].Country)
		}
	}
}

func TestItineraryMoreCountriesThanMonths(t *testing.T) {
	travel := model.TimelinePhase{StartDate: d("2026-05-08")}
	legs := Itinerary(travel, 2, []model.Country{{Code: "JP"}, {Code: "VN"}, {Code: "PE"}})
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
	if legs[1].Country.Code != "VN" || legs[1].EndDate.String() != "2026-07-08" {
		t.Fatalf("unexpected last leg %+v", legs[1])
	}
}

func TestItineraryEmpty(t *testing.T) {
	travel := model.TimelinePhase{StartDate: d("2026-05-08")}
	if legs := Itinerary(travel, 6, nil); legs != nil {
		t.Fatalf("expected no legs without destinations, got %d", len(legs))
	}
	if legs := Itinerary(travel, 0, []model.Country{{Code: "JP"}}); legs != nil {
		t.Fatalf("expected no legs without travel, got %d", len(legs))
	}
}

func TestGenerateTravelDestinations(t *testing.T) {
	in := baseline()
	in.TravelCountries = []model.Country{{Code: "JP", Name: "Japan"}, {Code: "PE"}}

	res := New(rules.Default()).Generate(in)
	travel, _ := res.Phase(model.PhaseTravel)
	if travel.Description != "Visiting Japan, PE" {
		t.Fatalf("unexpected travel description %q", travel.Description)
	}
	if len(res.Itinerary) != 2 || res.Itinerary[1].EndDate != travel.EndDate {
		t.Fatalf("itinerary does not cover the travel phase: %+v", res.Itinerary)
	}
}
