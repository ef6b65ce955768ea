package model

import json "github.com/goccy/go-json"

// CompareRequest asks for a base scenario plus variants derived from it.
type CompareRequest struct {
	Base     ScenarioInput `json:"base"`
	Variants []Variant     `json:"variants" validate:"dive"`
}

// Variant describes an alternative scenario as edits applied to the base.
type Variant struct {
	Name  string `json:"name,omitempty"`
	Edits []Edit `json:"edits" validate:"dive"`
}

type Edit struct {
	EditID     string          `json:"edit_id,omitempty"`
	Name       string          `json:"name" validate:"required"`
	Properties json.RawMessage `json:"properties,omitempty"`
}
