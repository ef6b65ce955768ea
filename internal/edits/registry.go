package edits

import "career-pivot/internal/timeline"

type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns every known edit. Rules are consulted by set_path to
// warn about pairs that will fall back to the default residency length.
func NewRegistry(rules timeline.Rules) *Registry {
	return &Registry{handlers: map[string]Handler{
		"set_path":                &SetPathHandler{rules: rules},
		"set_travel":              &SetTravelHandler{},
		"set_interim_work":        &SetInterimWorkHandler{},
		"set_program_length":      &SetProgramLengthHandler{},
		"set_hours_per_week":      &SetHoursPerWeekHandler{},
		"set_direct_client_ratio": &SetDirectClientRatioHandler{},
		"set_remote_coursework":   &SetRemoteCourseworkHandler{},
		"set_training_finish":     &SetTrainingFinishHandler{},
	}}
}

func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}
