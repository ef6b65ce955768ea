package engine

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-pivot/internal/edits"
	"career-pivot/internal/jsonpatch"
	"career-pivot/internal/model"
	"career-pivot/internal/rules"
	"career-pivot/internal/timeline"
)

// DefaultMaxVariants matches how many extra paths the comparison view shows.
const DefaultMaxVariants = 2

type Engine struct {
	current     atomic.Pointer[snapshot]
	maxVariants int
	logger      *zap.Logger
}

// snapshot is everything derived from one rule table.
type snapshot struct {
	rules *rules.Table
	gen   *timeline.Generator
	edits *edits.Registry
}

func newSnapshot(table *rules.Table) *snapshot {
	return &snapshot{
		rules: table,
		gen:   timeline.New(table),
		edits: edits.NewRegistry(table),
	}
}

func New(table *rules.Table, maxVariants int, logger *zap.Logger) *Engine {
	if maxVariants < 0 {
		maxVariants = DefaultMaxVariants
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		maxVariants: maxVariants,
		logger:      logger,
	}
	e.current.Store(newSnapshot(table))
	return e
}

func (e *Engine) Rules() *rules.Table { return e.current.Load().rules }

// SetRules swaps the rule table. Calculations already running keep the
// table they started with.
func (e *Engine) SetRules(table *rules.Table) {
	if table == nil {
		return
	}
	e.current.Store(newSnapshot(table))
	e.logger.Info("rule table replaced", zap.Int("jurisdictions", len(table.Jurisdictions)))
}

// Generate builds a single timeline. Missing rules are logged, never fatal.
func (e *Engine) Generate(in model.ScenarioInput) model.ScenarioResult {
	return e.generate(e.current.Load(), in)
}

func (e *Engine) generate(st *snapshot, in model.ScenarioInput) model.ScenarioResult {
	if _, ok := st.rules.Lookup(in.Jurisdiction, in.License); !ok {
		e.logger.Warn("no requirements for pair, using fallback residency",
			zap.String("jurisdiction", string(in.Jurisdiction)),
			zap.String("license", string(in.License)),
			zap.Int("months", timeline.FallbackResidencyMonths))
	}
	return st.gen.Generate(in)
}

// Process generates the base scenario and every variant derived from it.
// A variant stops at its first CRITICAL message and carries no result; the
// other variants are still processed.
func (e *Engine) Process(req *model.CompareRequest) *model.CompareResponse {
	start := time.Now()
	st := e.current.Load()

	var allMessages []model.CalculationMessage
	add := func(m model.CalculationMessage) int {
		m.ID = len(allMessages)
		allMessages = append(allMessages, m)
		return m.ID
	}
	outcome := model.OutcomeSuccess

	base := e.generate(st, req.Base)
	if msg, ok := ruleWarning(st.rules, req.Base); ok {
		add(msg)
	}

	variants := []model.VariantResult{}
	if len(req.Variants) > e.maxVariants {
		add(model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeTooManyVariants,
			Message: fmt.Sprintf("At most %d variants can be compared, got %d", e.maxVariants, len(req.Variants)),
		})
		outcome = model.OutcomeFailure
	} else {
		for i := range req.Variants {
			v := &req.Variants[i]
			name := v.Name
			if name == "" {
				name = fmt.Sprintf("Path %d", i+2)
			}
			vr := model.VariantResult{Name: name, Edits: []model.ProcessedEdit{}}

			input := req.Base.Clone()
			failed := false
			for j := range v.Edits {
				ed := &v.Edits[j]
				var msgIndexes []int

				handler, ok := st.edits.Get(ed.Name)
				if !ok {
					msgIndexes = append(msgIndexes, add(model.CalculationMessage{
						Level:   model.LevelCritical,
						Code:    model.CodeUnknownEdit,
						Message: fmt.Sprintf("Unknown edit: %s", ed.Name),
					}))
					vr.Edits = append(vr.Edits, model.ProcessedEdit{Edit: *ed, CalculationMessageIndexes: msgIndexes})
					failed = true
					break
				}

				validationMsgs := handler.Validate(&input, ed)
				for _, m := range validationMsgs {
					msgIndexes = append(msgIndexes, add(m))
				}
				if model.IsCritical(validationMsgs) {
					vr.Edits = append(vr.Edits, model.ProcessedEdit{Edit: *ed, CalculationMessageIndexes: msgIndexes})
					failed = true
					break
				}

				for _, m := range handler.Apply(&input, ed) {
					msgIndexes = append(msgIndexes, add(m))
				}
				vr.Edits = append(vr.Edits, model.ProcessedEdit{Edit: *ed, CalculationMessageIndexes: msgIndexes})
			}

			if failed {
				outcome = model.OutcomeFailure
				e.logger.Debug("variant rejected", zap.String("variant", name))
				variants = append(variants, vr)
				continue
			}

			result := e.generate(st, input)
			if msg, ok := ruleWarning(st.rules, input); ok {
				vr.CalculationMessageIndexes = append(vr.CalculationMessageIndexes, add(msg))
			}
			summary, err := compare(st.rules, base, result)
			if err != nil {
				e.logger.Error("failed to diff variant input", zap.String("variant", name), zap.Error(err))
			}
			vr.Result = &result
			vr.Comparison = summary
			variants = append(variants, vr)
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CompareResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		Messages: allMessages,
		Base:     base,
		Variants: variants,
	}
}

func ruleWarning(table *rules.Table, in model.ScenarioInput) (model.CalculationMessage, bool) {
	if _, ok := table.Lookup(in.Jurisdiction, in.License); ok {
		return model.CalculationMessage{}, false
	}
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    model.CodeRuleNotFound,
		Message: fmt.Sprintf("No requirements for %s %s; residency defaults to %d months", in.Jurisdiction, in.License, timeline.FallbackResidencyMonths),
	}, true
}

// compare summarizes variant against base.
func compare(table *rules.Table, base, variant model.ScenarioResult) (*model.Comparison, error) {
	ageDiff := variant.AgeAtLicense - base.AgeAtLicense
	monthsDiff := int(math.Round(ageDiff * 12))

	patch, err := jsonpatch.Between(base.Input, variant.Input)
	if err != nil {
		return nil, err
	}
	return &model.Comparison{
		Name:         fmt.Sprintf("%s %s", table.Name(variant.Input.Jurisdiction), variant.Input.License),
		AgeAtLicense: variant.AgeAtLicense,
		AgeDiff:      ageDiff,
		MonthsDiff:   monthsDiff,
		Faster:       monthsDiff < 0,
		Slower:       monthsDiff > 0,
		InputPatch:   patch,
	}, nil
}
