package advisor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
)

const (
	defaultSets = 3
	defaultReps = "8–12"
)

type rawPlan struct {
	Group string            `json:"group"`
	Items []json.RawMessage `json:"items"`
	Cue   string            `json:"cue"`
}

type rawItem struct {
	Exercise        string          `json:"exercise"`
	Sets            json.RawMessage `json:"sets"`
	Reps            json.RawMessage `json:"reps"`
	TargetWeightLbs json.RawMessage `json:"targetWeightLbs"`
	Notes           json.RawMessage `json:"notes"`
}

// ParsePlan decodes a coach reply into a Plan. The reply may be wrapped in
// {"plan": ...} or be the plan object itself, optionally inside a code fence.
// Item fields of the wrong type fall back to defaults rather than failing.
func ParsePlan(content string) (*domain.Plan, error) {
	body := stripFence(content)

	var envelope struct {
		Plan json.RawMessage `json:"plan"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	planJSON := envelope.Plan
	if isNull(planJSON) {
		planJSON = json.RawMessage(body)
	}

	var raw rawPlan
	if err := json.Unmarshal(planJSON, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if strings.TrimSpace(raw.Group) == "" {
		return nil, fmt.Errorf("%w: missing group", ErrMalformedReply)
	}

	plan := &domain.Plan{Group: raw.Group, Cue: raw.Cue, Items: make([]domain.PlanItem, 0, len(raw.Items))}
	for _, msg := range raw.Items {
		var ri rawItem
		if err := json.Unmarshal(msg, &ri); err != nil {
			continue
		}
		plan.Items = append(plan.Items, domain.PlanItem{
			Exercise:        ri.Exercise,
			Sets:            setsOrDefault(ri.Sets),
			Reps:            repsOrDefault(ri.Reps),
			TargetWeightLbs: numberOrNil(ri.TargetWeightLbs),
			Notes:           stringOr(ri.Notes, ""),
		})
	}
	return plan, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // language tag
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// setsOrDefault accepts a number or a numeric string.
func setsOrDefault(msg json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(msg, &n); err != nil {
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return defaultSets
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return defaultSets
		}
	}
	if !(n >= 1) { // also catches NaN
		return defaultSets
	}
	return int(n)
}

// repsOrDefault keeps a string as is and formats a number.
func repsOrDefault(msg json.RawMessage) string {
	var n float64
	if !isNull(msg) && json.Unmarshal(msg, &n) == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return stringOr(msg, defaultReps)
}

func stringOr(msg json.RawMessage, fallback string) string {
	var s string
	if isNull(msg) {
		return fallback
	}
	if err := json.Unmarshal(msg, &s); err != nil {
		return fallback
	}
	return s
}

func numberOrNil(msg json.RawMessage) *float64 {
	var n float64
	if isNull(msg) {
		return nil
	}
	if err := json.Unmarshal(msg, &n); err != nil {
		return nil
	}
	return &n
}

func isNull(msg json.RawMessage) bool {
	t := strings.TrimSpace(string(msg))
	return t == "" || t == "null"
}
