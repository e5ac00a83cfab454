package domain

import "time"

type FactType string

const (
	FactBirthday FactType = "birthday"
	FactName     FactType = "name"
)

// Candidate is a fact proposed by the extractor, not yet persisted.
type Candidate struct {
	Type       FactType
	Value      string
	Normalized *string
	Confidence float64
	Source     string
}

// Fact is a consent-gated belief about a user.
// There is at most one fact per (Username, Type), deletion only clears Active.
type Fact struct {
	ID              string
	Username        string
	RequestID       string
	Type            FactType
	Value           string
	NormalizedValue *string
	Confidence      float64
	Active          bool
	Metadata        map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Display renders the fact the way it is handed to the model.
func (f Fact) Display() string {
	display := string(f.Type) + ": " + f.Value
	if f.NormalizedValue != nil {
		display += " (normalized: " + *f.NormalizedValue + ")"
	}
	return display
}

// FactPatch carries the mutable fields of a Fact, nil fields are left untouched.
type FactPatch struct {
	Value           *string  `json:"value,omitempty" validate:"omitempty,min=1,max=256"`
	NormalizedValue *string  `json:"normalized_value,omitempty" validate:"omitempty,max=64"`
	Confidence      *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	Active          *bool    `json:"active,omitempty"`
}

func (p FactPatch) Empty() bool {
	return p.Value == nil && p.NormalizedValue == nil && p.Confidence == nil && p.Active == nil
}

// Apply writes the non-nil fields of the patch onto the fact.
func (p FactPatch) Apply(f Fact) Fact {
	if p.Value != nil {
		f.Value = *p.Value
	}
	if p.NormalizedValue != nil {
		f.NormalizedValue = p.NormalizedValue
	}
	if p.Confidence != nil {
		f.Confidence = *p.Confidence
	}
	if p.Active != nil {
		f.Active = *p.Active
	}
	return f
}
