package domain

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Segment is one role-tagged part of a generation request.
type Segment struct {
	Role    Role
	Content string
}

// PromptContext is an assembled generation request plus the vector of the utterance.
// Embedding is nil when embedding failed.
type PromptContext struct {
	Segments  []Segment
	Embedding []float32
}

// Completion is a generation result.
type Completion struct {
	Text       string
	TokenCount int
	Metadata   map[string]any
}
