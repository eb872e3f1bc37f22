package types

// Category groups services by domain
type Category string

const (
	CategoryPrimes       Category = "primes"
	CategoryDivisibility Category = "divisibility"
	CategorySequences    Category = "sequences"
	CategoryNumberTheory Category = "number_theory"
)

// Service describes a provider and the tools it exposes
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool is a single callable operation
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter describes one tool argument and its accepted range
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Min         *int64 `json:"min,omitempty"`
	Max         *int64 `json:"max,omitempty"`
}

// Context carries per-call metadata into a provider
type Context struct {
	RequestID *string `json:"request_id,omitempty"`
	Source    string  `json:"source,omitempty"` // "http", "cli"
}

// Result is the envelope every tool returns
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}
