package dto

type NormalizeRequest struct {
	Label     string    `json:"label" validate:"required"`
	Embedding []float32 `json:"embedding" validate:"required,min=1"`
	Kind      string    `json:"kind" validate:"required,oneof=tag theme"`
}

type NormalizeResponse struct {
	RawLabel        string  `json:"raw_label"`
	ResolvedId      *int64  `json:"resolved_id,omitempty"`
	ResolvedName    *string `json:"resolved_name,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`
	IsNewCanonical  bool    `json:"is_new_canonical"`
}

type InvalidateCacheRequest struct {
	Target string `json:"target" validate:"required,oneof=tag theme"`
}

// PublishNewCanonicalMessage is the watermill payload carrying an unresolved
// label toward the minting consumer.
type PublishNewCanonicalMessage struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	Embedding []float32 `json:"embedding"`
}
