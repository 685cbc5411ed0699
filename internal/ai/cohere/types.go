package cohere

// ChatRequest is the payload for the chat endpoint. ConversationID is an
// opaque token; the service accumulates per-conversation history against it.
type ChatRequest struct {
	Message        string `json:"message"`
	Model          string `json:"model,omitempty"`
	Preamble       string `json:"preamble,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	MaxTokens      int    `json:"max_tokens,omitempty"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

type RerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model,omitempty"`
	TopN      int      `json:"top_n,omitempty"`
}

// RerankResult scores one candidate document. Index points into the request's
// Documents slice.
type RerankResult struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

type RerankResponse struct {
	Results []RerankResult `json:"results"`
}

// Example is one labeled training text for example-based classification.
type Example struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type ClassifyRequest struct {
	Inputs   []string  `json:"inputs"`
	Examples []Example `json:"examples"`
	Model    string    `json:"model,omitempty"`
}

// Classification is the prediction for one input. Prediction and Confidence
// are pointers so an absent field is distinguishable from a zero value.
type Classification struct {
	Input      string   `json:"input"`
	Prediction *string  `json:"prediction"`
	Confidence *float64 `json:"confidence"`
}

type ClassifyResponse struct {
	Classifications []Classification `json:"classifications"`
}
