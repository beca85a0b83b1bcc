package dto

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse is the wire reply. Exactly one of the fields is expected.
type ChatResponse struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ChatResult is what the chat adapter hands the form: markdown to render,
// or an error the backend wants shown as-is.
type ChatResult struct {
	Status   int
	Response string
	Error    string
}

func (r ChatResult) Reported() bool {
	return r.Error != ""
}
