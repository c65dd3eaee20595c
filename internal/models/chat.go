package models

// ChatPart is a single text fragment of a chat message.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatMessage is one turn of the conversation history.
type ChatMessage struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatRequest represents the JSON body sent to the chatbot
// swagger:model ChatRequest
type ChatRequest struct {
	// User message
	// required: true
	// example: hi
	Message string `json:"message"`

	// Previous turns, accepted but not used to build the reply
	ChatHistory []ChatMessage `json:"chatHistory"`
}

// ChatResponse represents the chatbot reply
// swagger:model ChatResponse
type ChatResponse struct {
	// Reply text
	// example: Hello there! How can I assist you today?
	Text string `json:"text"`
}
