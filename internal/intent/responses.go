package intent

// Known intent labels.
const (
	Greeting         = "greeting"
	Goodbye          = "goodbye"
	AboutFreakSearch = "about_freaksearch"
	FactCheckRequest = "fact_check_request"
)

// FallbackReply is returned for Unknown and any label without a canned reply.
const FallbackReply = "I'm sorry, I don't understand that yet. Can you please rephrase?"

var replies = map[string]string{
	Greeting:         "Hello there! How can I assist you today?",
	Goodbye:          "Goodbye! Have a great day.",
	AboutFreakSearch: "FreakSearch is a platform for verified information.",
	FactCheckRequest: "My fact-checking capabilities are currently offline.",
}

// Reply returns the canned reply for an intent label.
func Reply(label string) string {
	if reply, ok := replies[label]; ok {
		return reply
	}
	return FallbackReply
}
