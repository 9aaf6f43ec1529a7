package prompts

// DefaultSystemPrompt is the persona used until a client supplies its own
const DefaultSystemPrompt = "You are a helpful AI assistant."

// Instructions appended to the user context depending on what the data
// fetch produced.
const (
	DataInstruction   = "Please use this data to answer the user's question according to your personality."
	ErrorInstruction  = "The API request failed, please respond accordingly."
	NoDataInstruction = "No external data available, respond based on your knowledge."
)
