package usecase

import "task-assistant/internal/classifier"

// Canned conversational replies. These are template-based on purpose: chat
// turns never touch the LLM, so responses are instant and deterministic.
const (
	greetingReply = "👋 Hello! I'm your task assistant.\n\n" +
		"I can help you:\n" +
		"- **Create tasks**: Just describe what you need to do\n" +
		"- **View tasks**: Ask \"what tasks do I have?\" or \"show tasks due today\"\n" +
		"- **Organize**: I'll auto-label tasks and set priorities\n\n" +
		"What would you like to do?"

	capabilityReply = "**I'm here to make task management effortless!** ✨\n\n" +
		"**Create Tasks**\n" +
		"Just tell me what you need to do:\n" +
		"- \"Buy groceries tomorrow\"\n" +
		"- \"Call dentist at 2pm\"\n" +
		"- \"Review project proposal\"\n\n" +
		"**View Tasks**\n" +
		"Ask me to show your tasks:\n" +
		"- \"What tasks do I have?\"\n" +
		"- \"Show tasks due today\"\n" +
		"- \"List tasks labeled work\"\n\n" +
		"I'll automatically infer priorities, due dates, and labels to keep you organized!"

	emptyInputReply = "Tell me what you need to get done, or ask to see your current tasks."
)

// chatReply picks the canned response for a chat-mode pattern.
func chatReply(pattern string) string {
	switch pattern {
	case classifier.PatternCapability:
		return capabilityReply
	case classifier.PatternEmpty:
		return emptyInputReply
	default:
		return greetingReply
	}
}
