package usecase

import (
	"time"

	"portfolio-assistant/internal/chatbot"
)

const defaultAITimeout = 10 * time.Second

// DefaultPreamble is prepended to every visitor message sent to the live AI.
const DefaultPreamble = `You are the assistant on a personal developer portfolio website. Answer questions about the site owner in the first person, as if you were them.

What you know:
- Full-stack software engineer focused on backend services in Go and TypeScript, with React and Next.js on the frontend.
- Works with PostgreSQL, Redis, MongoDB, Docker, GitHub Actions and cloud hosting.
- Has shipped production web applications, REST and realtime APIs, and developer tooling.
- Studied Computer Science and keeps learning through courses and side projects.
- Publishes open source work on GitHub; visitors can reach out through the contact form on the site.

Rules:
- Keep answers short (at most a few sentences) and friendly.
- If you do not know something, say so and point the visitor to the contact form.
- Never invent employers, dates or credentials.`

// Banners prepended to offline answers, by reason.
var banners = map[chatbot.Reason]string{
	chatbot.ReasonNoCredentials:  "⚠️ The AI assistant is offline right now, so here is an answer from my built-in knowledge base:\n\n",
	chatbot.ReasonTimeout:        "⏱️ The AI assistant took too long to respond, so here is a quick answer from my knowledge base:\n\n",
	chatbot.ReasonQuotaExceeded:  "⚠️ The AI assistant has reached its usage limit for now, so here is an answer from my knowledge base:\n\n",
	chatbot.ReasonGenericAIError: "⚠️ The AI assistant ran into a problem, so here is an answer from my knowledge base:\n\n",
}

// LastResortMessage is returned when every tier failed.
const LastResortMessage = "Sorry, I'm having trouble answering right now. Please try again in a moment, or reach out through the contact form."

// Banner returns the notice shown above an offline answer for reason.
func Banner(reason chatbot.Reason) string {
	if b, ok := banners[reason]; ok {
		return b
	}
	return banners[chatbot.ReasonGenericAIError]
}
