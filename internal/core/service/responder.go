package service

import (
	"context"
	"log/slog"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/ports"
)

const systemPrompt = `You are a friendly Shopify assistant.
- Use only real Shopify data provided in context.
- Be polite, short, and accurate.
- If user asks about orders or shipping, request the order number.
- Never invent product or tracking details.`

// FallbackReply is returned whenever context assembly or the completion call
// fails. Chat failures degrade to this reply instead of an HTTP error.
const FallbackReply = "⚠️ Sorry, I couldn’t process that request right now."

// Assistant orchestrates one chat turn: classify, assemble context, complete.
type Assistant struct {
	store ports.Storefront
	llm   ports.Completer
}

func NewAssistant(store ports.Storefront, llm ports.Completer) *Assistant {
	return &Assistant{store: store, llm: llm}
}

// Reply answers a single user message. It never returns an error: any
// failure along the way is logged and converted into FallbackReply.
func (a *Assistant) Reply(ctx context.Context, message string) string {
	intent := Classify(message)

	prompt, err := BuildContext(ctx, intent, a.store)
	if err != nil {
		slog.ErrorContext(ctx, "context assembly failed", "intent", intent, "error", err)
		return FallbackReply
	}
	if prompt == "" {
		prompt = message
	}

	reply, err := a.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "completion failed", "intent", intent, "error", err)
		return FallbackReply
	}
	return reply
}
