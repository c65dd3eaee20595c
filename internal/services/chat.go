package services

//go:generate mockgen -source=chat.go -destination=mock_chat.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/freaksearch-chat/internal/intent"
	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/models"
	"github.com/sbilibin2017/freaksearch-chat/internal/repositories"
)

// IntentClassifier predicts the intent label of a message.
type IntentClassifier interface {
	Enabled() bool
	Classify(text string) string
}

// IntentCache stores previously predicted intents.
type IntentCache interface {
	Get(ctx context.Context, message string) (string, error)
	Set(ctx context.Context, message, label string) error
}

// ChatService answers chat messages with the canned reply of their intent.
type ChatService struct {
	classifier IntentClassifier
	cache      IntentCache
}

// NewChatService creates a new ChatService. cache may be nil.
func NewChatService(classifier IntentClassifier, cache IntentCache) *ChatService {
	return &ChatService{
		classifier: classifier,
		cache:      cache,
	}
}

// Reply returns the reply text for message. history is accepted for future
// context-aware replies and is not read.
func (svc *ChatService) Reply(ctx context.Context, message string, history []models.ChatMessage) string {
	label := svc.detectIntent(ctx, message)
	logger.FromContext(ctx).Infow("intent detected", "intent", label, "history_len", len(history))
	return intent.Reply(label)
}

func (svc *ChatService) detectIntent(ctx context.Context, message string) string {
	if !svc.classifier.Enabled() {
		return intent.Unknown
	}

	log := logger.FromContext(ctx)

	if svc.cache != nil {
		label, err := svc.cache.Get(ctx, message)
		if err == nil && label != "" {
			return label
		}
		if err != nil && !errors.Is(err, repositories.ErrIntentNotCached) {
			log.Warnw("failed to read intent cache", "err", err)
		}
	}

	label := svc.classifier.Classify(message)

	if svc.cache != nil && label != intent.Unknown {
		if err := svc.cache.Set(ctx, message, label); err != nil {
			log.Warnw("failed to write intent cache", "err", err)
		}
	}

	return label
}
