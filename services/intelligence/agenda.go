package ai

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Fallback texts returned instead of an error.
const (
	FallbackUnavailable = "ИИ сервис временно недоступен. Пожалуйста, заполните повестку вручную."
	FallbackEmpty       = "Не удалось сгенерировать повестку."
)

// AgendaDrafter proposes agenda text for a meeting. It never fails from the caller's view.
type AgendaDrafter interface {
	DraftAgenda(ctx context.Context, topic string, durationMinutes int) string
}

// DefaultAgendaService drafts agendas through a TextGenerator.
type DefaultAgendaService struct {
	Generator TextGenerator
	Logger    *zap.Logger
}

// NewDefaultAgendaService builds the Gemini-backed drafter. A missing key is not an
// error here: every draft then falls back and logs the missing credential.
func NewDefaultAgendaService(ctx context.Context, apiKey, model string, logger *zap.Logger) *DefaultAgendaService {
	logger = logger.With(zap.String("component", "agenda_service"))
	svc := &DefaultAgendaService{Logger: logger}

	client, err := NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		logger.Warn("agenda drafting disabled", zap.Error(err))
		return svc
	}
	svc.Generator = client
	return svc
}

func (s *DefaultAgendaService) DraftAgenda(ctx context.Context, topic string, durationMinutes int) string {
	if s.Generator == nil {
		s.Logger.Error("Gemini API error", zap.Error(ErrMissingCredential))
		return FallbackUnavailable
	}

	text, err := s.Generator.GenerateContent(ctx, AgendaPrompt(topic, durationMinutes))
	if err != nil {
		s.Logger.Error("Gemini API error", zap.Error(err), zap.String("topic", topic))
		return FallbackUnavailable
	}
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// AgendaPrompt builds the drafting instruction: short bulleted agenda, Russian, no markdown.
func AgendaPrompt(topic string, durationMinutes int) string {
	return fmt.Sprintf(
		"Составь краткую, профессиональную повестку (agenda) для рабочей встречи на тему %q, которая длится %d минут. "+
			"Используй маркированный список. Отвечай только на русском языке. "+
			"Выводи только простой текст, без символов markdown (например, без ** или ##).",
		topic, durationMinutes,
	)
}

// Close releases the underlying client when it holds one.
func (s *DefaultAgendaService) Close() error {
	if c, ok := s.Generator.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
