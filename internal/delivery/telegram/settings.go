package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

func (h *Handler) handleSettingsCommand(ctx context.Context, chatID, userID int64) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgSettingsUnavailable))
		return
	}

	text, kb := buildSettingsView(settings)
	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

// buildSettingsView renders the settings text and toggle keyboard.
func buildSettingsView(s *entities.QuizSettings) (string, tgbotapi.InlineKeyboardMarkup) {
	text := "<b>⚙️ Quiz settings</b>\n\n" +
		"Tap to enable or disable question types and answer formats.\n" +
		"Changes apply to the current question immediately."

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entities.AllQuestionTypes)+len(entities.AllAnswerFormats))

	for _, t := range entities.AllQuestionTypes {
		label := checkMark(s.QuestionTypeEnabled(t)) + " " + questionTypeLabel(t)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildToggleTypeCallback(string(t))),
		))
	}

	for _, f := range entities.AllAnswerFormats {
		label := checkMark(s.AnswerFormatEnabled(f)) + " Answers: " + answerFormatLabel(f)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildToggleFormatCallback(string(f))),
		))
	}

	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func checkMark(on bool) string {
	if on {
		return "✅"
	}
	return "☐"
}

func questionTypeLabel(t entities.QuestionType) string {
	switch t {
	case entities.QuestionPhoto:
		return "Photo → name"
	case entities.QuestionAudio:
		return "Sound → name"
	case entities.QuestionPhotoAudio:
		return "Photo + sound → name"
	case entities.QuestionNameMedia:
		return "Name → media"
	case entities.QuestionMixed:
		return "Mixed prompts"
	default:
		return string(t)
	}
}

func answerFormatLabel(f entities.AnswerFormat) string {
	switch f {
	case entities.FormatText:
		return "names"
	case entities.FormatPhoto:
		return "photos"
	case entities.FormatAudio:
		return "sounds"
	case entities.FormatMixed:
		return "mixed"
	default:
		return string(f)
	}
}
