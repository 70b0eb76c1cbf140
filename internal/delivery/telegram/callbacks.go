package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
	"github.com/myra/bird-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, chatID, userID, data)
	case actionSettings:
		h.handleSettingsCallback(ctx, cb, chatID, userID, data)
	case actionReset:
		h.handleResetCallback(ctx, cb, chatID, userID, data)
	case actionSpecies:
		h.handleSpeciesCallback(cb, data)
	case actionProgress:
		h.answerCallback(cb.ID, "")
		h.handleProgressCommand(ctx, chatID, userID)
	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID, userID int64, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	m, err := h.machineFor(ctx, chatID, userID)
	if err != nil {
		h.logger.Error("failed to get quiz session", zap.Int64("user_id", userID), zap.Error(err))
		h.answerCallback(cb.ID, "")
		h.send(newHTMLMessage(chatID, msgQuizUnavailable))
		return
	}

	switch data.Params[0] {
	case quizStart, quizNext:
		h.answerCallback(cb.ID, "")

		q := m.Question()
		if q == nil || m.Answered() {
			q = m.Next()
		}
		if q == nil {
			h.send(newHTMLMessage(chatID, msgNoQuestion))
			return
		}
		h.sendQuestion(chatID, q)

	case quizAnswer:
		h.handleAnswer(ctx, cb, chatID, userID, m, data)

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleAnswer(
	ctx context.Context,
	cb *tgbotapi.CallbackQuery,
	chatID, userID int64,
	m *service.QuizMachine,
	data callbackData,
) {
	if len(data.Params) < 3 {
		h.answerCallback(cb.ID, "")
		return
	}
	questionID := data.Params[1]
	index, err := strconv.Atoi(data.Params[2])
	if err != nil {
		h.answerCallback(cb.ID, "")
		return
	}

	q := m.Question()
	if q == nil || q.ID != questionID || index < 0 || index >= len(q.Options) {
		// Stale button from an already advanced question.
		h.answerCallback(cb.ID, "")
		return
	}

	rec, ok := m.Answer(q.Options[index].SpeciesID)
	if !ok {
		h.answerCallback(cb.ID, "")
		return
	}

	if rec.Correct {
		h.answerCallback(cb.ID, "✅")
	} else {
		h.answerCallback(cb.ID, "❌")
	}

	if err := h.progressService.Save(ctx, m.Progress()); err != nil {
		h.logger.Error("failed to save progress",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	h.sendAnswerResult(chatID, q, rec.Correct, m.Progress())
}

func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID, userID int64, data callbackData) {
	if len(data.Params) < 2 {
		h.answerCallback(cb.ID, "")
		return
	}

	var (
		settings *entities.QuizSettings
		err      error
	)

	switch data.Params[0] {
	case settingsQuestionType:
		settings, err = h.settingsService.ToggleQuestionType(ctx, userID, entities.QuestionType(data.Params[1]))
	case settingsAnswerFormat:
		settings, err = h.settingsService.ToggleAnswerFormat(ctx, userID, entities.AnswerFormat(data.Params[1]))
	default:
		h.answerCallback(cb.ID, "")
		return
	}

	switch {
	case errors.Is(err, entities.ErrNoQuestionTypes):
		h.answerCallback(cb.ID, msgLastTypeEnabled)
		return
	case errors.Is(err, entities.ErrNoAnswerFormats):
		h.answerCallback(cb.ID, msgLastFormatEnabled)
		return
	case err != nil:
		h.logger.Error("failed to toggle settings", zap.Int64("user_id", userID), zap.Error(err))
		h.answerCallback(cb.ID, "")
		h.send(newHTMLMessage(chatID, msgSettingsUnavailable))
		return
	}

	h.answerCallback(cb.ID, "")

	// Settings take effect mid-session: an active question is
	// regenerated under the new settings right away.
	if m := h.sessions.Get(chatID); m != nil {
		hadQuestion := m.Question() != nil && !m.Answered()
		m.UpdateSettings(settings)
		if hadQuestion {
			if q := m.Question(); q != nil {
				h.sendQuestion(chatID, q)
			} else {
				h.send(newHTMLMessage(chatID, msgNoQuestion))
			}
		}
	}

	// Refresh the settings keyboard in place.
	text, kb := buildSettingsView(settings)
	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = &kb
	h.send(edit)
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID, userID int64, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, msgResetCancelled)
	edit.ParseMode = tgbotapi.ModeHTML

	switch data.Params[0] {
	case resetConfirm:
		if err := h.resetService.ResetUser(ctx, userID); err != nil {
			h.logger.Error("failed to reset user", zap.Int64("user_id", userID), zap.Error(err))
			h.answerCallback(cb.ID, "")
			h.send(newHTMLMessage(chatID, msgInternalError))
			return
		}

		// Bring the in-memory session in line with the wiped state.
		if m := h.sessions.Get(chatID); m != nil {
			m.SetProgress(entities.NewProgress(userID))
			m.UpdateSettings(entities.NewQuizSettings(userID))
			m.Reset()
		}

		edit.Text = msgResetDone

	case resetCancel:
		// Keep the cancellation text.

	default:
		h.answerCallback(cb.ID, "")
		return
	}

	h.answerCallback(cb.ID, "")
	h.send(edit)
}

func (h *Handler) handleSpeciesCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) < 2 || data.Params[0] != speciesPage {
		h.answerCallback(cb.ID, "")
		return
	}

	page, err := strconv.Atoi(data.Params[1])
	if err != nil || page < 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	h.answerCallback(cb.ID, "")

	text, kb := h.buildSpeciesPage(page)
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	h.send(edit)
}
