package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

// sendQuestion renders a question: prompt media first, then any media
// answer options as numbered messages, and finally the prompt text
// with the answer keyboard.
func (h *Handler) sendQuestion(chatID int64, q *entities.Question) {
	h.sendPromptMedia(chatID, q)

	var textOptions []string
	for i, opt := range q.Options {
		switch opt.Kind {
		case entities.OptionTextImage:
			photo := tgbotapi.NewPhoto(chatID, h.mediaFile(opt.ImageURL))
			photo.Caption = fmt.Sprintf("%d. %s", i+1, opt.Label)
			h.send(photo)
		case entities.OptionImageOnly:
			photo := tgbotapi.NewPhoto(chatID, h.mediaFile(opt.ImageURL))
			photo.Caption = fmt.Sprintf("Option %d", i+1)
			h.send(photo)
		case entities.OptionAudioOnly:
			audio := tgbotapi.NewAudio(chatID, h.mediaFile(opt.AudioURL))
			audio.Caption = fmt.Sprintf("Option %d", i+1)
			h.send(audio)
		default:
			textOptions = append(textOptions, fmt.Sprintf("%d. %s", i+1, opt.Label))
		}
	}

	var sb strings.Builder
	sb.WriteString("<b>" + q.Prompt + "</b>")
	if len(textOptions) > 0 && len(textOptions) < len(q.Options) {
		// Mixed options: list the text ones so they sit next to the
		// numbered media messages above.
		sb.WriteString("\n\n" + strings.Join(textOptions, "\n"))
	}

	msg := newHTMLMessage(chatID, sb.String())
	msg.ReplyMarkup = buildAnswerKeyboard(q)
	h.send(msg)
}

// sendPromptMedia sends the question's prompt media. The prompt text
// follows in its own message so the answer keyboard can attach to it.
func (h *Handler) sendPromptMedia(chatID int64, q *entities.Question) {
	if q.MediaURL == "" {
		return
	}

	switch q.MediaType {
	case entities.MediaPhoto:
		photo := tgbotapi.NewPhoto(chatID, h.mediaFile(q.MediaURL))
		h.send(photo)
	case entities.MediaAudio:
		audio := tgbotapi.NewAudio(chatID, h.mediaFile(q.MediaURL))
		h.send(audio)
	}

	if q.ExtraMediaURL == "" {
		return
	}

	switch q.ExtraMediaType {
	case entities.MediaPhoto:
		h.send(tgbotapi.NewPhoto(chatID, h.mediaFile(q.ExtraMediaURL)))
	case entities.MediaAudio:
		h.send(tgbotapi.NewAudio(chatID, h.mediaFile(q.ExtraMediaURL)))
	}
}

// buildAnswerKeyboard builds one button per option. Options with a
// visible label use it; media options with hidden labels show their
// option number instead.
func buildAnswerKeyboard(q *entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.HideLabel || opt.Label == "" {
			label = fmt.Sprintf("Option %d", i+1)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildAnswerCallback(q.ID, i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// sendAnswerResult reveals the outcome of an answered question.
func (h *Handler) sendAnswerResult(chatID int64, q *entities.Question, correct bool, progress entities.Progress) {
	var sb strings.Builder

	if correct {
		sb.WriteString("✅ <b>Correct!</b>\n\n")
	} else {
		sb.WriteString("❌ <b>Not quite.</b>\n\n")
	}
	sb.WriteString(fmt.Sprintf(
		"It was the <b>%s</b> (<i>%s</i>).",
		q.Species.CommonName,
		q.Species.ScientificName,
	))

	sb.WriteString(fmt.Sprintf(
		"\n\n🔥 Streak: %d · 🎯 Accuracy: %d%% (last %d: %d%%)",
		progress.Streak,
		progress.Accuracy,
		len(progress.Recent),
		progress.RollingAccuracy(),
	))

	msg := newHTMLMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next question ▶️", buildNextCallback()),
			tgbotapi.NewInlineKeyboardButtonData("📊 Progress", buildProgressCallback()),
		),
	)
	h.send(msg)
}

// sendSpeciesCard sends a species info card, with its first photo when
// one exists.
func (h *Handler) sendSpeciesCard(chatID int64, s *entities.Species) {
	text := speciesCard(s)

	if s.HasPhotos() {
		photo := tgbotapi.NewPhoto(chatID, h.mediaFile(s.Photos[0].Key()))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		h.send(photo)
		return
	}

	h.send(newHTMLMessage(chatID, text))
}
