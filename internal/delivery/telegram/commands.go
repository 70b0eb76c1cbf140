package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const speciesPerPage = 10

func (h *Handler) handleStartCommand(chatID int64) {
	meta := h.species.Metadata()

	text := msgWelcome + fmt.Sprintf(
		"\n\n<i>Dataset v%s · %d species</i>",
		meta.Version,
		h.species.Count(),
	)

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
	)
	h.send(msg)
}

func (h *Handler) handleQuizCommand(ctx context.Context, chatID, userID int64) {
	m, err := h.machineFor(ctx, chatID, userID)
	if err != nil {
		h.logger.Error("failed to create quiz session",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgQuizUnavailable))
		return
	}

	if h.species.Count() < 4 {
		h.send(newHTMLMessage(chatID, msgNotEnoughSpecies))
		return
	}

	q := m.Question()
	if q == nil || m.Answered() {
		q = m.Next()
	}
	if q == nil {
		h.send(newHTMLMessage(chatID, msgNoQuestion))
		return
	}

	h.sendQuestion(chatID, q)
}

func (h *Handler) handleRandomCommand(chatID int64) {
	s := h.species.GetRandom()
	h.sendSpeciesCard(chatID, s)
}

func (h *Handler) handleSpeciesCommand(chatID int64) {
	text, kb := h.buildSpeciesPage(0)
	msg := newHTMLMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	h.send(msg)
}

func (h *Handler) handleBirdCommand(chatID int64, args string) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	all := h.species.GetAll()
	if err != nil || n < 1 || n > len(all) {
		h.send(newHTMLMessage(chatID, fmt.Sprintf(
			"Usage: /bird N, where N is 1–%d (see /species).", len(all),
		)))
		return
	}

	h.sendSpeciesCard(chatID, all[n-1])
}

func (h *Handler) handleResetCommand(chatID int64) {
	msg := newHTMLMessage(chatID, msgResetConfirm)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, reset", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
	h.send(msg)
}

// buildSpeciesPage renders one page of the species list.
func (h *Handler) buildSpeciesPage(page int) (string, *tgbotapi.InlineKeyboardMarkup) {
	all := h.species.GetAll()
	totalPages := (len(all) + speciesPerPage - 1) / speciesPerPage
	if totalPages == 0 {
		return msgNotEnoughSpecies, nil
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * speciesPerPage
	end := start + speciesPerPage
	if end > len(all) {
		end = len(all)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>🐦 Species %d–%d of %d</b>\n\n", start+1, end, len(all)))
	for i, s := range all[start:end] {
		sb.WriteString(fmt.Sprintf("%d. <b>%s</b> — <i>%s</i>\n", start+i+1, s.CommonName, s.ScientificName))
	}
	sb.WriteString("\nUse /bird N for details.")

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", buildSpeciesPageCallback(page-1)))
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", page+1, totalPages), buildSpeciesPageCallback(page),
	))
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️", buildSpeciesPageCallback(page+1)))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(row)
	return sb.String(), &kb
}
