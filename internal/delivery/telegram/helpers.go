package telegram

import (
	"fmt"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

const descriptionLimit = 600

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// mediaFile resolves a media key to Telegram file data: cached keys
// are relative paths under the media directory, everything else is a
// remote URL passed through.
func (h *Handler) mediaFile(key string) tgbotapi.RequestFileData {
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return tgbotapi.FileURL(key)
	}
	return tgbotapi.FilePath(filepath.Join(h.mediaDir, key))
}

// speciesCard formats a species info card.
func speciesCard(s *entities.Species) string {
	desc := s.Description
	if len(desc) > descriptionLimit {
		desc = desc[:descriptionLimit] + "…"
	}

	return fmt.Sprintf(
		"<b>%s</b>\n<i>%s</i>\n\n%s\n\n📍 %s · 📷 %d · 🔊 %d",
		s.CommonName,
		s.ScientificName,
		desc,
		s.Region,
		len(s.Photos),
		len(s.Recordings),
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}
