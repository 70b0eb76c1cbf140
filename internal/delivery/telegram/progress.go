package telegram

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
	"github.com/myra/bird-quiz-bot/internal/service"
)

const (
	hardestMinAttempts = 3
	hardestLimit       = 5
)

func (h *Handler) handleProgressCommand(ctx context.Context, chatID, userID int64) {
	// Prefer the live session's progress; fall back to the store when
	// the user has not played this session.
	var progress entities.Progress
	if m := h.sessions.Get(chatID); m != nil {
		progress = m.Progress()
	} else {
		p, err := h.progressService.GetOrCreate(ctx, userID)
		if err != nil {
			h.logger.Error("failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
			h.send(newHTMLMessage(chatID, msgProgressUnavailable))
			return
		}
		progress = p
	}

	h.send(newHTMLMessage(chatID, h.buildProgressView(progress)))
}

func (h *Handler) buildProgressView(p entities.Progress) string {
	var sb strings.Builder
	sb.WriteString("<b>📊 Your progress</b>\n\n")

	if p.Total == 0 {
		sb.WriteString("No questions answered yet. Start with /quiz!")
		return sb.String()
	}

	sb.WriteString(buildProgressBar(p.Correct, p.Total, 20))
	sb.WriteString(fmt.Sprintf(
		"\n\n✅ <b>Correct:</b> %d / %d (%d%%)\n",
		p.Correct, p.Total, p.Accuracy,
	))
	sb.WriteString(fmt.Sprintf(
		"📈 <b>Last %d:</b> %d%%\n",
		len(p.Recent), p.RollingAccuracy(),
	))
	sb.WriteString(fmt.Sprintf(
		"🔥 <b>Streak:</b> %d (best %d)\n",
		p.Streak, p.MaxStreak,
	))
	sb.WriteString(fmt.Sprintf(
		"🗂 <b>Species seen:</b> %d of %d\n",
		len(p.BySpecies), h.species.Count(),
	))

	hardest := service.HardestSpecies(p, hardestMinAttempts, hardestLimit)
	if len(hardest) > 0 {
		sb.WriteString("\n<b>Hardest species:</b>\n")
		for _, r := range hardest {
			name := r.SpeciesID
			if s, err := h.species.GetByID(r.SpeciesID); err == nil {
				name = s.CommonName
			}
			sb.WriteString(fmt.Sprintf(
				"• %s — %d/%d (%.0f%%)\n",
				name, r.Stats.Correct, r.Stats.Total, r.Stats.Accuracy(),
			))
		}
	}

	if !p.LastPlayedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("\n<i>Last played: %s</i>", p.LastPlayedAt.Format("2 Jan 2006 15:04")))
	}

	return sb.String()
}
