package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
	"github.com/myra/bird-quiz-bot/internal/service"
	"github.com/myra/bird-quiz-bot/internal/storage"
)

// SpeciesProvider supplies the loaded bird dataset.
type SpeciesProvider interface {
	GetAll() []*entities.Species
	GetByID(id string) (*entities.Species, error)
	GetRandom() *entities.Species
	Count() int
	Metadata() entities.DatasetMetadata
}

// ProgressService loads and stores per-user progress.
type ProgressService interface {
	GetOrCreate(ctx context.Context, userID int64) (entities.Progress, error)
	Save(ctx context.Context, p entities.Progress) error
	Reset(ctx context.Context, userID int64) (entities.Progress, error)
}

// SettingsService loads and mutates per-user quiz settings.
type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.QuizSettings, error)
	ToggleQuestionType(ctx context.Context, userID int64, t entities.QuestionType) (*entities.QuizSettings, error)
	ToggleAnswerFormat(ctx context.Context, userID int64, f entities.AnswerFormat) (*entities.QuizSettings, error)
}

// ResetService performs the transactional full reset.
type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	species         SpeciesProvider
	generator       *service.Generator
	sessions        *storage.Sessions
	progressService ProgressService
	settingsService SettingsService
	resetService    ResetService
	mediaDir        string
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	species SpeciesProvider,
	generator *service.Generator,
	sessions *storage.Sessions,
	progressService ProgressService,
	settingsService SettingsService,
	resetService ResetService,
	mediaDir string,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		species:         species,
		generator:       generator,
		sessions:        sessions,
		progressService: progressService,
		settingsService: settingsService,
		resetService:    resetService,
		mediaDir:        mediaDir,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started",
		zap.Int("species", h.species.Count()),
		zap.String("dataset_version", h.species.Metadata().Version),
	)
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start":
		h.handleStartCommand(chatID)
	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))
	case "quiz":
		h.handleQuizCommand(ctx, chatID, userID)
	case "random":
		h.handleRandomCommand(chatID)
	case "species":
		h.handleSpeciesCommand(chatID)
	case "bird":
		h.handleBirdCommand(chatID, update.Message.CommandArguments())
	case "progress":
		h.handleProgressCommand(ctx, chatID, userID)
	case "settings":
		h.handleSettingsCommand(ctx, chatID, userID)
	case "reset":
		h.handleResetCommand(chatID)
	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// machineFor returns the chat's quiz machine, creating and loading it
// on first use from persisted settings and progress.
func (h *Handler) machineFor(ctx context.Context, chatID, userID int64) (*service.QuizMachine, error) {
	return h.sessions.GetOrCreate(chatID, func() (*service.QuizMachine, error) {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		progress, err := h.progressService.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		m := service.NewQuizMachine(h.generator, settings, progress)
		m.LoadStart()
		m.LoadSuccess(h.species.GetAll())
		return m, nil
	})
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}

// answerCallback removes the user's pending "clock" on a callback,
// optionally flashing a short notice.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}
