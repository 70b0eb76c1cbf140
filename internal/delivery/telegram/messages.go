// messages.go contains message templates for Telegram.

package telegram

// Error and status messages.
const (
	msgNoQuestion = "Could not generate a question with the current settings.\n" +
		"Try enabling more question types or answer formats in /settings, then hit Next again."
	msgNotEnoughSpecies    = "The dataset does not contain enough species for a quiz (at least 4 are needed)."
	msgQuizUnavailable     = "Could not start the quiz. Please try again later."
	msgProgressUnavailable = "Could not load your progress. Please try again later."
	msgSettingsUnavailable = "Could not load your settings. Please try again later."
	msgInternalError       = "Something went wrong. Please try again later."
	msgUnknownCommand      = "Unknown command. Available commands:\n\n" +
		"/quiz — start or continue the quiz\n" +
		"/random — show a random bird\n" +
		"/species — browse all species\n" +
		"/progress — show your stats\n" +
		"/settings — question types and answer formats\n" +
		"/reset — reset settings and progress"
	msgLastTypeEnabled   = "At least one question type must stay enabled."
	msgLastFormatEnabled = "At least one answer format must stay enabled."
	msgResetDone         = "Settings and progress have been reset."
	msgResetCancelled    = "Reset cancelled. Nothing was changed."
	msgResetConfirm      = "Reset all settings to defaults and erase your progress?\nThis cannot be undone."
)

const msgWelcome = "<b>🐦 Bird Quiz</b>\n\n" +
	"Learn to recognize North American birds by sight and sound.\n\n" +
	"You will see a photo or hear a recording and pick the right species " +
	"out of four. Question types and answer formats are configurable in /settings.\n\n" +
	"/quiz — start playing\n" +
	"/random — look at a random bird first\n" +
	"/progress — accuracy, streaks and your hardest species"

const msgHelp = "<b>Commands</b>\n\n" +
	"/quiz — start or continue the quiz\n" +
	"/random — show a random bird with photo and description\n" +
	"/species — browse the species list\n" +
	"/bird N — show species number N from the list\n" +
	"/progress — your stats\n" +
	"/settings — enable or disable question types and answer formats\n" +
	"/reset — reset settings and progress"
