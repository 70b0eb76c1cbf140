package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionSettings = "settings"
	actionReset    = "reset"
	actionSpecies  = "species"
	actionProgress = "progress"
)

// Quiz sub-actions.
const (
	quizAnswer = "ans"
	quizNext   = "next"
	quizStart  = "start"
)

// Settings sub-actions.
const (
	settingsQuestionType = "qt"
	settingsAnswerFormat = "af"
)

// Reset sub-actions.
const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// Species sub-actions.
const (
	speciesPage = "page"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates the callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses a callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildAnswerCallback builds callback data for answering with the
// option at the given index of the current question.
func buildAnswerCallback(questionID string, index int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, questionID, strconv.Itoa(index)},
	}.encode()
}

func buildNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

func buildToggleTypeCallback(t string) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsQuestionType, t},
	}.encode()
}

func buildToggleFormatCallback(f string) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsAnswerFormat, f},
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

func buildSpeciesPageCallback(page int) string {
	return callbackData{
		Action: actionSpecies,
		Params: []string{speciesPage, strconv.Itoa(page)},
	}.encode()
}

func buildProgressCallback() string {
	return actionProgress
}
