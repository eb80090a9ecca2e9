package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizSelect  = "select"
	quizConfirm = "confirm"
	quizRestart = "restart"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
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

// intParam returns the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// buildQuizSelectCallback builds callback data for picking option optionIndex of question questionIndex.
func buildQuizSelectCallback(questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSelect, strconv.Itoa(questionIndex), strconv.Itoa(optionIndex)},
	}.encode()
}

// buildQuizConfirmCallback builds callback data for the Next/Finish button.
func buildQuizConfirmCallback(questionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizConfirm, strconv.Itoa(questionIndex)},
	}.encode()
}

// buildQuizRestartCallback builds callback data for starting over.
func buildQuizRestartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizRestart},
	}.encode()
}
