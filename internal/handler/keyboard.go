package handler

import (
	"wordtrainer/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const buttonsPerRow = 2

// Reply keyboard labels of the menu commands
var commandLabels = map[domain.Command]string{
	domain.CommandNext:       "Следующее слово ➡️",
	domain.CommandAddWord:    "Добавить слово ➕",
	domain.CommandDeleteWord: "Удалить слово 🔙",
}

// buildKeyboard renders the answer choices followed by the commands as a reply keyboard.
// It returns nil when the response carries no keyboard.
func buildKeyboard(resp domain.Response) *tele.ReplyMarkup {
	if !resp.HasKeyboard() {
		return nil
	}

	labels := make([]string, 0, len(resp.Choices)+len(resp.Commands))
	labels = append(labels, resp.Choices...)
	for _, cmd := range resp.Commands {
		if label, ok := commandLabels[cmd]; ok {
			labels = append(labels, label)
		}
	}

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	var rows []tele.Row
	for i := 0; i < len(labels); i += buttonsPerRow {
		end := i + buttonsPerRow
		if end > len(labels) {
			end = len(labels)
		}
		var buttons []tele.Btn
		for _, label := range labels[i:end] {
			buttons = append(buttons, markup.Text(label))
		}
		rows = append(rows, markup.Row(buttons...))
	}
	markup.Reply(rows...)
	return markup
}
