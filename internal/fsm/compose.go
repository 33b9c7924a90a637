package fsm

import (
	"errors"
	"fmt"

	"wordtrainer/internal/domain"
)

// Response composer. Everything here is a pure function of its arguments.

func reply(chatID int64, text string) domain.Response {
	return domain.Response{ChatID: chatID, Text: text}
}

func menu(chatID int64, text string) domain.Response {
	return domain.Response{ChatID: chatID, Text: text, Commands: domain.MenuCommands}
}

func composeWelcome(chatID int64, name string) domain.Response {
	return reply(chatID, fmt.Sprintf(
		"Приветствую, %s!\n"+
			"Начнём учить язык 🇬🇧\n"+
			"Тренажёр можно собирать как конструктор: пополняй свою базу слов.\n"+
			"Для этого есть инструменты:\n"+
			"- добавить слово ➕\n"+
			"- удалить слово 🔙\n"+
			"Приступим ⬇️",
		name,
	))
}

func composeQuiz(chatID int64, st domain.AwaitingAnswer) domain.Response {
	return domain.Response{
		ChatID:   chatID,
		Text:     fmt.Sprintf("Выбери перевод слова:\n🇷🇺 %s", st.Translation),
		Choices:  st.Options,
		Commands: domain.MenuCommands,
	}
}

func composeInsufficientWords(chatID int64) domain.Response {
	return menu(chatID, "Нет доступных слов!\nДобавьте новые через 'Добавить слово ➕'.")
}

func composeAskNewWord(chatID int64) domain.Response {
	return reply(chatID, "Введите слово, которое вы хотите добавить, на английском:")
}

func composeEmptyWord(chatID int64) domain.Response {
	return reply(chatID, "Слово не может быть пустым. Пожалуйста, введите слово.")
}

// composeRejectedWord re-prompts for a target word that failed validation
func composeRejectedWord(chatID int64, err error) domain.Response {
	switch {
	case errors.Is(err, domain.ErrWordTooLong):
		return reply(chatID, fmt.Sprintf(
			"Слово слишком длинное: не больше %d символов. Пожалуйста, введите слово покороче.", domain.MaxWordLength))
	case errors.Is(err, domain.ErrInvalidWord):
		return reply(chatID,
			"Слово может содержать только буквы, цифры, пробелы, дефис и апостроф. Пожалуйста, введите другое слово.")
	}
	return composeEmptyWord(chatID)
}

func composeAskTranslation(chatID int64, target string) domain.Response {
	return reply(chatID, fmt.Sprintf("Теперь введите перевод для слова '%s':", target))
}

func composeEmptyTranslation(chatID int64) domain.Response {
	return reply(chatID, "Перевод не может быть пустым. Пожалуйста, введите перевод.")
}

func composeRejectedTranslation(chatID int64, err error) domain.Response {
	if errors.Is(err, domain.ErrWordTooLong) {
		return reply(chatID, fmt.Sprintf(
			"Перевод слишком длинный: не больше %d символов. Пожалуйста, введите перевод покороче.", domain.MaxWordLength))
	}
	return composeEmptyTranslation(chatID)
}

func composeDuplicate(chatID int64, target string) domain.Response {
	return menu(chatID, fmt.Sprintf("Слово '%s' уже есть в словаре. Выберите дальнейшее действие:", target))
}

func composeWordAdded(chatID int64, w *domain.UserWord) domain.Response {
	return menu(chatID, fmt.Sprintf("Слово '%s' и его перевод '%s' успешно добавлены!", w.Target, w.Translation))
}

func composeAskDelete(chatID int64) domain.Response {
	return reply(chatID, "Введите слово, которое хотите удалить, на английском:")
}

func composeDeleted(chatID int64, w *domain.UserWord) domain.Response {
	return menu(chatID, fmt.Sprintf("Слово '%s' успешно удалено из вашего словаря!", w.Target))
}

func composeNotFound(chatID int64) domain.Response {
	return menu(chatID, "Слово не найдено в вашем персональном словаре.")
}

func composeCorrect(chatID int64, st domain.AwaitingAnswer) domain.Response {
	return menu(chatID, fmt.Sprintf("✅ Правильно!\n%s => %s!", st.Target, st.Translation))
}

func composeWrong(chatID int64, st domain.AwaitingAnswer) domain.Response {
	return domain.Response{
		ChatID: chatID,
		Text: fmt.Sprintf("❌ Неправильно! Попробуй снова.\nПеревод слова: %s\nПопытка %d из %d.",
			st.Translation, st.Attempts, domain.MaxAttempts),
		Choices:  st.Options,
		Commands: domain.MenuCommands,
	}
}

func composeRevealed(chatID int64, st domain.AwaitingAnswer) domain.Response {
	return menu(chatID, fmt.Sprintf("К сожалению, вы исчерпали попытки.\nПравильный перевод: %s", st.Target))
}

func composeRestart(chatID int64) domain.Response {
	return reply(chatID, "Ошибка! Начните заново со /start.")
}

func composeTryAgain(chatID int64) domain.Response {
	return reply(chatID, "Сервис временно недоступен. Попробуйте ещё раз.")
}
