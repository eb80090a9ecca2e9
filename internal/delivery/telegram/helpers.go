package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPhoto creates a photo message from a URL with a MarkdownV2 caption.
func newPhoto(chatID int64, url, caption string) tgbotapi.PhotoConfig {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdownV2
	return photo
}

// newCallbackAnswer acknowledges a callback, optionally with a toast text.
func newCallbackAnswer(callbackID, text string) tgbotapi.CallbackConfig {
	return tgbotapi.NewCallback(callbackID, text)
}

// removeKeyboard drops the inline keyboard from an already sent message.
func removeKeyboard(chatID int64, messageID int) tgbotapi.EditMessageReplyMarkupConfig {
	return tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
}
