package domain

// Message - одна строка игрового лога с цветом отображения.
type Message struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// MessageLog - упорядоченная лента событий, только добавление.
// Потребитель (презентационный слой) сам решает, сколько последних
// строк показывать.
type MessageLog struct {
	Messages []Message `json:"messages"`
}

// NewMessageLog создает пустой лог.
func NewMessageLog() *MessageLog {
	return &MessageLog{Messages: make([]Message, 0, 64)}
}

// Add добавляет запись в конец ленты.
func (l *MessageLog) Add(text, color string) {
	l.Messages = append(l.Messages, Message{Text: text, Color: color})
}

// Len возвращает количество записей.
func (l *MessageLog) Len() int {
	return len(l.Messages)
}

// Since возвращает записи, добавленные после позиции cursor.
func (l *MessageLog) Since(cursor int) []Message {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(l.Messages) {
		return nil
	}
	return l.Messages[cursor:]
}
