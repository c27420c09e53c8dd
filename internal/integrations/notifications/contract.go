package notifications

import "context"

// Publisher отправляет сообщение в брокер
type Publisher interface {
	PublishJSON(ctx context.Context, key, messageID string, v any) error
}

// Metrics счётчик опубликованных событий
type Metrics interface {
	ObserveEvent(routingKey string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
