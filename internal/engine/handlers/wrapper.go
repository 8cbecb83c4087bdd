package handlers

import (
	"encoding/json"
	"fmt"

	"rogue-server/pkg/api"
)

// WithPayload оборачивает типизированный обработчик: декодирует
// payload в T и прогоняет через Validate, если T его реализует.
// Ошибки декодирования и валидации не доходят до обработчика.
func WithPayload[T any](h func(ctx *Context, payload *T) (Result, error)) HandlerFunc {
	return func(ctx *Context, raw json.RawMessage) (Result, error) {
		payload := new(T)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, payload); err != nil {
				return Result{}, fmt.Errorf("decode payload: %w", err)
			}
		}
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("invalid payload: %w", err)
			}
		}
		return h(ctx, payload)
	}
}

// WithEmptyPayload оборачивает обработчик команды без данных.
// Присланный payload молча игнорируется.
func WithEmptyPayload(h func(ctx *Context) (Result, error)) HandlerFunc {
	return func(ctx *Context, _ json.RawMessage) (Result, error) {
		return h(ctx)
	}
}
