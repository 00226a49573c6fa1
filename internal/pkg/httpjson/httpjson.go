package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pathport/internal/generated/dto"
	"pathport/pkg/logger"
)

var ErrInvalidPathParam = errors.New("invalid path parameter")

type encodeLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// Write кодирует body в JSON, ошибку кодирования только логируем: заголовок уже отправлен
func Write(w http.ResponseWriter, log encodeLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// WriteError тело {"error": ..., "message": ...}.
// Для 5xx текст ошибки наружу не отдаем, только в лог.
func WriteError(w http.ResponseWriter, log encodeLogger, status int, err error) {
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
			logger.NewField("status", status),
		).Error("request failed")
		message = http.StatusText(status)
	}

	Write(w, log, status, dto.Error{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// Decode читает JSON тело; неизвестные поля не запрещаем
func Decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
