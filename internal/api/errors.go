package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Error — ошибка Order Service с расшифрованным телом.
// Сервис отвечает одним из трёх форматов:
//   - {"detail": "..."}  — аутентификация, права, 404;
//   - {"error": "..."}   — доменные отказы статусных ручек;
//   - {"field": ["msg"]} — ошибки валидации по полям.
type Error struct {
	Endpoint   string
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %d: %s", e.Endpoint, e.StatusCode, e.Detail)
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msgs := range e.Fields {
			parts = append(parts, field+": "+strings.Join(msgs, "; "))
		}
		sort.Strings(parts)
		return fmt.Sprintf("%s: %d: %s", e.Endpoint, e.StatusCode, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %d", e.Endpoint, e.StatusCode)
}

// IsNotFound — заказ (или другая сущность) не найден либо недоступен.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized — токен отсутствует, истёк или отвергнут.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// decodeError — разбирает тело неуспешного ответа в *Error.
// Неразбираемое тело не фатально: остаётся голый статус-код.
func decodeError(endpoint string, resp *http.Response) *Error {
	apiErr := &Error{Endpoint: endpoint, StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	for _, key := range []string{"detail", "error"} {
		var msg string
		if v, ok := raw[key]; ok && json.Unmarshal(v, &msg) == nil {
			apiErr.Detail = msg
			return apiErr
		}
	}

	fields := make(map[string][]string, len(raw))
	for field, v := range raw {
		var msgs []string
		if json.Unmarshal(v, &msgs) == nil {
			fields[field] = msgs
			continue
		}
		var one string
		if json.Unmarshal(v, &one) == nil {
			fields[field] = []string{one}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
