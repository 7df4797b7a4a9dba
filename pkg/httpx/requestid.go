package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"grouporder/pkg/ctxmeta"
)

// RequestIDTransport — http.RoundTripper для исходящих запросов к Order Service:
// - берёт request_id из контекста запроса или генерирует UUID;
// - проставляет заголовок X-Request-ID;
// - делегирует вложенному транспорту (по умолчанию http.DefaultTransport).
type RequestIDTransport struct {
	Next http.RoundTripper
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}

	requestID, ok := ctxmeta.RequestIDFromContext(req.Context())
	if !ok {
		requestID = uuid.New().String()
	}

	// Клонируем: RoundTripper не должен мутировать исходный запрос.
	clone := req.Clone(ctxmeta.WithRequestID(req.Context(), requestID))
	clone.Header.Set("X-Request-ID", requestID)

	return next.RoundTrip(clone)
}

// RequestIDMiddleware — серверная сторона той же договорённости (stub-сервер):
// принимает X-Request-ID от клиента или генерирует UUID, кладёт в контекст
// и возвращает в ответном заголовке.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
