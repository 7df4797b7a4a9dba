package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"grouporder/internal/ports"
	"grouporder/pkg/ctxmeta"
)

// RequestLogger — middleware для логирования HTTP-запросов stub-сервера.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем служебные пути
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		rid, _ := ctxmeta.RequestIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request id=%s method=%s path=%s status=%d duration=%s size=%d",
			rid,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
