package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

// RequestLogGin logs one line per request and feeds the request counter and
// duration histogram. Either metric may be nil.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec, mDuration *prometheus.HistogramVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
			body = buf.String()
			// keep the unread remainder for the handler
			c.Request.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body), c.Request.Body}
		}

		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}
		if mDuration != nil {
			mDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
				Observe(elapsed.Seconds())
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}
