package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/repository"
	"github.com/academico/school-management-api/internal/service"
	appErrors "github.com/academico/school-management-api/pkg/errors"
)

const cacheKeyPrefix = "cache:"

type cachingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachingWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// ListCache serves GET list responses from Redis and invalidates the
// resource's entries on any write. Mutations rely on URL shape: the first
// path segment after /api names the resource.
func ListCache(cache *repository.CacheRepository, metrics *service.MetricsService, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if cache == nil {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet:
			key := cacheKeyPrefix + c.Request.URL.Path
			start := time.Now()
			cached, err := cache.Get(c.Request.Context(), key)
			if err == nil {
				metrics.RecordCacheOperation(true, time.Since(start))
				c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
				c.Abort()
				return
			}
			if !errors.Is(err, appErrors.ErrCacheMiss) {
				logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
			}
			metrics.RecordCacheOperation(false, time.Since(start))

			writer := &cachingWriter{ResponseWriter: c.Writer}
			c.Writer = writer
			c.Next()

			if writer.Status() == http.StatusOK {
				if err := cache.Set(c.Request.Context(), key, writer.body.Bytes(), ttl); err != nil {
					logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
				}
			}

		case http.MethodPost, http.MethodDelete:
			c.Next()
			if c.Writer.Status() >= 300 {
				return
			}
			pattern := cacheKeyPrefix + resourcePrefix(c.Request.URL.Path) + "*"
			if err := cache.DeleteByPattern(c.Request.Context(), pattern); err != nil {
				logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
			}

		default:
			c.Next()
		}
	}
}

// resourcePrefix trims a request path down to its /api/<resource> root so a
// write to /api/acudientes/7 clears every cached acudientes listing.
func resourcePrefix(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/")
	if trimmed == path {
		return path
	}
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return "/api/" + trimmed
}
