package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CacheStore is the subset of a redis client the response cache needs.
type CacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEx(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
	// VaryCookies are cookies that change the response and so belong in the key.
	VaryCookies []string
}

// captureWriter keeps a copy of the body while forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf   bytes.Buffer
	limit int
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.limit <= 0 || w.buf.Len()+len(b) <= w.limit {
		w.buf.Write(b)
	} else {
		w.limit = -1 // too large, never cached
	}
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (cfg CacheConfig) withDefaults() CacheConfig {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "cache"
	}
	return cfg
}

// generationKey holds a counter that is part of every response key, so
// bumping it orphans all stored responses at once. They expire by TTL.
func generationKey(cfg CacheConfig) string {
	return cfg.Prefix + ":generation"
}

func cacheKey(cfg CacheConfig, c *gin.Context, generation int64) string {
	parts := []string{strconv.FormatInt(generation, 10), c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery}
	for _, name := range cfg.VaryCookies {
		if v, err := c.Cookie(name); err == nil {
			parts = append(parts, name+"="+v)
		}
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodePayload packs [4 bytes status][4 bytes header length][header JSON][body].
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (int, http.Header, []byte, bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status := int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header := make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// ResponseCache serves repeated GET requests from redis. Only 200 responses are stored.
// Redis errors degrade to an uncached request.
func ResponseCache(cfg CacheConfig, store CacheStore) gin.HandlerFunc {
	if !cfg.Enabled || store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	cfg = cfg.withDefaults()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx)

		generation, err := store.Get(ctx, generationKey(cfg)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Warn("Response cache generation lookup failed", slog.String("error", err.Error()))
			c.Next()
			return
		}
		key := cacheKey(cfg, c, generation)

		bs, err := store.Get(ctx, key).Bytes()
		if err == nil {
			if status, header, body, ok := decodePayload(bs); ok {
				for k, vals := range header {
					if strings.EqualFold(k, "Content-Length") || strings.EqualFold(k, requestIDHeader) {
						continue
					}
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Header("X-Cache", "HIT")
				c.Data(status, header.Get("Content-Type"), body)
				c.Abort()
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("Response cache lookup failed", slog.String("error", err.Error()))
		}

		cw := &captureWriter{ResponseWriter: c.Writer, limit: cfg.MaxBodyBytes}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() != http.StatusOK || cw.limit < 0 {
			return
		}
		header := cw.Header().Clone()
		header.Del("X-Cache")
		payload, err := encodePayload(cw.Status(), header, cw.buf.Bytes())
		if err != nil {
			return
		}
		// the request context may already be cancelled
		if err := store.SetEx(context.WithoutCancel(ctx), key, payload, cfg.TTL).Err(); err != nil {
			logger.Warn("Response cache store failed", slog.String("error", err.Error()))
		}
	}
}

// InvalidateCache drops every response cached under cfg after a successful
// write request. cfg must carry the same Prefix as the ResponseCache it clears.
func InvalidateCache(cfg CacheConfig, store CacheStore) gin.HandlerFunc {
	if !cfg.Enabled || store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	cfg = cfg.withDefaults()

	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		ctx := c.Request.Context()
		if err := store.Incr(context.WithoutCancel(ctx), generationKey(cfg)).Err(); err != nil {
			GetLoggerFromCtx(ctx).Warn("Response cache invalidation failed", slog.String("error", err.Error()))
		}
	}
}
