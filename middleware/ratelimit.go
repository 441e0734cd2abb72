package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimit caps requests per client IP in a fixed window, counting in
// Redis. A nil client disables the limiter. Redis failures let requests
// through rather than taking the API down with them.
func RateLimit(client *redis.Client, max int, window time.Duration, log *zap.SugaredLogger) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()
		ctx := c.Request.Context()

		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warnw("rate limiter indisponível", "error", err)
			c.Next()
			return
		}

		// A negative TTL means the key has no expiry: either it was just
		// created, or a previous Expire never landed. Re-arm the window in
		// both cases so the counter can never outlive it.
		if ttl.Val() < 0 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				log.Warnw("falha ao definir janela do rate limiter", "error", err)
			}
		}

		if count := incr.Val(); count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Muitas tentativas, tente novamente em 15 minutos.",
			})
			return
		}

		c.Next()
	}
}
