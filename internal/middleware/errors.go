package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Handlers never write error bodies themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := Translate(c.Errors.Last().Err)
		if err.Kind == apperr.KindInternal {
			log.Printf("❌ [%s] %s %s: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, err.Err)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(err.Status(), gin.H{"msg": err.Message()})
	}
}

// Recovery turns a panic into the same opaque 500 body as any other
// unclassified error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("❌ [%s] panic serving %s %s: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": apperr.Internal(nil).Message()})
	})
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	_ = c.Error(apperr.NotFound(""))
}
