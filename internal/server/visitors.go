package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// visitorLog writes one line per page view. Client IPs are salted and
// hashed before they reach the log, and DNT requests are not logged at all.
type visitorLog struct {
	salt   string
	logger *log.Logger
}

func newVisitorLog(salt string, logger *log.Logger) *visitorLog {
	if salt == "" {
		salt = randomToken()
	}
	return &visitorLog{salt: salt, logger: logger}
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP is consistent per IP for a given salt.
func (v *visitorLog) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + v.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (v *visitorLog) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()
		v.logger.Printf("Visit %s %s from %s (status %d, ua %q)",
			c.Request.Method, path, v.hashIP(c.ClientIP()), c.Writer.Status(), c.GetHeader("User-Agent"))
	}
}
