package activity

import (
	"fmt"

	"trip-platform/internal/identity"
	"trip-platform/internal/session"
	"trip-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Allocator derives the correlation id grouping a sequence of activity
// events: user_<id> for authenticated actors, session_<key> otherwise.
//
// CaseID never fails. When the session store is unreachable an ephemeral key
// is minted locally; the cookie still makes it stable for the browser even if
// the server-side record is lost.
type Allocator struct {
	sessions   session.Store
	cookieName string
	cookieTTL  int // seconds
}

func NewAllocator(sessions session.Store, cookieName string, cookieTTLSeconds int) *Allocator {
	if cookieName == "" {
		cookieName = "sessionid"
	}
	if cookieTTLSeconds <= 0 {
		cookieTTLSeconds = 14 * 24 * 60 * 60
	}
	return &Allocator{sessions: sessions, cookieName: cookieName, cookieTTL: cookieTTLSeconds}
}

// CaseID returns the case id for this request, lazily creating a session key
// for anonymous actors.
func (a *Allocator) CaseID(c *gin.Context, rec *identity.Record) string {
	if rec != nil && rec.ID > 0 {
		return fmt.Sprintf("user_%d", rec.ID)
	}

	ctx := c.Request.Context()

	if key, err := c.Cookie(a.cookieName); err == nil && key != "" {
		if ok, err := a.sessions.Touch(ctx, key); err == nil && ok {
			return "session_" + key
		}
		// Unknown or expired key: fall through and mint a new one.
	}

	key, err := a.sessions.Create(ctx)
	if err != nil {
		key = session.NewKey()
		logger.FromGin(c).Warn("session store unavailable, using ephemeral key", "err", err)
	}
	c.SetCookie(a.cookieName, key, a.cookieTTL, "/", "", false, true)
	return "session_" + key
}
