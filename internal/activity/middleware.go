package activity

import (
	"trip-platform/internal/auth"
	"trip-platform/internal/identity"
	"trip-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware runs the activity pipeline around every classified request:
// best-effort identity resolution, case allocation, pre-phase event post,
// handler execution, post-phase event patch.
//
// Requests whose route never opted into the table pass through untouched.
// The resolved identity is shared with downstream middlewares via the request
// context, so the strict auth middleware does not resolve twice.
func Middleware(table *Table, alloc *Allocator, rec *Recorder, a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, ok := table.Lookup(c.Request.Method, c.FullPath())
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logger.FromGin(c)

		// Lenient resolution: any failure here means anonymous, never a 401.
		var idrec *identity.Record
		if r, err := a.Authenticate(ctx, c.GetHeader("Authorization")); err == nil {
			idrec = &r
			c.Request = c.Request.WithContext(auth.WithIdentity(ctx, r))
			ctx = c.Request.Context()
		}

		caseID := alloc.CaseID(c, idrec)

		ev := rec.Begin(ctx, log, caseID, route, idrec)

		c.Next()

		if ev != nil {
			rec.Complete(ctx, log, ev, c.Writer.Status())
		}
	}
}
