package middleware

import (
	"github.com/dvpl/assetflow/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser rehidrata o usuário da sessão a cada request e o expõe no
// contexto para handlers e templates.
func InjectUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := st.FindUserByID(uid); err == nil && user != nil {
					c.Set("CurrentUser", *user)
				}
			}
		}

		c.Next()
	}
}
