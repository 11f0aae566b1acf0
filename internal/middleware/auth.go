package middleware

import (
	"net/http"

	"github.com/dvpl/assetflow/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth redireciona para o login quem não tem sessão autenticada.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin barra quem não é admin: aviso via flash e redirect,
// nunca erro HTTP direto.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, _ := sess.Get("role").(string)
		if models.UserRole(roleStr) != models.RoleAdmin {
			sess.AddFlash("danger|Acesso negado: apenas o administrador pode executar esta ação.")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
