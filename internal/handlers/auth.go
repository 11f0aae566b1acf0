package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const loginFailedMessage = "Usuário ou senha inválidos"

func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

// Login valida as credenciais e abre a sessão. Usuário desconhecido e senha
// errada produzem exatamente a mesma resposta.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.store.FindUser(username)
	if err != nil || user == nil ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{"error": loginFailedMessage})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
