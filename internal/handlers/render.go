package handlers

import (
	"strings"

	"github.com/dvpl/assetflow/internal/models"
	"github.com/dvpl/assetflow/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler agrupa os handlers HTTP em torno da fachada de dados injetada.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

func New(st *store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

// Flash é uma mensagem de feedback de uma única exibição.
type Flash struct {
	Category string // success | danger | warning
	Message  string
}

// addFlash enfileira a mensagem na sessão; ela é consumida no próximo render.
func addFlash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(category + "|" + message)
	_ = sess.Save()
}

func popFlashes(c *gin.Context) []Flash {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save() // Flashes() consome; persistir a remoção

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			category, message = "success", s
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}

// render é uma casca sobre c.HTML que projeta o usuário corrente e as
// mensagens flash em todos os templates.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["CurrentUsername"] = ""
	data["CurrentUserRole"] = ""
	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.Usuario); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = string(u.Role)
		}
	}

	data["Flashes"] = popFlashes(c)

	c.HTML(status, tmpl, data)
}

// currentUser devolve o usuário que o middleware InjectUser colocou no contexto.
func currentUser(c *gin.Context) (models.Usuario, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.Usuario{}, false
	}
	u, ok := uVal.(models.Usuario)
	return u, ok
}
