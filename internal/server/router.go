package server

import (
	"net/http"

	"github.com/dvpl/assetflow/internal/config"
	"github.com/dvpl/assetflow/internal/handlers"
	"github.com/dvpl/assetflow/internal/middleware"
	"github.com/dvpl/assetflow/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, st *store.Store, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)
	r.LoadHTMLGlob(cfg.TemplateGlob)

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("assetflow_session", cookieStore))
	r.Use(middleware.InjectUser(st))

	h := handlers.New(st, log)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// INVENTÁRIO
	auth.GET("/", h.Index)
	auth.GET("/cadastrar", h.ShowCadastrar)
	auth.POST("/cadastrar", h.Cadastrar)
	auth.GET("/editar/:tag", h.ShowEditar)
	auth.POST("/editar/:tag", h.Editar)
	auth.GET("/excluir_ativo/:tag", h.ExcluirAtivo)
	auth.POST("/atualizar_responsavel", h.AtualizarResponsavel)
	auth.GET("/liberar_ativo/:tag", h.LiberarAtivo)

	// RELATÓRIO
	auth.GET("/relatorio/pdf", h.RelatorioPDF)

	// COLABORADORES
	auth.GET("/colaboradores", h.ListColaboradores)
	auth.GET("/colaboradores/novo", middleware.RequireAdmin(), h.ShowNovoColaborador)
	auth.POST("/colaboradores/novo", middleware.RequireAdmin(), h.NovoColaborador)
	auth.GET("/colaboradores/excluir/:id", middleware.RequireAdmin(), h.ExcluirColaborador)

	// EQUIPAMENTOS DO TÉCNICO
	auth.POST("/add_equipamento", h.AddEquipamento)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
