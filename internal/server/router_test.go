package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dvpl/assetflow/internal/config"
	"github.com/dvpl/assetflow/internal/database"
	"github.com/dvpl/assetflow/internal/models"
	"github.com/dvpl/assetflow/internal/server"
	"github.com/dvpl/assetflow/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	db, err := database.Open(filepath.Join(t.TempDir(), "inventario.db"), log)
	require.NoError(t, err)

	st := store.New(db, log)
	cfg := &config.Config{
		SessionSecret: "segredo-de-teste",
		TemplateGlob:  "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	}
	return server.NewRouter(cfg, st, log), st
}

func doRequest(r *gin.Engine, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login de %s deveria redirecionar", username)
	require.Equal(t, "/", w.Header().Get("Location"))
	return w.Result().Cookies()
}

func TestRequireAuthRedirectsToLogin(t *testing.T) {
	r, _ := newTestServer(t)

	for _, target := range []string{"/", "/cadastrar", "/colaboradores", "/relatorio/pdf"} {
		w := doRequest(r, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
}

func TestLoginFailureLeaksNothingAboutUsernames(t *testing.T) {
	r, _ := newTestServer(t)

	// senha errada para conta existente
	wrongPass := doRequest(r, http.MethodPost, "/login", url.Values{
		"username": {"admin"},
		"password": {"senha-errada"},
	}, nil)

	// conta que não existe
	unknown := doRequest(r, http.MethodPost, "/login", url.Values{
		"username": {"fantasma"},
		"password": {"qualquer"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Contains(t, wrongPass.Body.String(), "Usuário ou senha inválidos")
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestLoginLogoutFlow(t *testing.T) {
	r, _ := newTestServer(t)

	cookies := login(t, r, "admin", "admin123")

	home := doRequest(r, http.MethodGet, "/", nil, cookies)
	assert.Equal(t, http.StatusOK, home.Code)

	logout := doRequest(r, http.MethodGet, "/logout", nil, cookies)
	assert.Equal(t, http.StatusFound, logout.Code)
	assert.Equal(t, "/login", logout.Header().Get("Location"))
}

func TestCadastrarEditarExcluirFlow(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")

	w := doRequest(r, http.MethodPost, "/cadastrar", url.Values{
		"tag":    {"TEST-01"},
		"tipo":   {"Notebook"},
		"marca":  {"Dell"},
		"modelo": {"G15"},
		"serie":  {"SN123"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	ativo, err := st.GetAsset("TEST-01")
	require.NoError(t, err)
	require.NotNil(t, ativo)
	assert.Equal(t, models.StatusDisponivel, ativo.Status)

	// tag duplicada não redireciona nem cria segunda linha
	dup := doRequest(r, http.MethodPost, "/cadastrar", url.Values{
		"tag":    {"TEST-01"},
		"tipo":   {"Notebook"},
		"serie":  {"SN999"},
		"marca":  {"Dell"},
		"modelo": {"G15"},
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, dup.Code)

	ativos, err := st.ListAssets("", "")
	require.NoError(t, err)
	assert.Len(t, ativos, 1)

	edit := doRequest(r, http.MethodPost, "/editar/TEST-01", url.Values{
		"tipo":   {"Notebook"},
		"marca":  {"Dell"},
		"modelo": {"G15 5530"},
		"serie":  {"SN123"},
		"status": {"Em Uso"},
	}, cookies)
	require.Equal(t, http.StatusFound, edit.Code)

	ativo, err = st.GetAsset("TEST-01")
	require.NoError(t, err)
	require.NotNil(t, ativo)
	assert.Equal(t, "G15 5530", ativo.Modelo)
	assert.Equal(t, models.StatusEmUso, ativo.Status)

	del := doRequest(r, http.MethodGet, "/excluir_ativo/TEST-01", nil, cookies)
	require.Equal(t, http.StatusFound, del.Code)

	ativo, err = st.GetAsset("TEST-01")
	require.NoError(t, err)
	assert.Nil(t, ativo)
}

func TestAtualizarResponsavelForcesEmUso(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")
	require.True(t, st.CreateAsset("TEST-01", "Notebook", "Dell", "G15", "SN123"))

	w := doRequest(r, http.MethodPost, "/atualizar_responsavel", url.Values{
		"tag":         {"TEST-01"},
		"responsavel": {"Carlos Pluma"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	ativo, err := st.GetAsset("TEST-01")
	require.NoError(t, err)
	require.NotNil(t, ativo)
	assert.Equal(t, models.StatusEmUso, ativo.Status)
	require.NotNil(t, ativo.ResponsavelAtual)
	assert.Equal(t, "Carlos Pluma", *ativo.ResponsavelAtual)
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")

	admin, err := st.FindUser("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)

	w := doRequest(r, http.MethodGet, "/colaboradores/excluir/"+itoa(admin.ID), nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/colaboradores", w.Header().Get("Location"))

	// a conta continua lá
	still, err := st.FindUser("admin")
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestAdminDeletesOtherAccount(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")
	require.True(t, st.CreateUser("tech1", "p@ss", models.RoleTecnico))

	tech, err := st.FindUser("tech1")
	require.NoError(t, err)
	require.NotNil(t, tech)

	w := doRequest(r, http.MethodGet, "/colaboradores/excluir/"+itoa(tech.ID), nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	gone, err := st.FindUser("tech1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestTecnicoBlockedFromAdminRoutes(t *testing.T) {
	r, st := newTestServer(t)
	require.True(t, st.CreateUser("tech1", "p@ss", models.RoleTecnico))
	cookies := login(t, r, "tech1", "p@ss")

	for _, target := range []string{"/colaboradores/novo", "/colaboradores/excluir/1"} {
		w := doRequest(r, http.MethodGet, target, nil, cookies)
		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.Equal(t, "/", w.Header().Get("Location"), target)
	}
}

func TestNovoColaboradorDuplicado(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")

	w := doRequest(r, http.MethodPost, "/colaboradores/novo", url.Values{
		"username": {"tech1"},
		"password": {"p@ss"},
		"role":     {"tecnico"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/colaboradores", w.Header().Get("Location"))

	dup := doRequest(r, http.MethodPost, "/colaboradores/novo", url.Values{
		"username": {"tech1"},
		"password": {"outra"},
		"role":     {"admin"},
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, dup.Code)

	user, err := st.FindUser("tech1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleTecnico, user.Role)
}

func TestAddEquipamentoUsesSessionIdentity(t *testing.T) {
	r, st := newTestServer(t)
	require.True(t, st.CreateUser("tech1", "p@ss", models.RoleTecnico))
	cookies := login(t, r, "tech1", "p@ss")

	w := doRequest(r, http.MethodPost, "/add_equipamento", url.Values{
		"nome_equipamento": {"Leitor de código"},
		"tipo":             {"Coletor"},
		"patrimonio":       {"PAT-100"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	tech, err := st.FindUser("tech1")
	require.NoError(t, err)
	require.NotNil(t, tech)

	equipamentos, err := st.ListAssignmentsForUser(tech.ID)
	require.NoError(t, err)
	require.Len(t, equipamentos, 1)
	assert.Equal(t, tech.ID, equipamentos[0].ResponsavelID)
}

func TestRelatorioPDFStreams(t *testing.T) {
	r, st := newTestServer(t)
	cookies := login(t, r, "admin", "admin123")
	require.True(t, st.CreateAsset("TEST-01", "Notebook", "Dell", "G15", "SN123"))

	w := doRequest(r, http.MethodGet, "/relatorio/pdf?tipo=note", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_ativos.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestHealthcheckIsPublic(t *testing.T) {
	r, _ := newTestServer(t)
	w := doRequest(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
