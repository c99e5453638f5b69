package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	apphttp "github.com/JuanF88/sistema-CGCAI-sub001/internal/interfaces/http"
	pkgjwt "github.com/JuanF88/sistema-CGCAI-sub001/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testAuthUserID = "00000000-0000-0000-0000-000000000001"
	testEmail      = "auditor@universidad.edu.co"
	testExpMin     = 60
)

// fakeResolver resuelve auth_user_id → fila de usuarios en memoria.
type fakeResolver struct {
	usuarios map[string]*entity.Usuario
	err      error
}

func (f *fakeResolver) GetByAuthUserID(_ context.Context, authUserID string) (*entity.Usuario, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.usuarios[authUserID], nil
}

// buildTestApp construye una aplicación Fiber mínima con la cadena completa
// del guard: AuthMiddleware → LoadUsuario → RequireRole → handler dummy.
func buildTestApp(resolver *fakeResolver, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.LoadUsuario(resolver),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// resolverConRol registra un usuario activo con el rol indicado bajo testAuthUserID.
func resolverConRol(rol string) *fakeResolver {
	return &fakeResolver{usuarios: map[string]*entity.Usuario{
		testAuthUserID: {
			ID:         "u1",
			Email:      testEmail,
			Rol:        rol,
			Estado:     entity.EstadoActivo,
			AuthUserID: testAuthUserID,
		},
	}}
}

// tokenValido genera un access token equivalente al del proveedor.
func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testAuthUserID, testEmail, testExpMin)
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(resolverConRol(entity.RolAdmin), entity.RolAdmin)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RolAdmin, body["rol"], "el rol debe ser admin")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_GestorAccedeRutaAdminOGestor(t *testing.T) {
	app := buildTestApp(resolverConRol(entity.RolGestor), entity.RolAdmin, entity.RolGestor)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gestor debe poder acceder a ruta que permite admin o gestor")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_VisorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(resolverConRol(entity.RolVisor), entity.RolAdmin)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"visor no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: Sesión válida sin fila en usuarios → HTTP 401 MISSING_ROLE.
// El guard carga nil sin error; es RequireRole quien rechaza.
func TestRequireRole_SesionSinFila_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeResolver{usuarios: map[string]*entity.Usuario{}}, entity.RolAdmin)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sesión sin fila de usuario debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 3b: Fila existente pero sin rol asignado → HTTP 401 MISSING_ROLE.
func TestRequireRole_UsuarioSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(resolverConRol(""), entity.RolAdmin)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(resolverConRol(entity.RolAdmin), entity.RolAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(resolverConRol(entity.RolAdmin), entity.RolAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LoadUsuario
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo de infraestructura al resolver el usuario responde 503, no 401:
// las credenciales no son el problema.
func TestLoadUsuario_FalloDeInfraestructura_Retorna503(t *testing.T) {
	app := buildTestApp(&fakeResolver{err: errors.New("pool cerrado")}, entity.RolAdmin)
	resp := doRequest(t, app, tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_LOOKUP_FAILED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"auth_user_id": apphttp.GetAuthUserID(c),
			"token":        apphttp.GetToken(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenValido(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAuthUserID, body["auth_user_id"])
	assert.NotEmpty(t, body["token"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAuthUserID, testEmail, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	authUserID, email, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testAuthUserID, authUserID)
	assert.Equal(t, testEmail, email)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testAuthUserID, testEmail, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAuthUserID, testEmail, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
