package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	apphttp "github.com/aslanalper2516/wmb-admin-api/internal/interfaces/http"
	pkgjwt "github.com/aslanalper2516/wmb-admin-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "wmb-admin-test"
	testExpMin    = 60
)

// fakeRoleRepo sirve roles desde un mapa en memoria.
type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (f *fakeRoleRepo) Create(role *entity.Role) error { return nil }
func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return f.roles[id], nil
}
func (f *fakeRoleRepo) Update(role *entity.Role) error { return nil }
func (f *fakeRoleRepo) ListByCompany(companyID string) ([]*entity.Role, error) {
	return nil, nil
}
func (f *fakeRoleRepo) Delete(id string) error { return nil }

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(repo *fakeRoleRepo, perm string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(repo, perm),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role_id": apphttp.GetRoleID(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, roleID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, roleID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
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

func editorRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]*entity.Role{
		"role-editor": {
			ID:          "role-editor",
			CompanyID:   testCompanyID,
			Name:        "editor",
			Permissions: []string{"menus:write", "prices:write"},
		},
		"role-lector": {
			ID:          "role-lector",
			CompanyID:   testCompanyID,
			Name:        "lector",
			Permissions: []string{},
		},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El rol del usuario incluye el permiso → debe pasar (HTTP 200).
func TestRequirePermission_EditorAccedeEscrituraMenus(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	resp := doRequest(t, app, tokenForRole(t, "role-editor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un rol con menus:write debe poder acceder a la ruta")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "role-editor", body["role_id"])
}

// Caso 2: El rol no incluye el permiso → HTTP 403 Forbidden.
func TestRequirePermission_LectorBloqueadoEnEscritura(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	resp := doRequest(t, app, tokenForRole(t, "role-lector"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol sin el permiso no debe poder acceder")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: El rol existe pero el permiso pedido es otro → HTTP 403.
func TestRequirePermission_EditorBloqueadoEnAdminUsuarios(t *testing.T) {
	app := buildTestApp(editorRepo(), "users:admin")
	resp := doRequest(t, app, tokenForRole(t, "role-editor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: El rol del token no existe en el repositorio → HTTP 403.
func TestRequirePermission_RolInexistente_Retorna403(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	resp := doRequest(t, app, tokenForRole(t, "role-fantasma"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un role_id que no resuelve a un rol debe retornar 403")
}

// Caso 4: Token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequirePermission_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 5: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(editorRepo(), "menus:write")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role_id":    apphttp.GetRoleID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "role-editor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, "role-editor", body["role_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role_id
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRoleID(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "role-editor", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, companyID, roleID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, "role-editor", roleID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "role-editor", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "role-editor", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
