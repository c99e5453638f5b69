package goauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrCredenciales indica que el proveedor rechazó email/password (invalid_grant).
// Cualquier otro error del cliente es un fallo de infraestructura.
var ErrCredenciales = errors.New("goauth: credenciales rechazadas por el proveedor")

// Session es la sesión que emite el proveedor tras un login exitoso.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// AuthUser identidad en el proveedor gestionado.
type AuthUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

// Provider define el puerto de salida hacia el proveedor de autenticación.
// La implementación concreta usa la API HTTP GoTrue; para tests se inyecta un fake.
type Provider interface {
	// SignInWithPassword intercambia email/password por una sesión.
	// Devuelve ErrCredenciales si el proveedor rechaza las credenciales.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignOut revoca la sesión asociada al access token. Idempotente.
	SignOut(ctx context.Context, accessToken string) error
	// AdminCreateUser crea una identidad con la llave de servicio.
	AdminCreateUser(ctx context.Context, email, password string, metadata map[string]interface{}) (*AuthUser, error)
	// AdminUpdateUserPassword rota el password de una identidad existente.
	AdminUpdateUserPassword(ctx context.Context, authUserID, password string) error
}

// Client implementa Provider contra la API HTTP del proveedor.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

var _ Provider = (*Client)(nil)

// NewClient construye el cliente. baseURL es la raíz del proyecto
// (ej. https://xyz.supabase.co); las rutas /auth/v1/* se agregan aquí.
func NewClient(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SignInWithPassword hace el password grant: POST /auth/v1/token?grant_type=password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", c.anonKey, "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrCredenciales
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError("sign in", resp)
	}

	var sess Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("goauth: decodificar sesión: %w", err)
	}
	if sess.AccessToken == "" {
		return nil, fmt.Errorf("goauth: el proveedor no devolvió access_token")
	}
	return &sess, nil
}

// SignOut revoca la sesión: POST /auth/v1/logout con el token del usuario.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/logout", c.anonKey, accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 401 con token ya revocado/expirado cuenta como logout efectivo.
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK ||
		resp.StatusCode == http.StatusUnauthorized {
		return nil
	}
	return apiError("sign out", resp)
}

// AdminCreateUser crea una identidad confirmada: POST /auth/v1/admin/users.
func (c *Client) AdminCreateUser(ctx context.Context, email, password string, metadata map[string]interface{}) (*AuthUser, error) {
	body := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}
	if len(metadata) > 0 {
		body["user_metadata"] = metadata
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/admin/users", c.serviceKey, c.serviceKey, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError("admin create user", resp)
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("goauth: decodificar usuario: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("goauth: el proveedor no devolvió id de usuario")
	}
	return &user, nil
}

// AdminUpdateUserPassword rota el password: PUT /auth/v1/admin/users/{id}.
func (c *Client) AdminUpdateUserPassword(ctx context.Context, authUserID, password string) error {
	if authUserID == "" {
		return fmt.Errorf("goauth: authUserID vacío")
	}
	body := map[string]string{"password": password}
	resp, err := c.do(ctx, http.MethodPut, "/auth/v1/admin/users/"+authUserID, c.serviceKey, c.serviceKey, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("admin update password", resp)
	}
	return nil
}

// do arma y ejecuta la petición. apikey va en el header homónimo; bearer (si no
// es vacío) en Authorization.
func (c *Client) do(ctx context.Context, method, path, apikey, bearer string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("goauth: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("goauth: construir petición: %w", err)
	}
	req.Header.Set("apikey", apikey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("goauth: %s %s: %w", method, path, err)
	}
	return resp, nil
}

// apiError construye el error para respuestas no esperadas, incluyendo el
// mensaje que devuelva el proveedor.
func apiError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Error   string `json:"error_description"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Msg != "":
			msg = payload.Msg
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return fmt.Errorf("goauth: %s: estado %d: %s", op, resp.StatusCode, msg)
}
