package goauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoServidor(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "anon-key", "service-key")
}

func TestSignInWithPassword_Exitoso(t *testing.T) {
	_, cliente := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@ejemplo.co", body["email"])

		json.NewEncoder(w).Encode(Session{
			AccessToken:  "tok-abc",
			RefreshToken: "ref-abc",
			User:         AuthUser{ID: "auth-1", Email: "ana@ejemplo.co"},
		})
	})

	sess, err := cliente.SignInWithPassword(context.Background(), "ana@ejemplo.co", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", sess.AccessToken)
	assert.Equal(t, "auth-1", sess.User.ID)
}

func TestSignInWithPassword_CredencialesRechazadas(t *testing.T) {
	// GoTrue responde 400 invalid_grant a credenciales malas; debe mapearse al
	// sentinel para que el secuenciador distinga rechazo de caída.
	_, cliente := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	})

	_, err := cliente.SignInWithPassword(context.Background(), "ana@ejemplo.co", "malo")
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestSignInWithPassword_ErrorDeServidorNoEsCredenciales(t *testing.T) {
	_, cliente := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"msg": "database unavailable"})
	})

	_, err := cliente.SignInWithPassword(context.Background(), "ana@ejemplo.co", "secreto")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredenciales)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestSignOut_TokenYaRevocadoEsExitoso(t *testing.T) {
	_, cliente := nuevoServidor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.NoError(t, cliente.SignOut(context.Background(), "tok-viejo"))
}

func TestAdminCreateUser_UsaLlaveDeServicio(t *testing.T) {
	_, cliente := nuevoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["email_confirm"])
		meta, ok := body["user_metadata"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, meta["needs_password_migration"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AuthUser{ID: "auth-nuevo", Email: "c@ejemplo.co"})
	})

	user, err := cliente.AdminCreateUser(context.Background(), "c@ejemplo.co", "descartable",
		map[string]interface{}{"needs_password_migration": true})
	require.NoError(t, err)
	assert.Equal(t, "auth-nuevo", user.ID)
}

func TestAdminUpdateUserPassword_IDVacioFallaLocal(t *testing.T) {
	llamado := false
	_, cliente := nuevoServidor(t, func(_ http.ResponseWriter, _ *http.Request) {
		llamado = true
	})

	err := cliente.AdminUpdateUserPassword(context.Background(), "", "nuevo")
	assert.Error(t, err)
	assert.False(t, llamado, "no debe salir al proveedor sin id")
}
