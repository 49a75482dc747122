package handlers_test

import (
	"net/http"
	"testing"

	"github.com/petwatch/petwatch/internal/api/handlers"
	"github.com/petwatch/petwatch/internal/service"
	"github.com/petwatch/petwatch/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		Build(t, ts.DB.DB)

	t.Run("valid credentials", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL()+"/auth/login", "",
			handlers.LoginRequest{Email: user.Email, Password: password})
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var token service.IssuedToken
		testutil.AssertJSONResponse(t, resp, &token)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, 3600, token.ExpiresIn)

		claims, err := ts.Services.Token.Verify(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL()+"/auth/login", "",
			handlers.LoginRequest{Email: user.Email, Password: "wrong"})
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL()+"/auth/login", "",
			handlers.LoginRequest{Email: "nobody@example.com", Password: password})
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL()+"/auth/login", "",
			handlers.LoginRequest{})
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
