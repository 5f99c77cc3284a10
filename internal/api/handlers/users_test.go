package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hugh/gatekeeper/internal/api/dto"
	"github.com/hugh/gatekeeper/internal/api/handlers"
	"github.com/hugh/gatekeeper/internal/database/models"
	"github.com/hugh/gatekeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserTestRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	tc := testutil.NewTestContext(t)

	handler := handlers.NewUserHandler(tc.AuthService)

	r := chi.NewRouter()
	r.Get("/auth/user", handler.List)
	r.Get("/auth/user/{id}", handler.Get)

	return r, tc
}

func TestUserHandler_List(t *testing.T) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		router, tc := setupUserTestRouter(t)
		defer tc.Cleanup()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.JSONRequest(t, "GET", "/auth/user", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)

		var users []dto.UserDTO
		testutil.ParseJSONResponse(t, rr, &users)
		assert.Empty(t, users)
	})

	t.Run("lists public fields ordered by role", func(t *testing.T) {
		router, tc := setupUserTestRouter(t)
		defer tc.Cleanup()

		testutil.CreateTestUser(t, tc.DB, "collab@example.com", models.RoleCollaborator)
		testutil.CreateTestUser(t, tc.DB, "client@example.com", models.RoleClient)
		testutil.CreateTestAdmin(t, tc.DB, "admin@example.com")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.JSONRequest(t, "GET", "/auth/user", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)

		var users []map[string]interface{}
		testutil.ParseJSONResponse(t, rr, &users)
		require.Len(t, users, 3)

		assert.Equal(t, "admin", users[0]["role"])
		assert.Equal(t, "client", users[1]["role"])
		assert.Equal(t, "collaborator", users[2]["role"])

		for _, user := range users {
			assert.NotContains(t, user, "password_hash")
			assert.NotContains(t, user, "is_active")
			assert.NotContains(t, user, "is_staff")
		}
	})
}

func TestUserHandler_Get(t *testing.T) {
	router, tc := setupUserTestRouter(t)
	defer tc.Cleanup()

	user := testutil.CreateTestUser(t, tc.DB, "findme@example.com", models.RoleClient)

	t.Run("existing user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.JSONRequest(t, "GET", "/auth/user/"+user.ID.String(), nil))

		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp dto.UserDTO
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "findme@example.com", resp.Email)
		assert.Equal(t, "client", resp.Role)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.JSONRequest(t, "GET", "/auth/user/8f14e45f-ceea-467f-a0e6-8a4412f3fabc", nil))

		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, testutil.JSONRequest(t, "GET", "/auth/user/not-a-uuid", nil))

		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})
}
