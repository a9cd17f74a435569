package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded captures the last request seen by the fake remote API.
type recorded struct {
	method string
	path   string
	query  map[string]string
	prefer string
	body   []byte
}

func newFakeRemote(t *testing.T, status int, response string) (adapter.RemoteAdapter, *recorded) {
	t.Helper()

	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.prefer = r.Header.Get("Prefer")
		rec.query = map[string]string{}
		for k, v := range r.URL.Query() {
			rec.query[k] = v[0]
		}
		rec.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	remote, err := adapter.NewRESTAdapter(config.Adapter{
		DataURL:        srv.URL + "/rest/v1",
		StorageURL:     srv.URL + "/storage/v1",
		APIKey:         "key",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return remote, rec
}

const userRow = `{"id":7,"first_name":"Ana","last_name":"Lima","email":"ana@example.com","phonenumber":"5511999990000","username":"ana","password_hash":"$argon2id$x","birthday":"1990-01-02"}`

func TestUserRepository_FindUserByIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier models.Identifier
		column     string
		filter     string
	}{
		{
			name:       "email uses ilike",
			identifier: models.Identifier{Kind: models.IdentifierEmail, Value: "Ana@Example.com"},
			column:     "email",
			filter:     "ilike.Ana@Example.com",
		},
		{
			name:       "email with like metacharacters is escaped",
			identifier: models.Identifier{Kind: models.IdentifierEmail, Value: "a_b%c@example.com"},
			column:     "email",
			filter:     `ilike.a\_b\%c@example.com`,
		},
		{
			name:       "email with star falls back to eq",
			identifier: models.Identifier{Kind: models.IdentifierEmail, Value: "A*B@Example.com"},
			column:     "email",
			filter:     "eq.a*b@example.com",
		},
		{
			name:       "phone uses eq",
			identifier: models.Identifier{Kind: models.IdentifierPhone, Value: "5511999990000"},
			column:     "phonenumber",
			filter:     "eq.5511999990000",
		},
		{
			name:       "username uses eq",
			identifier: models.Identifier{Kind: models.IdentifierUsername, Value: "+1 (555) 0100"},
			column:     "username",
			filter:     "eq.+1 (555) 0100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote, rec := newFakeRemote(t, http.StatusOK, "["+userRow+"]")
			repo := NewUserRepository(remote, logger.Nop())

			user, err := repo.FindUserByIdentifier(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, int64(7), user.ID)
			assert.Equal(t, "$argon2id$x", user.PasswordHash)

			assert.Equal(t, http.MethodGet, rec.method)
			assert.Equal(t, "/rest/v1/users", rec.path)
			assert.Equal(t, tt.filter, rec.query[tt.column])
			assert.Equal(t, "1", rec.query["limit"])
			assert.Equal(t, models.UserColumns, rec.query["select"])
		})
	}
}

func TestUserRepository_FindUserByIdentifier_NotFound(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusOK, "[]")
	repo := NewUserRepository(remote, logger.Nop())

	_, err := repo.FindUserByIdentifier(context.Background(), models.Identifier{Kind: models.IdentifierUsername, Value: "ghost"})

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_FindPublicUserByID(t *testing.T) {
	remote, rec := newFakeRemote(t, http.StatusOK, `[{"id":7,"first_name":"Ana","username":"ana"}]`)
	repo := NewUserRepository(remote, logger.Nop())

	user, err := repo.FindPublicUserByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "eq.7", rec.query["id"])
	assert.Equal(t, "1", rec.query["limit"])
	assert.Equal(t, models.PublicUserColumns, rec.query["select"])
	assert.NotContains(t, rec.query["select"], "password_hash")
}

func TestUserRepository_FindPublicUserByID_NotFound(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusOK, `[]`)
	repo := NewUserRepository(remote, logger.Nop())

	_, err := repo.FindPublicUserByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_FindUserByID_UpstreamError(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusUnauthorized, `{"message":"bad jwt"}`)
	repo := NewUserRepository(remote, logger.Nop())

	_, err := repo.FindUserByID(context.Background(), 7)

	var upstream *adapter.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}

func TestUserRepository_InsertUser(t *testing.T) {
	remote, rec := newFakeRemote(t, http.StatusCreated, `[{"id":9,"username":"ana","email":"ana@example.com"}]`)
	repo := NewUserRepository(remote, logger.Nop())

	email := "ana@example.com"
	user, err := repo.InsertUser(context.Background(), models.NewUser{
		FirstName:    "Ana",
		LastName:     "Lima",
		Email:        &email,
		Username:     "ana",
		PasswordHash: "$argon2id$x",
		Birthday:     "1990-01-02",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "return=representation", rec.prefer)
	assert.Equal(t, models.PublicUserColumns, rec.query["select"])

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "ana@example.com", sent["email"])
	assert.Equal(t, "$argon2id$x", sent["password_hash"])
	assert.NotContains(t, sent, "phonenumber")
}

func TestUserRepository_InsertUser_Duplicate(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint"}`)
	repo := NewUserRepository(remote, logger.Nop())

	_, err := repo.InsertUser(context.Background(), models.NewUser{Username: "ana"})

	assert.ErrorIs(t, err, adapter.ErrDuplicate)
}

func TestUserRepository_InsertUser_NoRowsReturned(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusCreated, `[]`)
	repo := NewUserRepository(remote, logger.Nop())

	_, err := repo.InsertUser(context.Background(), models.NewUser{Username: "ana"})

	assert.ErrorIs(t, err, ErrUserNotReturned)
}

func TestUserRepository_UpdateUser_SendsOnlyPatch(t *testing.T) {
	remote, rec := newFakeRemote(t, http.StatusNoContent, ``)
	repo := NewUserRepository(remote, logger.Nop())

	err := repo.UpdateUser(context.Background(), 7, models.UserPatch{models.ColumnFirstName: "Bia"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "eq.7", rec.query["id"])
	assert.Equal(t, "return=minimal", rec.prefer)
	assert.JSONEq(t, `{"first_name":"Bia"}`, string(rec.body))
}

func TestUserRepository_DeleteUser(t *testing.T) {
	remote, rec := newFakeRemote(t, http.StatusOK, `[{"id":7,"username":"ana"}]`)
	repo := NewUserRepository(remote, logger.Nop())

	rows, err := repo.DeleteUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ana", rows[0].Username)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "eq.7", rec.query["id"])
	assert.Equal(t, models.PublicUserColumns, rec.query["select"])
	assert.Equal(t, "return=representation", rec.prefer)
}

func TestUserRepository_DeleteUser_NoRows(t *testing.T) {
	remote, _ := newFakeRemote(t, http.StatusOK, `[]`)
	repo := NewUserRepository(remote, logger.Nop())

	rows, err := repo.DeleteUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, rows)
}
