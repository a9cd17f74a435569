package http

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/mock"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

type testRouter struct {
	router *chi.Mux
	auth   *mock.MockAuthService
	users  *mock.MockUserService
	photos *mock.MockPhotoService
}

func newTestRouter(t *testing.T, opts Options) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)

	tr := &testRouter{
		auth:   mock.NewMockAuthService(ctrl),
		users:  mock.NewMockUserService(ctrl),
		photos: mock.NewMockPhotoService(ctrl),
	}
	services := &service.Services{
		AuthService:  tr.auth,
		UserService:  tr.users,
		PhotoService: tr.photos,
	}
	tr.router = NewHandler(services, opts, logger.Nop()).Init()
	return tr
}

func configured() Options {
	return Options{RemoteConfigured: true}
}

func (tr *testRouter) do(method, target string, body io.Reader, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)
	return rec
}

func (tr *testRouter) doJSON(method, target, body string) *httptest.ResponseRecorder {
	return tr.do(method, target, strings.NewReader(body), "Content-Type", "application/json")
}

func strPtr(s string) *string { return &s }
