package http

import (
	_ "embed"
	"net/http"
)

//go:embed static/login.html
var loginPage []byte

// root sends browsers to the login view.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.opts.LoginViewPath, http.StatusTemporaryRedirect)
}

func (h *Handler) loginView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(loginPage)
}
