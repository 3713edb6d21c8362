package mux

import (
	"net/http"

	"baccarat-server/internal/config"
	"baccarat-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version       string
	table         *room.Table
	adminPassword string
}

// NewMux returns a new HTTP mux around the table
func NewMux(version string, table *room.Table) *Mux {
	this := &Mux{
		Router:        gmux.NewRouter(),
		version:       version,
		table:         table,
		adminPassword: config.Instance().AdminPassword,
	}

	// open endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/game").Handler(this.getGameWS())
	}

	// requires the admin password
	{
		r := this.Router.NewRoute().Subrouter()
		r.Use(this.adminMiddleware)
		r.Methods(http.MethodPost).Path("/admin/balance").Handler(this.postAdminBalance())
	}

	return this
}

func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.adminPassword == "" || r.Header.Get("X-Admin-Password") != m.adminPassword {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
