package mux

import (
	"net/http"

	"cardgames/pkg/registry"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests for the read-only stats API
type Mux struct {
	*gmux.Router
	version string
	store   registry.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string, store registry.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   store,
	}

	r := this.Router
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})

	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/games").Handler(this.getGames())
	r.Methods(http.MethodGet).Path("/users").Handler(this.getUsers())
	r.Methods(http.MethodGet).Path("/users/{username}").Handler(this.getUsersUsername())

	return this
}
