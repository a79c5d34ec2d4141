package mux

import (
	"fmt"
	"net/http"
	"sort"

	"cardgames/pkg/registry"

	"github.com/gorilla/mux"
)

type userResponse struct {
	registry.User
	WinRate float64 `json:"winRate"`
}

func newUserResponse(u registry.User) userResponse {
	resp := userResponse{User: u}
	if u.GamesPlayed > 0 {
		resp.WinRate = float64(u.GamesWon) / float64(u.GamesPlayed)
	}

	return resp
}

// userSorts are the accepted values of the sort parameter
var userSorts = map[string]func(a, b registry.User) bool{
	"username": func(a, b registry.User) bool {
		return a.Username < b.Username
	},
	"won": func(a, b registry.User) bool {
		return a.GamesWon > b.GamesWon
	},
	"played": func(a, b registry.User) bool {
		return a.GamesPlayed > b.GamesPlayed
	},
}

func (m *Mux) getUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sortBy := r.FormValue("sort")
		if sortBy == "" {
			sortBy = "username"
		}

		less, ok := userSorts[sortBy]
		if !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("cannot sort by %q", sortBy))
			return
		}

		users, err := m.store.Users()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		sort.SliceStable(users, func(i, j int) bool {
			return less(users[i], users[j])
		})

		resp := make([]userResponse, 0, limit)
		for i := offset; i < int64(len(users)) && len(resp) < limit; i++ {
			resp = append(resp, newUserResponse(users[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getUsersUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := m.store.User(mux.Vars(r)["username"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(u))
	}
}
