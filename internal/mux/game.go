package mux

import (
	"net/http"

	"cardgames/pkg/gamefactory"
)

type gameResponse struct {
	Name       string `json:"name"`
	MinPlayers int    `json:"minPlayers"`
	MaxPlayers int    `json:"maxPlayers"`
}

func (m *Mux) getGames() http.HandlerFunc {
	games := make([]gameResponse, 0)
	for _, name := range gamefactory.Names() {
		factory, err := gamefactory.Get(name)
		if err != nil {
			panic(err)
		}

		games = append(games, gameResponse{
			Name:       factory.Name(),
			MinPlayers: factory.MinPlayers(),
			MaxPlayers: factory.MaxPlayers(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, games)
	}
}
