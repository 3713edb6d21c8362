package mux

import (
	"errors"
	"net/http"

	"baccarat-server/pkg/baccarat"
)

type balanceRequest struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

type balanceResponse struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

// postAdminBalance lets the admin surface set a participant's balance
// directly. The table emits the usual balance event so the client view
// stays consistent.
func (m *Mux) postAdminBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload balanceRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.Name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		if payload.Balance < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("balance cannot be negative"))
			return
		}

		if err := m.table.SetBalance(payload.Name, payload.Balance); err != nil {
			if err == baccarat.ErrUnknownParticipant {
				writeJSONError(w, http.StatusNotFound, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, balanceResponse{
			Name:    payload.Name,
			Balance: payload.Balance,
		})
	}
}
