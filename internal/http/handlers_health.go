package httpx

import (
	"net/http"
)

type healthStatus struct {
	Status     string `json:"status"`
	AuthStates int    `json:"auth_states"`
}

// healthHandler reports liveness along with the number of live page sessions.
func healthHandler(states interface{ Len() int }) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			return
		}
		status := healthStatus{Status: "ok"}
		if states != nil {
			status.AuthStates = states.Len()
		}
		WriteJSON(w, http.StatusOK, status)
	}
}
