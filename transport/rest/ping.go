package rest

import "net/http"

type pingHandler struct {
	rooms roomService
}

// PingHandler answers liveness probes. It also resolves a room code that can never exist,
// so a broken room store shows up here instead of on the first real request.
func (that *pingHandler) PingHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := that.rooms.GetRoom(r.Context(), probeRoomCode); err != nil && !isNotFound(err) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
