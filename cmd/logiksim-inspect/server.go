package main

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/serialize"
)

// serveInspector exposes a JSON view of m's current layout and undo/redo
// state over HTTP, routed with a mux.Router the way the teacher's
// akita/v4/monitoring dashboard routes its own debug endpoints. An address
// with no host (":8080") is bound to localhost only. It blocks until the
// server stops or errors.
func serveInspector(addr string, m *modifier.Modifier) error {
	if host, port, err := net.SplitHostPort(addr); err == nil && host == "" {
		addr = net.JoinHostPort("localhost", port)
	}
	r := mux.NewRouter()
	r.HandleFunc("/layout", layoutHandler(m)).Methods(http.MethodGet)
	r.HandleFunc("/history", historyHandler(m)).Methods(http.MethodGet)

	return http.ListenAndServe(addr, r)
}

func layoutHandler(m *modifier.Modifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := serialize.Export(m.Layout())
		writeJSON(w, rec)
	}
}

type historyState struct {
	CanUndo bool `json:"can_undo"`
	CanRedo bool `json:"can_redo"`
}

func historyHandler(m *modifier.Modifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, historyState{CanUndo: m.CanUndo(), CanRedo: m.CanRedo()})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
