package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"iris-go/iris"
)

// SessionInfo is served at /session.
type SessionInfo struct {
	Name       string          `json:"name,omitempty"`
	Version    string          `json:"version"`
	Polynomial iris.Polynomial `json:"polynomial"`
	Fit        iris.FitReport  `json:"fit"`
}

type Server struct {
	Hub  *Hub
	info SessionInfo
}

func NewServer(name string, s *iris.Session, rep iris.FitReport) *Server {
	return &Server{
		Hub: NewHub(s),
		info: SessionInfo{
			Name:       name,
			Version:    s.Version().String(),
			Polynomial: s.Polynomial(),
			Fit:        rep,
		},
	}
}

// Handler returns the HTTP routes. The hub must be running.
func (s *Server) Handler(distDir string) http.Handler {
	mux := http.NewServeMux()

	// WebSocket
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(s.Hub, w, r)
	})

	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.info); err != nil {
			log.Printf("encode session: %v", err)
		}
	})

	// Static Frontend
	if distDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(distDir)))
	}
	return mux
}

// Start runs the hub and blocks serving HTTP on port.
func (s *Server) Start(port int, distDir string) error {
	go s.Hub.Run()
	defer s.Hub.Stop()

	addr := fmt.Sprintf(":%d", port)
	log.Printf("HTTP Server listening on %s", addr)
	if err := http.ListenAndServe(addr, s.Handler(distDir)); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
