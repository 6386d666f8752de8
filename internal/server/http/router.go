package httpserver

import "net/http"

// Server mounts the API handler and the static web client on one mux.
type Server struct {
	h   *Handler
	mux *http.ServeMux
}

func NewServer(h *Handler, webDir, mobileDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	RegisterStaticRoutes(mux, webDir, mobileDir)
	return &Server{h: h, mux: mux}
}

func (s *Server) Handler() *Handler { return s.h }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
