// Package bankserver serves the active question bank over HTTP so other
// quizdeck instances can fetch it at startup.
package bankserver

import (
	"bytes"
	"io"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/abhisek/quizdeck/internal/bank"
)

const (
	CSVPath  = "/question_bank.csv"
	JSONPath = "/question_bank.json"
)

// BankSource supplies the bank to serve. quiz.Engine satisfies it.
type BankSource interface {
	Bank() bank.Bank
}

// Server exposes a bank as CSV and JSON.
type Server struct {
	source BankSource
}

func NewServer(source BankSource) *Server {
	return &Server{source: source}
}

// SetupRoutes registers the bank endpoints on r.
func (s *Server) SetupRoutes(r *mux.Router) {
	r.HandleFunc(CSVPath, s.CSVFunc).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(JSONPath, s.JSONFunc).Methods(http.MethodGet, http.MethodHead)
	glog.V(2).Infof("set up routes for bank server")
}

// Handler returns the routed handler wrapped with CORS and access logging.
// Access logs go to logOut; nil disables them.
func (s *Server) Handler(logOut io.Writer) http.Handler {
	r := mux.NewRouter()
	s.SetupRoutes(r)

	h := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
	)(r)
	if logOut != nil {
		h = handlers.LoggingHandler(logOut, h)
	}
	return h
}

func (s *Server) CSVFunc(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := bank.Export(&buf, s.source.Bank()); err != nil {
		glog.Errorf("error exporting bank as csv: %v", err)
		http.Error(w, "error exporting bank", http.StatusInternalServerError)
		return
	}
	writeBody(w, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) JSONFunc(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := bank.ExportJSON(&buf, s.source.Bank()); err != nil {
		glog.Errorf("error exporting bank as json: %v", err)
		http.Error(w, "error exporting bank", http.StatusInternalServerError)
		return
	}
	writeBody(w, "application/json", buf.Bytes())
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		glog.V(2).Infof("error writing response: %v", err)
	}
}

// ListenAndServe serves the bank on addr until the server fails.
func ListenAndServe(addr string, source BankSource) error {
	server := http.Server{
		Addr:    addr,
		Handler: NewServer(source).Handler(os.Stderr),
	}
	glog.Infof("bank server listening on %s", addr)
	return server.ListenAndServe()
}
