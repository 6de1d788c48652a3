package directory

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"courier/internal/crypto"
	"courier/internal/domain"
)

// Server is an in-memory certificate directory for development and
// tests. Entries come from Add or from a directory of PEM files.
type Server struct {
	mu      sync.RWMutex
	records map[domain.NodeID]certRecord
}

// NewServer returns an empty Server.
func NewServer() *Server {
	return &Server{records: make(map[domain.NodeID]certRecord)}
}

// Add registers certPEM under id, deriving the public key PEM from the
// certificate.
func (s *Server) Add(id domain.NodeID, certPEM string) error {
	cert, err := crypto.ParseCertificatePEM(certPEM)
	if err != nil {
		return errors.Wrapf(err, "certificate for %s", id)
	}
	pubPEM, err := crypto.PublicKeyPEM(cert)
	if err != nil {
		return errors.Wrapf(err, "public key for %s", id)
	}
	s.mu.Lock()
	s.records[id] = certRecord{CertPEM: certPEM, PublicKeyPEM: pubPEM}
	s.mu.Unlock()
	return nil
}

// LoadDir registers every *.crt file in dir, keyed by the file's base
// name without extension.
func (s *Server) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrap(err, "certs dir")
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.crt"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		pemText, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		name := strings.TrimSuffix(filepath.Base(path), ".crt")
		id, err := domain.NewNodeID(name)
		if err != nil {
			return errors.Wrapf(err, "file %s", path)
		}
		if err := s.Add(id, string(pemText)); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered entries.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Routes returns the router serving the directory API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/certs/{nodeID}", s.getCert)
	return r
}

func (s *Server) getCert(w http.ResponseWriter, r *http.Request) {
	id := domain.NodeID(chi.URLParam(r, "nodeID"))
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}
