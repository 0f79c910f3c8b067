package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/compozy/k8s-demo/pkg/version"
	"go.uber.org/zap"
)

// VersionInfo is the body of GET /version.
type VersionInfo struct {
	Version   string  `json:"version"`
	Major     *uint64 `json:"major,omitempty"`
	Minor     *uint64 `json:"minor,omitempty"`
	Patch     *uint64 `json:"patch,omitempty"`
	Build     string  `json:"build"`
	Commit    string  `json:"commit"`
	BuildDate string  `json:"build_date"`
}

func newVersionInfo(label string) VersionInfo {
	info := VersionInfo{
		Version:   label,
		Build:     version.Version,
		Commit:    version.CommitHash,
		BuildDate: version.BuildDate,
	}
	if parts := domain.ParseVersionLabel(label); parts.Semver {
		info.Major = &parts.Major
		info.Minor = &parts.Minor
		info.Patch = &parts.Patch
	}
	return info
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(&buf, s.view); err != nil {
		s.log.Error("failed to render page", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if !s.ready.Load() {
		writeText(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(newVersionInfo(s.view.Version()))
	if err != nil {
		s.log.Error("failed to encode version", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
