// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/brandcraft/internal/httputil"
	"github.com/pdiddy/brandcraft/internal/logging"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// brandInput is the body of POST /generate-brand-names-local. Only the
// product category drives generation; the other fields are accepted for
// compatibility with existing clients.
type brandInput struct {
	BusinessType    string `json:"business_type" validate:"max=100"`
	ProductCategory string `json:"product_category" validate:"max=64"`
	TargetAudience  string `json:"target_audience" validate:"max=200"`
}

type brandNamesResponse struct {
	BrandNames []string `json:"brand_names"`
}

type paletteResponse struct {
	Colors [3]types.ColorHex `json:"colors"`
	Label  string            `json:"label,omitempty"`
}

type contrastResponse struct {
	Color     string         `json:"color"`
	TextColor types.ColorHex `json:"text_color"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
		msg = http.StatusText(status)
	}
	httputil.WriteError(w, r, status, msg)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.cfg.StaticDir, "index.html")
	if _, err := os.Stat(path); err != nil {
		httputil.WriteError(w, r, http.StatusNotFound, "front end not installed")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleBrandNames(w http.ResponseWriter, r *http.Request) {
	var in brandInput
	if err := httputil.DecodeJSON(w, r, &in); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", ErrValidation, err))
		return
	}
	if err := s.check(in); err != nil {
		s.fail(w, r, err)
		return
	}

	set, err := s.studio.SynthesizeNames(in.ProductCategory)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, brandNamesResponse{BrandNames: set.Sorted()})
}

// handleLogo reads its fields from the query string, as the original API
// did, or from a JSON body when one is sent.
func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	var req types.LogoRequest
	if hasJSONBody(r) {
		if err := httputil.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
			s.fail(w, r, fmt.Errorf("%w: %v", ErrValidation, err))
			return
		}
	} else {
		q := r.URL.Query()
		req = types.LogoRequest{
			Name:         q.Get("brand_name"),
			PrimaryColor: types.ColorHex(q.Get("primary_color")),
			Category:     types.CategoryKey(q.Get("category")),
			Style:        types.ShapeStyle(q.Get("style")),
		}
	}
	if err := s.check(req); err != nil {
		s.fail(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, s.studio.ComposeLogo(req))
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	p := s.studio.SelectPalette()
	httputil.WriteJSON(w, http.StatusOK, paletteResponse{Colors: p.Colors(), Label: p.Label})
}

func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")
	httputil.WriteJSON(w, http.StatusOK, contrastResponse{
		Color:     color,
		TextColor: s.studio.PickContrastColor(color),
	})
}

func hasJSONBody(r *http.Request) bool {
	if r.ContentLength == 0 {
		return false
	}
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
