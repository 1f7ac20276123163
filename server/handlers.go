package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/regions"
	"github.com/katalvlaran/hexforge/sample"
	"github.com/katalvlaran/hexforge/terrain"
	"github.com/katalvlaran/hexforge/wfc"
)

// errBadRequest marks request errors reported as 400.
var errBadRequest = errors.New("bad request")

// TemplateResponse describes the shared template.
type TemplateResponse struct {
	Sample string   `json:"sample"`
	Tiles  int      `json:"tiles"`
	Values []string `json:"values"`
}

// GenerateResponse is one finished map.
type GenerateResponse struct {
	Seed    wfc.Seed       `json:"seed"`
	Layout  string         `json:"layout"`
	Steps   int            `json:"steps"`
	Rewinds int            `json:"rewinds"`
	Map     string         `json:"map"`
	Regions map[string]int `json:"regions"`
	Largest map[string]int `json:"largest"`
}

// SeedResponse is a decoded seed.
type SeedResponse struct {
	Seed   wfc.Seed `json:"seed"`
	Shape  string   `json:"shape"`
	Radius int      `json:"radius,omitempty"`
	Width  int      `json:"width,omitempty"`
	Height int      `json:"height,omitempty"`
	RNG    uint64   `json:"rng"`
	Cells  int      `json:"cells"`
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	resp := TemplateResponse{Sample: s.sample.Layout().String(), Tiles: s.tpl.Len()}
	for _, k := range s.tpl.Contributions() {
		resp.Values = append(resp.Values, k.String())
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	seed, err := wfc.ParseSeed(chi.URLParam(r, "seed"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := seed.Layout()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, SeedResponse{
		Seed:   seed,
		Shape:  seed.Shape.String(),
		Radius: seed.Radius,
		Width:  seed.Width,
		Height: seed.Height,
		RNG:    seed.RNG,
		Cells:  l.Size(),
	})
}

// HandleGenerate handles GET /api/generate. It is exported so the same
// handler can be mounted outside the router.
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	seed, err := seedFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := seed.Layout()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if l.Size() > s.cfg.MaxCells {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("%v has %d cells, limit is %d", l, l.Size(), s.cfg.MaxCells))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout)
	defer cancel()

	var resp GenerateResponse
	switch seed.Shape {
	case wfc.ShapeSquare:
		resp, err = generate[layout.Square](ctx, s.tpl, seed)
	default:
		resp, err = generate[layout.Hexagonal](ctx, s.tpl, seed)
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, "generation timed out")
		return
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Debug("generated",
		slog.String("seed", seed.String()),
		slog.Int("steps", resp.Steps),
		slog.Int("rewinds", resp.Rewinds),
	)
	respondJSON(w, http.StatusOK, resp)
}

// seedFromQuery picks the seed from ?seed, ?radius or ?width&height, with a
// fresh RNG seed unless the full seed was given. No parameters means a
// hexagon of DefaultRadius.
func seedFromQuery(q url.Values) (wfc.Seed, error) {
	if v := q.Get("seed"); v != "" {
		return wfc.ParseSeed(v)
	}
	rng := rand.Uint64()
	if q.Has("width") || q.Has("height") {
		w, err := positiveParam(q, "width")
		if err != nil {
			return wfc.Seed{}, err
		}
		h, err := positiveParam(q, "height")
		if err != nil {
			return wfc.Seed{}, err
		}
		return wfc.SquareSeed(w, h, rng), nil
	}
	if q.Has("radius") {
		rad, err := positiveParam(q, "radius")
		if err != nil {
			return wfc.Seed{}, err
		}
		return wfc.HexagonalSeed(rad, rng), nil
	}
	return wfc.HexagonalSeed(DefaultRadius, rng), nil
}

func positiveParam(q url.Values, name string) (int, error) {
	n, err := strconv.Atoi(q.Get(name))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s=%q: %w", name, q.Get(name), errBadRequest)
	}
	return n, nil
}

func generate[L layout.Layout](ctx context.Context, tpl *wfc.Template[terrain.Kind], seed wfc.Seed) (GenerateResponse, error) {
	g, err := wfc.NewWithSeed[L](tpl, seed)
	if err != nil {
		return GenerateResponse{}, err
	}
	if err := g.Run(ctx); err != nil {
		return GenerateResponse{}, err
	}
	out, err := g.Export()
	if err != nil {
		return GenerateResponse{}, err
	}
	text, err := sample.DumpString(out, terrain.Glyphs())
	if err != nil {
		return GenerateResponse{}, err
	}
	counts := make(map[string]int)
	largest := make(map[string]int)
	for k, n := range regions.Count(out) {
		counts[k.String()] = n
		if r, ok := regions.Largest(out, k); ok {
			largest[k.String()] = r.Size()
		}
	}
	return GenerateResponse{
		Seed:    seed,
		Layout:  g.Layout().String(),
		Steps:   g.Steps(),
		Rewinds: g.Rewinds(),
		Map:     text,
		Regions: counts,
		Largest: largest,
	}, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
