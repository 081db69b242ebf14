package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// GridView is the JSON form of the session.
type GridView struct {
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	Layout    []string         `json:"layout"`
	Start     gridgraph.Coord  `json:"start"`
	Goal      gridgraph.Coord  `json:"goal"`
	Algorithm engine.Algorithm `json:"algorithm"`
	Speed     int              `json:"speed"`
	Running   bool             `json:"running"`
}

// GridUpdate is the PUT /api/grid body. Absent fields are left unchanged;
// a new Layout replaces the grid, including its 'S' and 'G' markers.
type GridUpdate struct {
	Layout    []string          `json:"layout,omitempty"`
	Start     *gridgraph.Coord  `json:"start,omitempty"`
	Goal      *gridgraph.Coord  `json:"goal,omitempty"`
	Algorithm *engine.Algorithm `json:"algorithm,omitempty"`
	Speed     *int              `json:"speed,omitempty"`
}

// ToggleResult reports the new state of a toggled cell.
type ToggleResult struct {
	At   gridgraph.Coord `json:"at"`
	Wall bool            `json:"wall"`
}

// SearchResult is the POST /api/search response.
type SearchResult struct {
	Algorithm engine.Algorithm `json:"algorithm"`
	*core.Result
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) view() GridView {
	return GridView{
		Rows:      s.grid.Rows,
		Cols:      s.grid.Cols,
		Layout:    s.grid.Layout(),
		Start:     s.grid.Start,
		Goal:      s.grid.Goal,
		Algorithm: s.algo,
		Speed:     s.speed,
		Running:   s.running,
	}
}

func (s *Server) getGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := s.view()
	s.mu.Unlock()
	writeJSON(w, r, http.StatusOK, v)
}

func (s *Server) putGrid(w http.ResponseWriter, r *http.Request) {
	var upd GridUpdate
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if upd.Speed != nil && *upd.Speed < 0 {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("speed: %d is negative", *upd.Speed))
		return
	}

	var v GridView
	err := s.edit(func() error {
		g := s.grid.Clone()
		if len(upd.Layout) > 0 {
			parsed, err := gridgraph.FromRows(upd.Layout)
			if err != nil {
				return err
			}
			g = parsed
		}
		if upd.Start != nil {
			if err := g.SetStart(*upd.Start); err != nil {
				return err
			}
		}
		if upd.Goal != nil {
			if err := g.SetGoal(*upd.Goal); err != nil {
				return err
			}
		}
		s.grid = g
		if upd.Algorithm != nil {
			s.algo = *upd.Algorithm
		}
		if upd.Speed != nil {
			s.speed = *upd.Speed
		}
		v = s.view()
		return nil
	})
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

// clearGrid removes every wall, keeping the size and endpoints.
func (s *Server) clearGrid(w http.ResponseWriter, r *http.Request) {
	var v GridView
	err := s.edit(func() error {
		s.grid.Clear()
		v = s.view()
		return nil
	})
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

func (s *Server) toggleCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	// The route pattern guarantees digits; Atoi only fails on overflow.
	row, errRow := strconv.Atoi(vars["row"])
	col, errCol := strconv.Atoi(vars["col"])
	if err := errors.Join(errRow, errCol); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	at := gridgraph.C(row, col)
	var res ToggleResult
	err := s.edit(func() error {
		wall, err := s.grid.ToggleWall(at)
		res = ToggleResult{At: at, Wall: wall}
		return err
	})
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	algo, err := s.algorithmParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	snap, err := s.begin()
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	defer s.end()

	res, err := engine.Run(r.Context(), snap, snap.Start, snap.Goal, algo)
	if err != nil && !errors.Is(err, core.ErrNoPath) {
		writeError(w, r, statusOf(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, SearchResult{Algorithm: algo, Result: res})
}

// algorithmParam reads ?algorithm=, falling back to the session default.
func (s *Server) algorithmParam(r *http.Request) (engine.Algorithm, error) {
	name := r.URL.Query().Get("algorithm")
	if name == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.algo, nil
	}
	return engine.ParseAlgorithm(name)
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrBusy):
		return http.StatusConflict
	case errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrUnknownCell),
		errors.Is(err, core.ErrOutOfBounds),
		errors.Is(err, engine.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.FromContext(r.Context()).Warn("Failed to write response.", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := ctxlog.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed.", "status", status, "error", err)
	} else {
		logger.Debug("Request rejected.", "status", status, "error", err)
	}
	writeJSON(w, r, status, errorBody{Error: err.Error()})
}
