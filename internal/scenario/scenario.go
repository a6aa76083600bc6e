// SPDX-License-Identifier: MIT

// Package scenario loads navigation scenarios for the surfnav CLI: a surface
// (a mesh file, an inline mesh or a generated grid), graph settings, the
// seen-set, obstacles and optional query points, all in one HJSON document.
//
//	{
//	  grid: {rows: 4, cols: 6, cellSize: 2}
//	  areaThreshold: 0.5
//	  preference: border
//	  seen: [0, 1, 2, 7, 8]
//	  obstacles: [
//	    {box: {min: [3, -1, 1], max: [5, 1, 3]}}
//	    {prism: {footprint: [[0, 4], [2, 4], [1, 6]], minY: -1, maxY: 2}, blocking: false}
//	  ]
//	  start: [0, 0, 0]
//	  goal: [10, 0, 6]
//	}
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hjson/hjson-go/v4"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/surfnav/mesh"
	"github.com/katalvlaran/surfnav/meshgen"
	"github.com/katalvlaran/surfnav/spatial"
	"github.com/katalvlaran/surfnav/surface"
)

// Defaults for thresholds left at zero.
const (
	DefaultAreaThreshold     = 1.0
	DefaultFaceDistThreshold = 1.0
)

var (
	// ErrNoSurface indicates a scenario that names no surface.
	ErrNoSurface = errors.New("scenario: one of mesh, surface or grid is required")

	// ErrAmbiguousSurface indicates a scenario naming more than one surface.
	ErrAmbiguousSurface = errors.New("scenario: mesh, surface and grid are mutually exclusive")

	// ErrBadObstacle indicates an obstacle without exactly one shape or with
	// malformed coordinates.
	ErrBadObstacle = errors.New("scenario: bad obstacle")

	// ErrBadPoint indicates a point that is not three finite numbers.
	ErrBadPoint = errors.New("scenario: bad point")
)

// File is the on-disk shape of a scenario.
type File struct {
	Mesh    string     `json:"mesh,omitempty"`
	Surface *mesh.File `json:"surface,omitempty"`
	Grid    *Grid      `json:"grid,omitempty"`

	AreaThreshold     float64    `json:"areaThreshold,omitempty"`
	FaceDistThreshold float64    `json:"faceDistThreshold,omitempty"`
	Preference        string     `json:"preference,omitempty"`
	PerfectMemory     bool       `json:"perfectMemory,omitempty"`
	Seen              []int      `json:"seen,omitempty"`
	Obstacles         []Obstacle `json:"obstacles,omitempty"`

	Start []float64 `json:"start,omitempty"`
	Goal  []float64 `json:"goal,omitempty"`
}

// Grid describes a generated surface.
type Grid struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	CellSize float64   `json:"cellSize,omitempty"`
	Origin   []float64 `json:"origin,omitempty"`
	Quads    bool      `json:"quads,omitempty"`
	// Elevation is a Lua expression in x and z giving each corner's height.
	Elevation string `json:"elevation,omitempty"`
}

// Obstacle holds exactly one shape. Blocking defaults to true.
type Obstacle struct {
	Box      *BoxShape   `json:"box,omitempty"`
	Prism    *PrismShape `json:"prism,omitempty"`
	Blocking *bool       `json:"blocking,omitempty"`
}

// BoxShape is an axis-aligned box given by two opposite corners.
type BoxShape struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

// PrismShape is a vertical prism: a polygon in the X/Z plane extruded
// between MinY and MaxY.
type PrismShape struct {
	Footprint [][]float64 `json:"footprint"`
	MinY      float64     `json:"minY"`
	MaxY      float64     `json:"maxY"`
}

// Scenario is a loaded scenario: a ready surface graph plus query inputs.
type Scenario struct {
	Graph             *surface.Graph
	FaceDistThreshold float64
	// Start and Goal are nil when the file leaves them out.
	Start *spatial.Vec3
	Goal  *spatial.Vec3
}

// Load reads and builds the scenario at path. A relative mesh path inside
// the file is resolved against the directory of path. opts are applied to
// the surface graph after the file's own settings.
func Load(path string, opts ...surface.Option) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return Decode(data, filepath.Dir(path), opts...)
}

// Decode parses an HJSON scenario and builds it. dir resolves a relative
// mesh path.
func Decode(data []byte, dir string, opts ...surface.Option) (*Scenario, error) {
	var f File
	if err := hjson.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return f.Build(dir, opts...)
}

// Build turns f into a Scenario. extra options override the file.
func (f *File) Build(dir string, extra ...surface.Option) (*Scenario, error) {
	m, err := f.surface(dir)
	if err != nil {
		return nil, err
	}

	opts := []surface.Option{surface.WithPerfectMemory(f.PerfectMemory)}
	if f.Preference != "" {
		p, err := surface.ParseTravelPreference(f.Preference)
		if err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
		opts = append(opts, surface.WithTravelPreference(p))
	}
	opts = append(opts, extra...)
	area := f.AreaThreshold
	if area == 0 {
		area = DefaultAreaThreshold
	}
	g, err := surface.New(m, area, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := g.MarkAsSeen(f.Seen...); err != nil {
		return nil, fmt.Errorf("scenario: seen: %w", err)
	}
	for i, o := range f.Obstacles {
		obs, err := o.obstacle()
		if err != nil {
			return nil, fmt.Errorf("scenario: obstacle %d: %w", i, err)
		}
		g.AddObstacle(obs)
	}

	s := &Scenario{Graph: g, FaceDistThreshold: f.FaceDistThreshold}
	if s.FaceDistThreshold == 0 {
		s.FaceDistThreshold = DefaultFaceDistThreshold
	}
	if s.Start, err = optionalPoint("start", f.Start); err != nil {
		return nil, err
	}
	if s.Goal, err = optionalPoint("goal", f.Goal); err != nil {
		return nil, err
	}

	return s, nil
}

// surface resolves the one surface source f names.
func (f *File) surface(dir string) (*mesh.Mesh, error) {
	n := 0
	for _, set := range []bool{f.Mesh != "", f.Surface != nil, f.Grid != nil} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return nil, ErrNoSurface
	case n > 1:
		return nil, ErrAmbiguousSurface
	}

	var (
		m   *mesh.Mesh
		err error
	)
	switch {
	case f.Mesh != "":
		path := f.Mesh
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		m, err = mesh.Load(path)
	case f.Surface != nil:
		m, err = f.Surface.Mesh()
	default:
		m, err = f.Grid.build()
	}
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return m, nil
}

func (gr *Grid) build() (*mesh.Mesh, error) {
	var opts []meshgen.Option
	if gr.CellSize != 0 {
		if !(gr.CellSize > 0) || math.IsInf(gr.CellSize, 1) {
			return nil, fmt.Errorf("grid: cellSize %v must be positive", gr.CellSize)
		}
		opts = append(opts, meshgen.WithCellSize(gr.CellSize))
	}
	if gr.Origin != nil {
		o, err := point(gr.Origin)
		if err != nil {
			return nil, fmt.Errorf("grid: origin: %w", err)
		}
		opts = append(opts, meshgen.WithOrigin(o))
	}
	var elev *luaElevation
	if gr.Elevation != "" {
		var err error
		if elev, err = newLuaElevation(gr.Elevation); err != nil {
			return nil, err
		}
		defer elev.Close()
		opts = append(opts, meshgen.WithElevation(elev.at))
	}
	con := meshgen.Grid(gr.Rows, gr.Cols)
	if gr.Quads {
		con = meshgen.QuadGrid(gr.Rows, gr.Cols)
	}

	m, err := meshgen.Build(opts, con)
	if elev != nil && elev.err != nil {
		return nil, elev.err
	}

	return m, err
}

func (o Obstacle) obstacle() (*spatial.Obstacle, error) {
	var shape spatial.Shape
	switch {
	case o.Box != nil && o.Prism != nil:
		return nil, fmt.Errorf("%w: both box and prism", ErrBadObstacle)
	case o.Box != nil:
		lo, err := point(o.Box.Min)
		if err != nil {
			return nil, fmt.Errorf("%w: box min: %w", ErrBadObstacle, err)
		}
		hi, err := point(o.Box.Max)
		if err != nil {
			return nil, fmt.Errorf("%w: box max: %w", ErrBadObstacle, err)
		}
		shape = spatial.NewBox(lo, hi)
	case o.Prism != nil:
		if len(o.Prism.Footprint) < 3 {
			return nil, fmt.Errorf("%w: prism footprint needs 3 corners, got %d", ErrBadObstacle, len(o.Prism.Footprint))
		}
		corners := make([]orb.Point, len(o.Prism.Footprint))
		for i, c := range o.Prism.Footprint {
			if len(c) != 2 {
				return nil, fmt.Errorf("%w: prism corner %d needs [x, z]", ErrBadObstacle, i)
			}
			corners[i] = orb.Point{c[0], c[1]}
		}
		shape = spatial.NewPrism(o.Prism.MinY, o.Prism.MaxY, corners...)
	default:
		return nil, fmt.Errorf("%w: no shape", ErrBadObstacle)
	}

	obs := spatial.NewObstacle(shape)
	if o.Blocking != nil {
		obs.Blocking = *o.Blocking
	}

	return obs, nil
}

func point(c []float64) (spatial.Vec3, error) {
	if len(c) != 3 {
		return spatial.Vec3{}, fmt.Errorf("%w: need 3 coordinates, got %d", ErrBadPoint, len(c))
	}
	p := spatial.Vec3{c[0], c[1], c[2]}
	if !spatial.IsFinite(p) {
		return spatial.Vec3{}, fmt.Errorf("%w: %v", ErrBadPoint, c)
	}

	return p, nil
}

func optionalPoint(name string, c []float64) (*spatial.Vec3, error) {
	if c == nil {
		return nil, nil
	}
	p, err := point(c)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", name, err)
	}

	return &p, nil
}
