package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	octree "github.com/bmharper/octree-go"
	"github.com/bmharper/octree-go/internal/render"
)

const (
	flagWidth       = "width"
	flagHeight      = "height"
	flagDepth       = "depth"
	flagCenter      = "center"
	flagCapacity    = "capacity"
	flagPoints      = "points"
	flagSeed        = "seed"
	flagQuerySphere = "query-sphere"
	flagQueryBox    = "query-box"
	flagSize        = "size"
	flagYaw         = "yaw"
	flagPitch       = "pitch"
	flagTick        = "tick"
	flagOut         = "out"
	flagDebug       = "debug"
)

type config struct {
	// Full extents of the region; the tree's half-extents are half of these.
	Width  float64
	Height float64
	Depth  float64
	Center [3]float64

	Capacity int
	Points   int
	Seed     int64

	QuerySphere []float64 // x,y,z,r
	QueryBox    []float64 // x,y,z,hw,hh,hd

	Size  int
	Yaw   float64 // degrees
	Pitch float64 // degrees
	Tick  float64
	Out   string
	Debug bool
}

func envVar(flag string) []string {
	return []string{"OCTREEVIZ_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: flagWidth, Value: 10, EnvVars: envVar(flagWidth), Usage: "full size of the region along X"},
		&cli.Float64Flag{Name: flagHeight, Value: 10, EnvVars: envVar(flagHeight), Usage: "full size of the region along Y"},
		&cli.Float64Flag{Name: flagDepth, Value: 10, EnvVars: envVar(flagDepth), Usage: "full size of the region along Z"},
		&cli.StringFlag{Name: flagCenter, Value: "0,0,0", EnvVars: envVar(flagCenter), Usage: "center of the region as `x,y,z`"},
		&cli.IntFlag{Name: flagCapacity, Value: 4, EnvVars: envVar(flagCapacity), Usage: "points held by a node before it divides"},
		&cli.IntFlag{Name: flagPoints, Value: 200, EnvVars: envVar(flagPoints), Usage: "number of random points to insert"},
		&cli.Int64Flag{Name: flagSeed, Value: 1, EnvVars: envVar(flagSeed), Usage: "random seed"},
		&cli.StringFlag{Name: flagQuerySphere, EnvVars: envVar(flagQuerySphere), Usage: "highlight points inside a sphere `x,y,z,r`"},
		&cli.StringFlag{Name: flagQueryBox, EnvVars: envVar(flagQueryBox), Usage: "highlight points inside a box `x,y,z,hw,hh,hd`"},
		&cli.IntFlag{Name: flagSize, Value: render.DefaultSize, EnvVars: envVar(flagSize), Usage: "image width and height in pixels"},
		&cli.Float64Flag{Name: flagYaw, Value: 30, EnvVars: envVar(flagYaw), Usage: "camera yaw in degrees"},
		&cli.Float64Flag{Name: flagPitch, Value: 25, EnvVars: envVar(flagPitch), Usage: "camera pitch in degrees"},
		&cli.Float64Flag{Name: flagTick, Value: render.DefaultTick, EnvVars: envVar(flagTick), Usage: "half length of the point tick marks"},
		&cli.StringFlag{Name: flagOut, Value: "octree.png", EnvVars: envVar(flagOut), Usage: "output PNG path"},
		&cli.BoolFlag{Name: flagDebug, EnvVars: envVar(flagDebug), Usage: "debug logging"},
	}
}

func configFromContext(c *cli.Context) (config, error) {
	conf := config{
		Width:    c.Float64(flagWidth),
		Height:   c.Float64(flagHeight),
		Depth:    c.Float64(flagDepth),
		Capacity: c.Int(flagCapacity),
		Points:   c.Int(flagPoints),
		Seed:     c.Int64(flagSeed),
		Size:     c.Int(flagSize),
		Yaw:      c.Float64(flagYaw),
		Pitch:    c.Float64(flagPitch),
		Tick:     c.Float64(flagTick),
		Out:      c.String(flagOut),
		Debug:    c.Bool(flagDebug),
	}

	center, err := parseFloats(c.String(flagCenter), 3)
	if err != nil {
		return conf, errors.Wrapf(err, "invalid --%s", flagCenter)
	}
	copy(conf.Center[:], center)

	if s := c.String(flagQuerySphere); s != "" {
		if conf.QuerySphere, err = parseFloats(s, 4); err != nil {
			return conf, errors.Wrapf(err, "invalid --%s", flagQuerySphere)
		}
	}
	if s := c.String(flagQueryBox); s != "" {
		if conf.QueryBox, err = parseFloats(s, 6); err != nil {
			return conf, errors.Wrapf(err, "invalid --%s", flagQueryBox)
		}
	}
	return conf, conf.validate()
}

func (c config) validate() error {
	if !(c.Width >= 0 && c.Height >= 0 && c.Depth >= 0) {
		return errors.Errorf("region size must not be negative, got %vx%vx%v", c.Width, c.Height, c.Depth)
	}
	if c.Capacity < 1 {
		return errors.Errorf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.Points < 0 {
		return errors.Errorf("points must not be negative, got %d", c.Points)
	}
	if c.QuerySphere != nil && c.QueryBox != nil {
		return errors.New("have to specify either a query sphere or a query box, not both")
	}
	if c.QuerySphere != nil && !c.sphere().Valid() {
		return errors.Errorf("invalid query sphere %v", c.QuerySphere)
	}
	if c.QueryBox != nil && !c.box().Valid() {
		return errors.Errorf("invalid query box %v", c.QueryBox)
	}
	if c.Size < 16 {
		return errors.Errorf("image size must be at least 16 pixels, got %d", c.Size)
	}
	if math.Abs(c.Pitch) > 90 {
		return errors.Errorf("pitch must be within [-90, 90] degrees, got %v", c.Pitch)
	}
	if c.Out == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// boundary is the root box. The configured size is a full extent, so it is halved.
func (c config) boundary() octree.Box32 {
	return octree.NewBox(
		float32(c.Center[0]), float32(c.Center[1]), float32(c.Center[2]),
		float32(c.Width/2), float32(c.Height/2), float32(c.Depth/2),
	)
}

func (c config) sphere() octree.Sphere32 {
	q := c.QuerySphere
	return octree.NewSphere(float32(q[0]), float32(q[1]), float32(q[2]), float32(q[3]))
}

func (c config) box() octree.Box32 {
	q := c.QueryBox
	return octree.NewBox(float32(q[0]), float32(q[1]), float32(q[2]), float32(q[3]), float32(q[4]), float32(q[5]))
}

// query returns the configured query volume, or nil when there is none.
func (c config) query() octree.Volume[float32] {
	switch {
	case c.QuerySphere != nil:
		return c.sphere()
	case c.QueryBox != nil:
		return c.box()
	}
	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	values := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		values[i] = v
	}
	return values, nil
}
