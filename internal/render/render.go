// Package render draws an octree as a wireframe: the box of every node, and every stored
// point as three short orthogonal ticks. Nothing in here mutates the tree.
package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	octree "github.com/bmharper/octree-go"
)

const (
	DefaultSize = 800
	DefaultTick = 0.1
)

var (
	Background     = color.RGBA{16, 16, 24, 255}
	PointColor     = color.White
	HighlightColor = color.RGBA{255, 48, 48, 255}
)

// Camera is an orthographic view of the tree's root box.
// Yaw turns around the Y axis and Pitch tilts toward it, both in radians.
type Camera struct {
	Yaw   float64
	Pitch float64

	origin r3.Vector
	right  r3.Vector
	up     r3.Vector
	scale  float64
	half   float64
}

// NewCamera frames a box of the given center and half-extents in a square image of size pixels.
func NewCamera(center, halfExtents r3.Vector, size int, yaw, pitch float64) *Camera {
	forward := r3.Vector{
		X: math.Cos(pitch) * math.Sin(yaw),
		Y: math.Sin(pitch),
		Z: math.Cos(pitch) * math.Cos(yaw),
	}
	right := r3.Vector{X: 0, Y: 1, Z: 0}.Cross(forward)
	if right.Norm() == 0 {
		right = r3.Vector{X: 1}
	}
	right = right.Normalize()
	up := forward.Cross(right).Normalize()

	scale := 1.0
	if r := halfExtents.Norm(); r > 0 {
		scale = 0.45 * float64(size) / r
	}
	return &Camera{
		Yaw:    yaw,
		Pitch:  pitch,
		origin: center,
		right:  right,
		up:     up,
		scale:  scale,
		half:   float64(size) / 2,
	}
}

// Project maps a world position to image coordinates.
func (c *Camera) Project(p r3.Vector) (float64, float64) {
	d := p.Sub(c.origin)
	return c.half + d.Dot(c.right)*c.scale, c.half - d.Dot(c.up)*c.scale
}

// Stats counts what was drawn.
type Stats struct {
	Nodes       int
	Points      int
	Highlighted int
}

// Options control a Draw call. Zero values fall back to the defaults above.
type Options struct {
	Size  int
	Yaw   float64
	Pitch float64
	Tick  float64
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Tick <= 0 {
		o.Tick = DefaultTick
	}
	return o
}

// Draw renders tree into a new context. Points listed in highlight are drawn in HighlightColor.
func Draw[TFloat octree.Float](tree *octree.Octree[TFloat], opts Options, highlight []octree.Point[TFloat]) (*gg.Context, Stats) {
	opts = opts.withDefaults()
	root := tree.Boundary()
	cam := NewCamera(toVector(root.Center), toVector(root.HalfExtents), opts.Size, opts.Yaw, opts.Pitch)

	marked := make(map[octree.Point[TFloat]]struct{}, len(highlight))
	for _, p := range highlight {
		marked[p] = struct{}{}
	}

	dc := gg.NewContext(opts.Size, opts.Size)
	dc.SetColor(Background)
	dc.Clear()

	var stats Stats
	tree.Walk(func(node *octree.Octree[TFloat], depth int) bool {
		stats.Nodes++
		b := node.Boundary()
		drawBox(dc, cam, toVector(b.Min()), toVector(b.Max()), DepthColor(depth))

		for _, p := range node.Points() {
			stats.Points++
			c, w := color.Color(PointColor), 1.0
			if _, ok := marked[p]; ok {
				stats.Highlighted++
				c, w = HighlightColor, 2.0
			}
			drawTicks(dc, cam, toVector(p), opts.Tick, c, w)
		}
		return true
	})
	return dc, stats
}

// DepthColor gives each tree level its own hue.
func DepthColor(depth int) colorful.Color {
	return colorful.Hsv(math.Mod(float64(depth)*47, 360), 0.65, 0.95)
}

func drawBox(dc *gg.Context, cam *Camera, lo, hi r3.Vector, c color.Color) {
	corner := func(x, y, z bool) r3.Vector {
		v := lo
		if x {
			v.X = hi.X
		}
		if y {
			v.Y = hi.Y
		}
		if z {
			v.Z = hi.Z
		}
		return v
	}
	dc.SetColor(c)
	dc.SetLineWidth(1)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			line(dc, cam, corner(false, a, b), corner(true, a, b))
			line(dc, cam, corner(a, false, b), corner(a, true, b))
			line(dc, cam, corner(a, b, false), corner(a, b, true))
		}
	}
	dc.Stroke()
}

func drawTicks(dc *gg.Context, cam *Camera, p r3.Vector, tick float64, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	for _, axis := range []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}} {
		d := axis.Mul(tick)
		line(dc, cam, p.Sub(d), p.Add(d))
	}
	dc.Stroke()
}

func line(dc *gg.Context, cam *Camera, a, b r3.Vector) {
	x1, y1 := cam.Project(a)
	x2, y2 := cam.Project(b)
	dc.DrawLine(x1, y1, x2, y2)
}

func toVector[TFloat octree.Float](p octree.Point[TFloat]) r3.Vector {
	return r3.Vector{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
