package render

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	octree "github.com/bmharper/octree-go"
)

func TestCameraProjectFront(t *testing.T) {
	cam := NewCamera(r3.Vector{X: 10, Y: 10, Z: 10}, r3.Vector{X: 1, Y: 1, Z: 1}, 200, 0, 0)

	x, y := cam.Project(r3.Vector{X: 10, Y: 10, Z: 10})
	require.InDelta(t, 100, x, 1e-9)
	require.InDelta(t, 100, y, 1e-9)

	// +X goes right, +Y goes up the image, Z is the view axis
	x, y = cam.Project(r3.Vector{X: 11, Y: 10, Z: 10})
	require.Greater(t, x, 100.0)
	require.InDelta(t, 100, y, 1e-9)
	x, y = cam.Project(r3.Vector{X: 10, Y: 11, Z: 10})
	require.InDelta(t, 100, x, 1e-9)
	require.Less(t, y, 100.0)
	x, y = cam.Project(r3.Vector{X: 10, Y: 10, Z: 42})
	require.InDelta(t, 100, x, 1e-9)
	require.InDelta(t, 100, y, 1e-9)
}

func TestCameraFitsBox(t *testing.T) {
	half := r3.Vector{X: 5, Y: 3, Z: 4}
	cam := NewCamera(r3.Vector{}, half, 400, math.Pi/5, math.Pi/7)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				x, y := cam.Project(r3.Vector{X: sx * half.X, Y: sy * half.Y, Z: sz * half.Z})
				require.True(t, x >= 0 && x <= 400, "x=%v", x)
				require.True(t, y >= 0 && y <= 400, "y=%v", y)
			}
		}
	}

	// looking straight down still has a usable basis
	top := NewCamera(r3.Vector{}, half, 400, 0, math.Pi/2)
	x, y := top.Project(r3.Vector{X: 1})
	require.False(t, math.IsNaN(x) || math.IsNaN(y))
}

func TestDraw(t *testing.T) {
	tree, err := octree.New(octree.NewBox[float32](0, 0, 0, 5, 5, 5), 1)
	require.NoError(t, err)
	a := octree.NewPoint[float32](1, 1, 1)
	b := octree.NewPoint[float32](2, 2, 2)
	c := octree.NewPoint[float32](-3, -3, 3)
	for _, p := range []octree.Point32{a, b, c} {
		require.True(t, tree.Insert(p))
	}

	dc, stats := Draw(tree, Options{Size: 128, Yaw: 0.6, Pitch: 0.4}, []octree.Point32{b})
	require.Equal(t, Stats{Nodes: 9, Points: 3, Highlighted: 1}, stats)

	img := dc.Image()
	require.Equal(t, 128, img.Bounds().Dx())
	require.Equal(t, 128, img.Bounds().Dy())

	// the wireframe covers something other than the background
	drawn := 0
	br, bg, bb, _ := Background.RGBA()
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != br || g != bg || b != bb {
				drawn++
			}
		}
	}
	require.Greater(t, drawn, 0)

	var buf bytes.Buffer
	require.NoError(t, dc.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestDrawDefaults(t *testing.T) {
	tree, err := octree.New(octree.NewBox[float64](0, 0, 0, 1, 1, 1), 4)
	require.NoError(t, err)
	dc, stats := Draw(tree, Options{}, nil)
	require.Equal(t, DefaultSize, dc.Width())
	require.Equal(t, Stats{Nodes: 1}, stats)
}

func TestDepthColor(t *testing.T) {
	require.NotEqual(t, DepthColor(0), DepthColor(1))
	require.Equal(t, DepthColor(0).Hex(), DepthColor(0).Hex())
}
