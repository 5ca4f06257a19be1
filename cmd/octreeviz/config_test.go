package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	octree "github.com/bmharper/octree-go"
)

func loadConfig(t *testing.T, args ...string) (config, error) {
	t.Helper()
	var (
		conf    config
		loadErr error
	)
	app := &cli.App{
		Name:  "octreeviz",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			conf, loadErr = configFromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"octreeviz"}, args...)))
	return conf, loadErr
}

func TestConfigDefaults(t *testing.T) {
	conf, err := loadConfig(t)
	require.NoError(t, err)
	require.Equal(t, 4, conf.Capacity)
	require.Equal(t, 200, conf.Points)
	require.Equal(t, "octree.png", conf.Out)
	require.Nil(t, conf.query())

	// the region size is a full extent
	require.Equal(t, octree.NewBox[float32](0, 0, 0, 5, 5, 5), conf.boundary())
}

func TestConfigFlags(t *testing.T) {
	conf, err := loadConfig(t,
		"--width", "20", "--height", "4", "--depth", "8",
		"--center", "1, 2 ,3",
		"--capacity", "2",
		"--query-sphere", "0,0,0,1.5",
	)
	require.NoError(t, err)
	require.Equal(t, octree.NewBox[float32](1, 2, 3, 10, 2, 4), conf.boundary())
	require.Equal(t, 2, conf.Capacity)
	require.Equal(t, octree.NewSphere[float32](0, 0, 0, 1.5), conf.query())
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("OCTREEVIZ_CAPACITY", "7")
	t.Setenv("OCTREEVIZ_QUERY_BOX", "1,1,1,2,2,2")
	conf, err := loadConfig(t)
	require.NoError(t, err)
	require.Equal(t, 7, conf.Capacity)
	require.Equal(t, octree.NewBox[float32](1, 1, 1, 2, 2, 2), conf.query())
}

func TestConfigInvalid(t *testing.T) {
	cases := [][]string{
		{"--capacity", "0"},
		{"--points", "-1"},
		{"--width", "-2"},
		{"--center", "1,2"},
		{"--center", "1,x,2"},
		{"--query-sphere", "0,0,0,-1"},
		{"--query-box", "0,0,0,1,1"},
		{"--query-sphere", "0,0,0,1", "--query-box", "0,0,0,1,1,1"},
		{"--size", "4"},
		{"--pitch", "120"},
		{"--out", ""},
	}
	for _, args := range cases {
		_, err := loadConfig(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestParseFloats(t *testing.T) {
	v, err := parseFloats("1,-2.5, 3e2", 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2.5, 300}, v)

	_, err = parseFloats("", 3)
	require.Error(t, err)
	_, err = parseFloats("1,2,3,4", 3)
	require.Error(t, err)
}
