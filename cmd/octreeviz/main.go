// Command octreeviz fills an octree with random points and renders it to a PNG.
package main

import (
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	octree "github.com/bmharper/octree-go"
	"github.com/bmharper/octree-go/internal/render"
)

func main() {
	app := &cli.App{
		Name:  "octreeviz",
		Usage: "insert random points into an octree and draw it",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			conf, err := configFromContext(c)
			if err != nil {
				return err
			}
			logger, err := newLogger(conf.Debug)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			_, err = run(conf, logger.Sugar())
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

type result struct {
	Inserted int
	Rejected int
	Matches  int
	Info     octree.DebugInfo
	Stats    render.Stats
}

func run(conf config, logger *zap.SugaredLogger) (result, error) {
	var res result

	tree, err := octree.NewOctree32(conf.boundary(), conf.Capacity)
	if err != nil {
		return res, errors.Wrap(err, "creating octree")
	}

	rng := rand.New(rand.NewSource(conf.Seed))
	for i := 0; i < conf.Points; i++ {
		p := randomPoint(rng, tree.Boundary())
		if tree.Insert(p) {
			res.Inserted++
		} else {
			res.Rejected++
			logger.Debugw("point rejected", "point", p.String())
		}
	}

	var highlight []octree.Point32
	if q := conf.query(); q != nil {
		highlight = tree.QueryAll(q)
		res.Matches = len(highlight)
		logger.Debugw("query done", "sphere", conf.QuerySphere, "box", conf.QueryBox, "matches", res.Matches)
	}

	dc, stats := render.Draw(tree, render.Options{
		Size:  conf.Size,
		Yaw:   conf.Yaw * math.Pi / 180,
		Pitch: conf.Pitch * math.Pi / 180,
		Tick:  conf.Tick,
	}, highlight)
	if err := dc.SavePNG(conf.Out); err != nil {
		return res, errors.Wrapf(err, "writing %s", conf.Out)
	}

	res.Info = tree.DebugInfo()
	res.Stats = stats
	logger.Infow("octree rendered",
		"out", conf.Out,
		"inserted", res.Inserted,
		"rejected", res.Rejected,
		"matches", res.Matches,
		"nodes", res.Info.NodeCount,
		"divided", res.Info.DividedCount,
		"max_depth", res.Info.MaxDepth,
		"points_per_depth", res.Info.PointsPerDepth,
	)
	return res, nil
}

// randomPoint picks a point uniformly inside b, one axis at a time.
func randomPoint(rng *rand.Rand, b octree.Box32) octree.Point32 {
	lo, hi := b.Min(), b.Max()
	return octree.Point32{
		X: lo.X + rng.Float32()*(hi.X-lo.X),
		Y: lo.Y + rng.Float32()*(hi.Y-lo.Y),
		Z: lo.Z + rng.Float32()*(hi.Z-lo.Z),
	}
}
