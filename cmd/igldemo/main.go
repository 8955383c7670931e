// Command igldemo records a small legacy scene into display objects, edits
// it through tags and renders it with a registered backend.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/irisgl"
	"github.com/gogpu/irisgl/backend/batch"
	"github.com/gogpu/irisgl/backend/raster"
	"github.com/gogpu/irisgl/config"
	"github.com/gogpu/irisgl/curve"
	"github.com/gogpu/irisgl/gltypes"

	_ "github.com/gogpu/irisgl/backend/trace"
)

const (
	scene gltypes.ObjectID = 1
	wheel gltypes.ObjectID = 2

	tagColor gltypes.Tag = 10
	tagBody  gltypes.Tag = 11
)

func main() {
	var (
		cfgPath = flag.String("config", "", "TOML or YAML configuration file")
		name    = flag.String("backend", "", "backend name, overrides the configuration")
		output  = flag.String("output", "demo.png", "output file for the raster backend")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *name != "" {
		cfg.Backend = *name
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	irisgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := irisgl.NewContextFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}

	record(c, float32(cfg.Width), float32(cfg.Height))

	// Recolor the body without re-recording the scene.
	c.Editobj(scene)
	c.Objreplace(tagColor)
	c.Cpack(0xff3080ff)
	c.Closeobj()

	c.Callobj(scene)

	switch be := c.Backend().(type) {
	case *raster.Backend:
		if err := savePNG(be, *output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
	case *batch.Backend:
		bs := be.Flush()
		n := 0
		for i := range bs {
			n += len(bs[i].Vertices)
		}
		log.Printf("Demo produced %d batches, %d vertices\n", len(bs), n)
		words, err := batch.CompileShader()
		if err != nil {
			log.Fatalf("Failed to compile batch shader: %v", err)
		}
		log.Printf("Batch shader: %d SPIR-V words, stride %d\n", len(words), batch.VertexStride)
	default:
		log.Printf("Demo rendered with %q: %+v\n", cfg.Backend, c.Stats())
	}
}

// record builds the wheel and scene objects.
func record(c *irisgl.Context, w, h float32) {
	c.Defbasis(1, curve.Bezier)

	c.Makeobj(wheel)
	c.Color(irisgl.Black)
	c.Circf(0, 0, h/16)
	c.Color(irisgl.White)
	c.Circ(0, 0, h/32)
	c.Closeobj()

	c.Makeobj(scene)
	c.Ortho2(0, w, 0, h)
	c.Cpack(0xff402010)
	c.Clear()

	c.Maketag(tagColor)
	c.Cpack(0xff0000ff)
	c.Maketag(tagBody)
	c.Rectf(w/8, h/4, w*7/8, h/2)
	c.Bgnpolygon()
	c.V2f([2]float32{w / 4, h / 2})
	c.V2f([2]float32{w * 3 / 4, h / 2})
	c.V2f([2]float32{w * 5 / 8, h * 3 / 4})
	c.V2f([2]float32{w * 3 / 8, h * 3 / 4})
	c.Endpolygon()

	for _, x := range []float32{w / 4, w * 3 / 4} {
		c.Pushmatrix()
		c.Translate(x, h/4, 0)
		c.Callobj(wheel)
		c.Popmatrix()
	}

	c.Color(irisgl.Yellow)
	c.Curvebasis(1)
	c.Curveprecision(20)
	c.Crv([4][3]float32{
		{w / 8, h * 7 / 8, 0},
		{w * 3 / 8, h, 0},
		{w * 5 / 8, h * 3 / 4, 0},
		{w * 7 / 8, h * 7 / 8, 0},
	})

	c.Color(irisgl.White)
	c.Cmov(w/16, h/16, 0)
	c.Charstr("irisgl")
	c.Closeobj()
}

func savePNG(be *raster.Backend, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, be.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
