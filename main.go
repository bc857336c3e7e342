package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Elitism/Earth-Population-Map/geo"
	"github.com/Elitism/Earth-Population-Map/heatmap"
	"github.com/Elitism/Earth-Population-Map/internal/buildinfo"
	"github.com/Elitism/Earth-Population-Map/scene"
	"github.com/Elitism/Earth-Population-Map/viewer"
)

// globeRadius is the sphere radius shared by the projection, the sphere
// mesh and the point cloud.
const globeRadius = 2.5

func main() {
	var (
		dataPath  = flag.String("data", "GeoNames_Cleaned.csv", "Dataset CSV with Latitude, Longitude and Population columns.")
		texPath   = flag.String("texture", "earth_texture.jpg", "Earth texture image (JPEG or PNG).")
		schemeArg = flag.String("scheme", "plasma", "Color scheme: plasma, viridis, hot, cool, rainbow, green-red.")
		linear    = flag.Bool("linear", false, "Disable logarithmic population scaling.")
		width     = flag.Int("width", 900, "Window width.")
		height    = flag.Int("height", 650, "Window height.")
		headless  = flag.Bool("headless", false, "Compose frames without a window.")
		hz        = flag.Int("hz", 60, "Tick rate in headless mode.")
		ticks     = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	)
	flag.Parse()

	scheme, ok := heatmap.ParseScheme(*schemeArg)
	if !ok {
		log.Printf("unknown scheme %q, falling back to %v", *schemeArg, scheme)
	}

	records, err := geo.ReadRecordsFile(*dataPath)
	if err != nil {
		// Degraded but renderable: globe only, no points.
		log.Printf("dataset: %v (continuing with an empty point cloud)", err)
	} else {
		log.Printf("loaded %d records from %s", len(records), *dataPath)
	}

	s := scene.New(records, globeRadius, scene.SchemeConfig{
		Scheme:      scheme,
		Logarithmic: !*linear,
	})

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := viewer.RunHeadless(ctx, s, viewer.HeadlessConfig{Hz: *hz, Ticks: *ticks})
		if err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	texture, err := viewer.LoadTexture(*texPath)
	if err != nil {
		log.Printf("texture: %v (rendering the sphere untextured)", err)
	}

	v, err := viewer.New(viewer.Config{
		Title:  "Earth Population Map (" + buildinfo.Short() + ")",
		Width:  *width,
		Height: *height,
	}, s, texture)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := viewer.RunWindow(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
