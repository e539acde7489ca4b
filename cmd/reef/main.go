package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/Carmen-Shannon/oxy-reef/engine"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
	"github.com/Carmen-Shannon/oxy-reef/engine/noise"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer"
	"github.com/Carmen-Shannon/oxy-reef/engine/scene"
	"github.com/Carmen-Shannon/oxy-reef/engine/window"
)

func main() {
	var (
		assets        = flag.String("assets", "assets", "directory holding corals/, fish/ and the sculpture models")
		seed          = flag.Int64("seed", 0, "seabed noise seed")
		perlin        = flag.Bool("perlin", false, "use Perlin instead of OpenSimplex noise")
		placementSeed = flag.Uint64("placement-seed", 0, "seed for coral placement (0 = random)")
		width         = flag.Int("width", 1920, "window width")
		height        = flag.Int("height", 1080, "window height")
		wheel         = flag.Float64("wheel-multiplier", 1, "wheel and trackpad scroll sensitivity")
		msaa          = flag.Int("msaa", 4, "MSAA sample count (1, 4, 8 or 16)")
		vsync         = flag.Bool("vsync", true, "wait for vertical blank when presenting")
		software      = flag.Bool("software", false, "force the fallback software adapter")
		workers       = flag.Int("workers", loader.DefaultWorkers, "asset loader workers")
		tickRate      = flag.Float64("tickrate", 60, "scene ticks per second (0 = every window iteration)")
		measured      = flag.Bool("measured-delta", false, "advance locomotion by the measured frame delta")
		gridIndex     = flag.Bool("grid-index", false, "use a spatial grid for coral placement")
		profile       = flag.Bool("profile", false, "log frame statistics once per second (toggle with P)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[REEF] ", log.LstdFlags)

	cfg := scene.DefaultConfig()
	cfg.AssetDir = *assets
	cfg.Seed = *seed
	cfg.CoralGridIndex = *gridIndex
	if *perlin {
		cfg.NoiseBackend = noise.BackendTypePerlin
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Oxy Reef"),
		window.WithSize(*width, *height),
		window.WithWheelStep(cfg.WheelStep),
		window.WithWheelMultiplier(float32(*wheel)),
	)

	presentMode := renderer.PresentModeVSync
	if !*vsync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(*msaa)),
		renderer.WithForceSoftwareRenderer(*software),
	)
	sr, err := renderer.NewSceneRenderer(r)
	if err != nil {
		log.Fatalf("scene renderer: %v", err)
	}
	defer sr.Release()

	// ── Scene ───────────────────────────────────────────────────────────
	opts := []scene.SceneAnimatorBuilderOption{
		scene.WithConfig(cfg),
		scene.WithLogger(log.New(os.Stdout, "[SCENE] ", log.LstdFlags)),
		scene.WithAspect(float32(win.Width()) / float32(win.Height())),
		scene.WithWorkers(*workers),
		scene.WithMeasuredDelta(*measured),
	}
	if *placementSeed != 0 {
		opts = append(opts, scene.WithRand(rand.New(rand.NewPCG(*placementSeed, *placementSeed))))
	}
	sc, err := scene.NewSceneAnimator(sr, opts...)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
		engine.WithRenderer(sr),
		engine.WithWheelStep(cfg.WheelStep),
		engine.WithProfiling(*profile),
		engine.WithTickRate(*tickRate),
	)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Oxy Reef                                            ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Scroll / Arrows / J,K = descend and climb           ║")
	fmt.Println("║  Space, PgUp/PgDn = page   Home/End = jump           ║")
	fmt.Println("║  P = profiler                                        ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	logger.Printf("starting with seed %d, assets in %s", cfg.Seed, cfg.AssetDir)
	eng.Run()
	logger.Println("stopped")
}
