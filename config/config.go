package config

import "image/color"

// PhysicsConfig contains the collision pipeline tuning values
type PhysicsConfig struct {
	// Forces
	Gravity float64 // Downward acceleration applied as m*g to finite masses

	// Resolution
	Restitution float64 // Fraction of separating velocity kept after a contact
	Correction  string  // "symmetric" or "lhs-only"
	DedupePairs bool    // Resolve each unordered pair once per tick

	// Broad phase
	BroadPhase             string  // "bsp", "grid" or "brute"
	ParallelBuildThreshold int     // Subtree size above which the BSP build forks (0 = serial)
	GridCellSize           int     // resolv cell size for the grid broad phase
	GridMinX, GridMinY     float64 // World-space origin of the grid
	GridWidth, GridHeight  int     // Grid extent in world units

	// Effects
	ContactEffectTTL float64 // Seconds a contact marker stays visible
}

// SimConfig contains the fixed step and demo scene values
type SimConfig struct {
	Dt            float64 // Seconds per tick
	DemoSquares   int     // Static squares in the demo scene
	DemoCircles   int     // Falling circles in the demo scene
	DemoMinRadius float64
	DemoMaxRadius float64
	DemoSeed      int64
}

// ServerConfig contains headless server options
type ServerConfig struct {
	Port       uint
	StatusPort int // HTTP status endpoint (0 = disabled)
	TickRate   int
	Level      string // TMX path, empty = demo scene
	SaveSlot   string // gdata key used by save/load commands
	AppName    string // gdata application name
	MaxBodies  int    // spawn commands are refused beyond this
}

// ViewerConfig contains the debug viewer window values
type ViewerConfig struct {
	Width, Height int
	Zoom          float64 // pixels per world unit
	PanSpeed      float64 // screen pixels per second
	ZoomStep      float64 // zoom factor per key press

	BackgroundColor color.RGBA
	DynamicColor    color.RGBA
	StaticColor     color.RGBA
	KinematicColor  color.RGBA
	ContactColor    color.RGBA
	SpringColor     color.RGBA
	TreeColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogStepTiming bool // Log collision pass duration every tick
	DrawTree      bool // Draw BSP partition lines in the viewer
}

var Physics PhysicsConfig
var Sim SimConfig
var Server ServerConfig
var Viewer ViewerConfig
var Debug DebugConfig

func init() {
	Physics = PhysicsConfig{
		Gravity: 300.0,

		Restitution: 0.9,
		Correction:  "symmetric",
		DedupePairs: true,

		BroadPhase:             "bsp",
		ParallelBuildThreshold: 2048,
		GridCellSize:           32,
		GridMinX:               -2048,
		GridMinY:               -2048,
		GridWidth:              4096,
		GridHeight:             4096,

		ContactEffectTTL: 0.05,
	}

	Sim = SimConfig{
		Dt:            1.0 / 60.0,
		DemoSquares:   40,
		DemoCircles:   400,
		DemoMinRadius: 5,
		DemoMaxRadius: 12,
		DemoSeed:      1,
	}

	Server = ServerConfig{
		Port:       7373,
		StatusPort: 8080,
		TickRate:   60,
		SaveSlot:   "snapshot",
		AppName:    GetEnv("BSP2D_APP_NAME", "bsp2d"),
		MaxBodies:  5000,
	}

	Viewer = ViewerConfig{
		Width:    800,
		Height:   600,
		Zoom:     0.35,
		PanSpeed: 600,
		ZoomStep: 1.1,

		BackgroundColor: color.RGBA{R: 16, G: 16, B: 24, A: 255},
		DynamicColor:    color.RGBA{R: 110, G: 200, B: 255, A: 255},
		StaticColor:     color.RGBA{R: 180, G: 180, B: 180, A: 255},
		KinematicColor:  color.RGBA{R: 255, G: 180, B: 50, A: 255},
		ContactColor:    color.RGBA{R: 255, G: 60, B: 60, A: 255},
		SpringColor:     color.RGBA{R: 120, G: 255, B: 120, A: 255},
		TreeColor:       color.RGBA{R: 80, G: 80, B: 120, A: 255},
	}

	Debug = DebugConfig{
		LogStepTiming: GetEnv("BSP2D_LOG_STEP_TIMING", "") != "",
	}
}
