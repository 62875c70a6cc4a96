package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags the user actually set are
// applied on top of the loaded file.
type Flags struct {
	ConfigPath string
	LogLevel   string

	Width    int
	Height   int
	CellSize int
	Seed     int64
	NoSeed   bool

	Paused bool
	TPS    int

	Renderer string
	Halo     int

	DBPath string
}

// Bind attaches the flags to fs using the built-in defaults for help text.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&f.LogLevel, "log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.IntVar(&f.Width, "width", d.Grid.Width, "drawing area width in pixels")
	fs.IntVar(&f.Height, "height", d.Grid.Height, "drawing area height in pixels")
	fs.IntVar(&f.CellSize, "cell-size", d.Grid.CellSize, "pixels per cell")
	fs.Int64Var(&f.Seed, "seed", d.Grid.Seed, "RNG seed (0 = random based on time)")
	fs.BoolVar(&f.NoSeed, "empty", false, "start with an empty grid")
	fs.BoolVar(&f.Paused, "paused", d.Playback.Paused, "start paused")
	fs.IntVar(&f.TPS, "tps", d.Playback.TPS, "generations per second")
	fs.StringVar(&f.Renderer, "renderer", d.Render.Strategy, "renderer strategy: full or dirty")
	fs.IntVar(&f.Halo, "halo", d.Render.Halo, "dirty halo radius in cells")
	fs.StringVar(&f.DBPath, "db", d.Storage.Path, "path to the run history database")
}

// Apply copies every flag set on fs into cfg.
func (f *Flags) Apply(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if fs.Changed("width") {
		cfg.Grid.Width = f.Width
	}
	if fs.Changed("height") {
		cfg.Grid.Height = f.Height
	}
	if fs.Changed("cell-size") {
		cfg.Grid.CellSize = f.CellSize
	}
	if fs.Changed("seed") {
		cfg.Grid.Seed = f.Seed
	}
	if fs.Changed("empty") {
		cfg.Grid.SeedRandom = !f.NoSeed
	}
	if fs.Changed("paused") {
		cfg.Playback.Paused = f.Paused
	}
	if fs.Changed("tps") {
		cfg.Playback.TPS = f.TPS
	}
	if fs.Changed("renderer") {
		cfg.Render.Strategy = f.Renderer
	}
	if fs.Changed("halo") {
		cfg.Render.Halo = f.Halo
	}
	if fs.Changed("db") {
		cfg.Storage.Path = f.DBPath
	}
}
