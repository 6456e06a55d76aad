package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfig_Valid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Maze.Rows != 10 || cfg.Maze.Cols != 10 {
		t.Errorf("expected 10x10 grid, got %dx%d", cfg.Maze.Rows, cfg.Maze.Cols)
	}
	if cfg.Maze.CarveStartRow != 2 || cfg.Maze.CarveStartCol != 2 {
		t.Errorf("expected carve start (2,2), got (%d,%d)", cfg.Maze.CarveStartRow, cfg.Maze.CarveStartCol)
	}
	if cfg.Geometry.WallThickness != cfg.Geometry.Margin {
		t.Errorf("expected wall thickness to equal margin, got %.1f vs %.1f",
			cfg.Geometry.WallThickness, cfg.Geometry.Margin)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "full config",
			yamlContent: `
window:
  width: 1024
  height: 768
  title: "Test Maze"
maze:
  rows: 12
  cols: 16
  carveStartRow: 3
  carveStartCol: 4
  ballStartRow: 0
  ballStartCol: 0
  seed: 99
geometry:
  margin: 8
  wallThickness: 6
  ballRadiusRatio: 0.4
physics:
  ballSpeed: 250
  gravity: 0
  winGravity: 800
  collapseSeconds: 1.5
  substeps: 2
colors:
  background: "#000"
  wall: white
  boundary: "#808080"
  goal: "#00ff00"
  ball: "#0000ffff"
  solution: "#ff000080"
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
					t.Errorf("expected window 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Maze.Rows != 12 || cfg.Maze.Cols != 16 {
					t.Errorf("expected grid 12x16, got %dx%d", cfg.Maze.Rows, cfg.Maze.Cols)
				}
				if cfg.Maze.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Maze.Seed)
				}
				if cfg.Physics.WinGravity != 800 {
					t.Errorf("expected winGravity 800, got %f", cfg.Physics.WinGravity)
				}
				if cfg.Physics.Substeps != 2 {
					t.Errorf("expected substeps 2, got %d", cfg.Physics.Substeps)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
maze:
  rows: 6
  cols: 6
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Maze.Rows != 6 {
					t.Errorf("expected rows 6, got %d", cfg.Maze.Rows)
				}
				if cfg.Physics.BallSpeed != DefaultBallSpeed {
					t.Errorf("expected default ball speed, got %f", cfg.Physics.BallSpeed)
				}
				if cfg.Window.Width != GameWindowWidth {
					t.Errorf("expected default window width, got %d", cfg.Window.Width)
				}
			},
		},
		{
			name: "small grid clamps default starts",
			yamlContent: `
maze:
  rows: 2
  cols: 2
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Maze.CarveStartRow != 1 || cfg.Maze.CarveStartCol != 1 {
					t.Errorf("expected default carve start clamped to (1,1), got (%d,%d)",
						cfg.Maze.CarveStartRow, cfg.Maze.CarveStartCol)
				}
				if cfg.Maze.BallStartRow != 0 || cfg.Maze.BallStartCol != 0 {
					t.Errorf("expected ball start (0,0), got (%d,%d)", cfg.Maze.BallStartRow, cfg.Maze.BallStartCol)
				}
			},
		},
		{
			name: "explicit carve row kept, default col clamped",
			yamlContent: `
maze:
  rows: 3
  cols: 1
  carveStartRow: 2
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Maze.CarveStartRow != 2 || cfg.Maze.CarveStartCol != 0 {
					t.Errorf("expected carve start (2,0), got (%d,%d)", cfg.Maze.CarveStartRow, cfg.Maze.CarveStartCol)
				}
			},
		},
		{
			name: "carve start outside grid",
			yamlContent: `
maze:
  rows: 2
  cols: 2
  carveStartRow: 2
  carveStartCol: 2
`,
			wantErr:     true,
			errContains: "carve start",
		},
		{
			name: "zero rows",
			yamlContent: `
maze:
  rows: 0
`,
			wantErr:     true,
			errContains: "maze size",
		},
		{
			name: "bad color",
			yamlContent: `
colors:
  wall: "#12345"
`,
			wantErr:     true,
			errContains: "wall",
		},
		{
			name: "margin fills window",
			yamlContent: `
window:
  width: 10
  height: 10
geometry:
  margin: 5
`,
			wantErr:     true,
			errContains: "margin",
		},
		{
			name:        "malformed yaml",
			yamlContent: "maze: [rows",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read game config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadGameConfig_RepositoryDefault(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("data/game.yaml should load: %v", err)
	}
	if cfg.Maze.Rows != DefaultRows || cfg.Maze.Cols != DefaultCols {
		t.Errorf("expected %dx%d grid in data/game.yaml, got %dx%d",
			DefaultRows, DefaultCols, cfg.Maze.Rows, cfg.Maze.Cols)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#333333", color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, false},
		{"#8cba51", color.NRGBA{R: 0x8c, G: 0xba, B: 0x51, A: 0xff}, false},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#ff000080", color.NRGBA{R: 0xff, G: 0, B: 0, A: 0x80}, false},
		{" White ", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"333333", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParseColor_Fallback(t *testing.T) {
	got := MustParseColor("not-a-color")
	if got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected white fallback, got %v", got)
	}
}
