package embedded

import (
	"strings"
	"testing"
	"testing/fstest"
)

// reset 恢复未初始化状态，避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml": {Data: []byte("maze:\n  rows: 4\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile(DefaultGameConfigPath)
	if err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error: %v", err)
	}
	if Exists(DefaultGameConfigPath) {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{"plain path", "data/game.yaml", "rows: 4", ""},
		{"dot prefix", "./data/game.yaml", "rows: 4", ""},
		{"missing file", "data/missing.yaml", "", "file does not exist"},
		{"wrong prefix", "assets/game.yaml", "", "unknown resource path prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ReadFile(%q) error = %v, want containing %q", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("ReadFile(%q) = %q, want containing %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"game config", DefaultGameConfigPath, true},
		{"dot prefix", "./data/game.yaml", true},
		{"missing file", "data/nope.yaml", false},
		{"directory", "data", false},
		{"wrong prefix", "assets/game.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exists(tt.path); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestInitNil(t *testing.T) {
	reset()
	defer reset()

	Init(nil)
	if Exists(DefaultGameConfigPath) {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}
