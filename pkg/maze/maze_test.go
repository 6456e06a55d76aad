package maze

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

// zeroRand 每次都返回 0，使 Shuffle 保持原顺序
type zeroRand struct{}

func (zeroRand) Intn(n int) int { return 0 }

// carveRecursive 递归版本的参考实现，用于验证显式栈版本的访问顺序
func carveRecursive(m *Maze, c Cell, rng Rand) {
	m.Visited[c.Row][c.Col] = true

	neighbors := make([]step, 0, 4)
	for _, d := range directions {
		dr, dc := d.offset()
		next := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if m.InBounds(next) {
			neighbors = append(neighbors, step{to: next, dir: d})
		}
	}
	Shuffle(neighbors, rng)

	for _, s := range neighbors {
		if m.Visited[s.to.Row][s.to.Col] {
			continue
		}
		m.open(c, s.dir)
		carveRecursive(m, s.to, rng)
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{1, 1}, {1, 2}, {2, 1}, {1, 10}, {10, 1}, {2, 2}, {3, 3}, {5, 8}, {10, 10}, {17, 23},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			m, err := Generate(size.rows, size.cols, size.rows-1, size.cols-1, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Generate(%d, %d) error: %v", size.rows, size.cols, err)
			}
			if err := m.Verify(); err != nil {
				t.Errorf("%dx%d seed %d: %v", size.rows, size.cols, seed, err)
			}
			if got, want := m.OpenEdgeCount(), size.rows*size.cols-1; got != want {
				t.Errorf("%dx%d seed %d: open edges = %d, want %d", size.rows, size.cols, seed, got, want)
			}
		}
	}
}

func TestGenerate_SingleCell(t *testing.T) {
	m, err := Generate(1, 1, 0, 0, zeroRand{})
	if err != nil {
		t.Fatalf("Generate(1, 1) error: %v", err)
	}

	if !m.Visited[0][0] {
		t.Error("single cell should be visited")
	}
	if len(m.Horizontal) != 0 {
		t.Errorf("expected no horizontal edge rows, got %d", len(m.Horizontal))
	}
	if len(m.Vertical) != 1 || len(m.Vertical[0]) != 0 {
		t.Errorf("expected 1 empty vertical edge row, got %v", m.Vertical)
	}
	if m.OpenEdgeCount() != 0 {
		t.Errorf("expected 0 open edges, got %d", m.OpenEdgeCount())
	}
}

func TestGenerate_MatrixShapes(t *testing.T) {
	m, err := Generate(4, 7, 0, 0, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if len(m.Horizontal) != 3 {
		t.Errorf("horizontal rows = %d, want 3", len(m.Horizontal))
	}
	for r, row := range m.Horizontal {
		if len(row) != 7 {
			t.Errorf("horizontal row %d has %d cols, want 7", r, len(row))
		}
	}
	if len(m.Vertical) != 4 {
		t.Errorf("vertical rows = %d, want 4", len(m.Vertical))
	}
	for r, row := range m.Vertical {
		if len(row) != 6 {
			t.Errorf("vertical row %d has %d cols, want 6", r, len(row))
		}
	}
}

// TestGenerate_ZeroRandLayout 固定随机序列下 3x3、起点 (2,2) 的布局可复现
func TestGenerate_ZeroRandLayout(t *testing.T) {
	m, err := Generate(3, 3, 2, 2, zeroRand{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for r, row := range m.Visited {
		for c, v := range row {
			if !v {
				t.Errorf("cell (%d,%d) not visited", r, c)
			}
		}
	}

	wantH := [][]bool{
		{true, true, true},
		{true, true, true},
	}
	wantV := [][]bool{
		{false, true},
		{false, false},
		{true, false},
	}
	if !reflect.DeepEqual(m.Horizontal, wantH) {
		t.Errorf("Horizontal = %v, want %v", m.Horizontal, wantH)
	}
	if !reflect.DeepEqual(m.Vertical, wantV) {
		t.Errorf("Vertical = %v, want %v", m.Vertical, wantV)
	}
	if m.OpenEdgeCount() != 8 {
		t.Errorf("open edges = %d, want 8", m.OpenEdgeCount())
	}
}

// TestGenerate_MatchesRecursive 显式栈版本与递归版本在相同随机序列下结果一致
func TestGenerate_MatchesRecursive(t *testing.T) {
	sizes := []struct{ rows, cols, startRow, startCol int }{
		{3, 3, 2, 2},
		{6, 9, 0, 0},
		{12, 5, 7, 3},
		{20, 20, 2, 2},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 10; seed++ {
			got, err := Generate(size.rows, size.cols, size.startRow, size.startCol, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}

			want := newMaze(size.rows, size.cols, Cell{Row: size.startRow, Col: size.startCol})
			carveRecursive(want, want.Origin, rand.New(rand.NewSource(seed)))

			if !reflect.DeepEqual(got.Horizontal, want.Horizontal) || !reflect.DeepEqual(got.Vertical, want.Vertical) {
				t.Errorf("%dx%d seed %d: iterative layout differs from recursive layout\ngot:\n%s\nwant:\n%s",
					size.rows, size.cols, seed, got, want)
			}
		}
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	a, err := Generate(8, 8, 2, 2, NewRand(1234))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	b, err := Generate(8, 8, 2, 2, NewRand(1234))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("same seed produced different mazes:\n%s\n%s", a, b)
	}
}

func TestGenerate_DifferentSequences(t *testing.T) {
	layouts := make(map[string]bool)
	for seed := int64(1); seed <= 5; seed++ {
		m, err := Generate(10, 10, 2, 2, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if err := m.Verify(); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
		layouts[m.String()] = true
	}

	if len(layouts) < 2 {
		t.Errorf("expected structurally different mazes across seeds, got %d distinct", len(layouts))
	}
}

func TestGenerate_LargeGrid(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large grid in short mode")
	}

	m, err := Generate(300, 300, 2, 2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if err := m.Verify(); err != nil {
		t.Errorf("300x300: %v", err)
	}
}

func TestGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name               string
		rows, cols         int
		startRow, startCol int
		rng                Rand
	}{
		{"zero rows", 0, 3, 0, 0, zeroRand{}},
		{"negative cols", 3, -1, 0, 0, zeroRand{}},
		{"start row out of range", 3, 3, 3, 0, zeroRand{}},
		{"start col negative", 3, 3, 0, -1, zeroRand{}},
		{"nil rng", 3, 3, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(tt.rows, tt.cols, tt.startRow, tt.startCol, tt.rng)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if m != nil {
				t.Error("expected nil maze on error")
			}
		})
	}
}

// TestOpen_EdgeIndexing 边记录在下标较小的格子上
func TestOpen_EdgeIndexing(t *testing.T) {
	tests := []struct {
		dir        Direction
		horizontal bool
		row, col   int
	}{
		{Down, true, 1, 1},
		{Up, true, 0, 1},
		{Right, false, 1, 1},
		{Left, false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			m := newMaze(3, 3, Cell{})
			m.open(Cell{Row: 1, Col: 1}, tt.dir)

			if m.OpenEdgeCount() != 1 {
				t.Fatalf("expected exactly one open edge, got %d", m.OpenEdgeCount())
			}

			var got bool
			if tt.horizontal {
				got = m.Horizontal[tt.row][tt.col]
			} else {
				got = m.Vertical[tt.row][tt.col]
			}
			if !got {
				t.Errorf("moving %s from (1,1) should open edge (%d,%d) in %s matrix",
					tt.dir, tt.row, tt.col, map[bool]string{true: "horizontal", false: "vertical"}[tt.horizontal])
			}

			if !m.IsOpen(Cell{Row: 1, Col: 1}, tt.dir) {
				t.Errorf("IsOpen((1,1), %s) = false after open", tt.dir)
			}
		})
	}
}

func TestIsOpen_OuterWalls(t *testing.T) {
	m, err := Generate(2, 2, 0, 0, zeroRand{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if m.IsOpen(Cell{Row: 0, Col: 0}, Up) {
		t.Error("top outer wall should never be open")
	}
	if m.IsOpen(Cell{Row: 0, Col: 0}, Left) {
		t.Error("left outer wall should never be open")
	}
	if m.IsOpen(Cell{Row: 1, Col: 1}, Down) {
		t.Error("bottom outer wall should never be open")
	}
	if m.IsOpen(Cell{Row: 5, Col: 5}, Up) {
		t.Error("out of bounds cell should report closed")
	}
}

func TestClosedEdgeCount(t *testing.T) {
	m, err := Generate(4, 5, 2, 2, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// 内部边总数 3*5 + 4*4 = 31，通路 19 条
	if got := m.ClosedEdgeCount(); got != 12 {
		t.Errorf("closed edges = %d, want 12", got)
	}
}

func TestOppositeCorner(t *testing.T) {
	m := newMaze(10, 6, Cell{})

	if got := m.OppositeCorner(Cell{Row: 0, Col: 0}); got != (Cell{Row: 9, Col: 5}) {
		t.Errorf("OppositeCorner(0,0) = %v, want (9,5)", got)
	}
	if got := m.OppositeCorner(Cell{Row: 9, Col: 0}); got != (Cell{Row: 0, Col: 5}) {
		t.Errorf("OppositeCorner(9,0) = %v, want (0,5)", got)
	}
}

func TestVerify_DetectsCycle(t *testing.T) {
	m, err := Generate(3, 3, 2, 2, zeroRand{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// 额外打通一条墙形成环
	m.Vertical[1][0] = true
	if err := m.Verify(); err == nil {
		t.Error("expected Verify to reject maze with a cycle")
	}
}

func TestVerify_DetectsUnvisited(t *testing.T) {
	m := newMaze(2, 2, Cell{})
	if err := m.Verify(); err == nil {
		t.Error("expected Verify to reject an uncarved grid")
	}
}

func TestVerify_DetectsMalformedMatrices(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Maze)
		wantErr string
	}{
		{"short visited row", func(m *Maze) { m.Visited[1] = m.Visited[1][:2] }, "visited matrix row 1"},
		{"short horizontal row", func(m *Maze) { m.Horizontal[0] = m.Horizontal[0][:1] }, "horizontal matrix row 0"},
		{"short vertical row", func(m *Maze) { m.Vertical[2] = nil }, "vertical matrix row 2"},
		{"long vertical row", func(m *Maze) { m.Vertical[0] = append(m.Vertical[0], true) }, "vertical matrix row 0"},
		{"missing horizontal row", func(m *Maze) { m.Horizontal = m.Horizontal[:1] }, "horizontal matrix has 1 rows"},
		{"origin outside grid", func(m *Maze) { m.Origin = Cell{Row: 3, Col: 0} }, "origin (3,0)"},
		{"zero cols", func(m *Maze) { m.Cols = 0 }, "grid size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(3, 3, 2, 2, zeroRand{})
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			tt.mutate(m)

			err = m.Verify()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestString_SingleCell(t *testing.T) {
	m, err := Generate(1, 1, 0, 0, zeroRand{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	want := "+--+\n|  |\n+--+\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestString_OpenPassages(t *testing.T) {
	m, err := Generate(1, 2, 0, 0, zeroRand{})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	want := "+--+--+\n|     |\n+--+--+\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
