package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认配置常量
// 墙厚等于边距
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600

	DefaultRows          = 10
	DefaultCols          = 10
	DefaultCarveStartRow = 2
	DefaultCarveStartCol = 2

	DefaultMargin          = 5.0
	DefaultWallThickness   = 5.0
	DefaultBallRadiusRatio = 0.5

	// DefaultBallSpeed 小球速度（像素/秒），即每帧 5 像素
	DefaultBallSpeed = 300.0
	// DefaultWinGravity 胜利后的重力加速度（像素/秒²）
	DefaultWinGravity = 1000.0
	// DefaultCollapseSeconds 胜利后墙体坍塌持续时间，之后模拟停止
	DefaultCollapseSeconds = 2.5
	DefaultSubsteps        = 4
)

// GameConfig 游戏启动配置
//
// 启动时读取一次：YAML 文件 → 环境变量覆盖 → 命令行参数覆盖。
// 运行期间不会重新加载。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// Maze 迷宫网格配置
	Maze MazeConfig `yaml:"maze"`

	// Geometry 几何尺寸配置
	Geometry GeometryConfig `yaml:"geometry"`

	// Physics 物理与操控配置
	Physics PhysicsConfig `yaml:"physics"`

	// Colors 颜色配置（十六进制字符串，如 "#333333"）
	Colors ColorConfig `yaml:"colors"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// MazeConfig 迷宫网格配置
type MazeConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// CarveStartRow/CarveStartCol 雕刻起点
	CarveStartRow int `yaml:"carveStartRow"`
	CarveStartCol int `yaml:"carveStartCol"`

	// BallStartRow/BallStartCol 小球出生格，终点位于其对角
	BallStartRow int `yaml:"ballStartRow"`
	BallStartCol int `yaml:"ballStartCol"`

	// Seed 随机种子，0 表示基于时间
	Seed int64 `yaml:"seed"`
}

// GeometryConfig 几何尺寸配置（像素）
type GeometryConfig struct {
	Margin          float64 `yaml:"margin"`
	WallThickness   float64 `yaml:"wallThickness"`
	BallRadiusRatio float64 `yaml:"ballRadiusRatio"`
}

// PhysicsConfig 物理与操控配置
type PhysicsConfig struct {
	BallSpeed       float64 `yaml:"ballSpeed"`
	Gravity         float64 `yaml:"gravity"`    // 游戏进行中的重力，正值时松开按键小球会下沉
	WinGravity      float64 `yaml:"winGravity"` // 胜利后的重力
	CollapseSeconds float64 `yaml:"collapseSeconds"`
	Substeps        int     `yaml:"substeps"`
}

// ColorConfig 颜色配置
type ColorConfig struct {
	Background string `yaml:"background"`
	Wall       string `yaml:"wall"`
	Boundary   string `yaml:"boundary"`
	Goal       string `yaml:"goal"`
	Ball       string `yaml:"ball"`
	Solution   string `yaml:"solution"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Maze Ball",
		},
		Maze: MazeConfig{
			Rows:          DefaultRows,
			Cols:          DefaultCols,
			CarveStartRow: DefaultCarveStartRow,
			CarveStartCol: DefaultCarveStartCol,
		},
		Geometry: GeometryConfig{
			Margin:          DefaultMargin,
			WallThickness:   DefaultWallThickness,
			BallRadiusRatio: DefaultBallRadiusRatio,
		},
		Physics: PhysicsConfig{
			BallSpeed:       DefaultBallSpeed,
			WinGravity:      DefaultWinGravity,
			CollapseSeconds: DefaultCollapseSeconds,
			Substeps:        DefaultSubsteps,
		},
		Colors: ColorConfig{
			Background: "#333333",
			Wall:       "#ffffff",
			Boundary:   "#9a9a9a",
			Goal:       "#8cba51",
			Ball:       "#ccedd2",
			Solution:   "#f0a35e80",
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 数据解析游戏配置
// 未出现在 YAML 中的字段保留默认值；沿用默认值的起点会被收回到网格内
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	var present explicitStarts
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	cfg.clampDefaultedStarts(present)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// explicitStarts 记录 YAML 中显式写出的起点字段
type explicitStarts struct {
	Maze struct {
		CarveStartRow *int `yaml:"carveStartRow"`
		CarveStartCol *int `yaml:"carveStartCol"`
		BallStartRow  *int `yaml:"ballStartRow"`
		BallStartCol  *int `yaml:"ballStartCol"`
	} `yaml:"maze"`
}

// clampDefaultedStarts 只把沿用默认值的起点收回到网格内
// 显式写出的越界起点保留原值，交给 Validate 报错
func (c *GameConfig) clampDefaultedStarts(present explicitStarts) {
	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return
	}
	m := present.Maze
	if m.CarveStartRow == nil {
		c.Maze.CarveStartRow = clampInt(c.Maze.CarveStartRow, 0, c.Maze.Rows-1)
	}
	if m.CarveStartCol == nil {
		c.Maze.CarveStartCol = clampInt(c.Maze.CarveStartCol, 0, c.Maze.Cols-1)
	}
	if m.BallStartRow == nil {
		c.Maze.BallStartRow = clampInt(c.Maze.BallStartRow, 0, c.Maze.Rows-1)
	}
	if m.BallStartCol == nil {
		c.Maze.BallStartCol = clampInt(c.Maze.BallStartCol, 0, c.Maze.Cols-1)
	}
}

// Validate 验证配置有效性
//
// 检查项：
//   - 窗口与网格尺寸为正
//   - 雕刻起点与小球出生格在网格内
//   - 几何尺寸非负，且边距留出后仍有绘制空间
//   - 颜色字符串可以解析
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return fmt.Errorf("maze size must be positive, got %dx%d", c.Maze.Rows, c.Maze.Cols)
	}
	if !c.inGrid(c.Maze.CarveStartRow, c.Maze.CarveStartCol) {
		return fmt.Errorf("carve start (%d,%d) outside %dx%d grid",
			c.Maze.CarveStartRow, c.Maze.CarveStartCol, c.Maze.Rows, c.Maze.Cols)
	}
	if !c.inGrid(c.Maze.BallStartRow, c.Maze.BallStartCol) {
		return fmt.Errorf("ball start (%d,%d) outside %dx%d grid",
			c.Maze.BallStartRow, c.Maze.BallStartCol, c.Maze.Rows, c.Maze.Cols)
	}

	if c.Geometry.Margin < 0 || c.Geometry.WallThickness < 0 {
		return fmt.Errorf("margin (%.1f) and wall thickness (%.1f) must not be negative",
			c.Geometry.Margin, c.Geometry.WallThickness)
	}
	if float64(c.Window.Width) <= 2*c.Geometry.Margin || float64(c.Window.Height) <= 2*c.Geometry.Margin {
		return fmt.Errorf("margin %.1f leaves no room inside %dx%d window",
			c.Geometry.Margin, c.Window.Width, c.Window.Height)
	}
	if c.Geometry.BallRadiusRatio <= 0 || c.Geometry.BallRadiusRatio > 1 {
		return fmt.Errorf("ball radius ratio must be in (0, 1], got %.2f", c.Geometry.BallRadiusRatio)
	}

	if c.Physics.BallSpeed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %.1f", c.Physics.BallSpeed)
	}
	if c.Physics.CollapseSeconds < 0 {
		return fmt.Errorf("collapse seconds must not be negative, got %.1f", c.Physics.CollapseSeconds)
	}
	if c.Physics.Substeps <= 0 {
		return fmt.Errorf("physics substeps must be positive, got %d", c.Physics.Substeps)
	}

	for name, value := range map[string]string{
		"background": c.Colors.Background,
		"wall":       c.Colors.Wall,
		"boundary":   c.Colors.Boundary,
		"goal":       c.Colors.Goal,
		"ball":       c.Colors.Ball,
		"solution":   c.Colors.Solution,
	} {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("color '%s': %w", name, err)
		}
	}

	return nil
}

func (c *GameConfig) inGrid(row, col int) bool {
	return row >= 0 && row < c.Maze.Rows && col >= 0 && col < c.Maze.Cols
}
