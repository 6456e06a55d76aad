package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/mazeball/pkg/config"
	"github.com/decker502/mazeball/pkg/ecs"
	"github.com/decker502/mazeball/pkg/entities"
	"github.com/decker502/mazeball/pkg/game"
	"github.com/decker502/mazeball/pkg/layout"
	"github.com/decker502/mazeball/pkg/maze"
	"github.com/decker502/mazeball/pkg/systems"
	"github.com/decker502/mazeball/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD 文字位置（ebitenutil 调试字体每行 16 像素）
const (
	hudLineHeight = 16
	hudPadding    = 4
)

var _ Scene = (*MazeScene)(nil)

// MazeScene 迷宫小球场景
//
// 构造时同步生成迷宫并创建所有刚体，之后每帧按以下顺序更新：
// 键盘输入 → 物理模拟 → 胜利流程。
// 胜利是终止状态：场景不提供重开，只能重新启动程序（或换种子）开始新的一局。
type MazeScene struct {
	cfg *config.GameConfig

	runID string
	seed  int64

	maze     *maze.Maze
	geometry layout.Geometry
	ballCell maze.Cell
	goalCell maze.Cell
	solution []maze.Cell

	entityManager     *ecs.EntityManager
	ballControlSystem *systems.BallControlSystem
	physicsSystem     *systems.PhysicsSystem
	winSystem         *systems.WinPhaseSystem
	renderSystem      *systems.ShapeRenderSystem
	ballID            ecs.EntityID

	keys     utils.KeyReader
	records  *game.RecordManager   // 可为 nil
	settings *game.SettingsManager // 可为 nil

	background color.NRGBA
	bestBefore *game.WinRecord // 开局时该尺寸的最佳记录
	newBest    bool
}

// NewMazeScene 创建迷宫场景
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - keys: 键盘读取器（运行时为 utils.NewEbitenKeys()）
//   - records: 胜利记录管理器，可为 nil
//   - settings: 显示偏好管理器，可为 nil
//
// 返回:
//   - *MazeScene: 场景实例
//   - error: 配置非法或迷宫生成失败
func NewMazeScene(cfg *config.GameConfig, keys utils.KeyReader, records *game.RecordManager, settings *game.SettingsManager) (*MazeScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if keys == nil {
		return nil, fmt.Errorf("key reader cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	s := &MazeScene{
		cfg:           cfg,
		runID:         uuid.NewString(),
		seed:          maze.ResolveSeed(cfg.Maze.Seed),
		entityManager: ecs.NewEntityManager(),
		keys:          keys,
		records:       records,
		settings:      settings,
		background:    config.MustParseColor(cfg.Colors.Background),
	}

	if err := s.generate(); err != nil {
		return nil, err
	}
	if err := s.spawn(); err != nil {
		return nil, err
	}
	s.initSystems()

	if records != nil {
		if best, ok := records.Best(cfg.Maze.Rows, cfg.Maze.Cols); ok {
			s.bestBefore = &best
		}
	}

	log.Printf("[MazeScene] Run %s: %dx%d maze, seed %d, carve start %v, ball %v, goal %v, solution %d cells",
		s.runID, s.maze.Rows, s.maze.Cols, s.seed, s.maze.Origin, s.ballCell, s.goalCell, len(s.solution))
	return s, nil
}

// generate 生成迷宫并确定起点、终点和解答路径
func (s *MazeScene) generate() error {
	mc := s.cfg.Maze

	m, err := maze.Generate(mc.Rows, mc.Cols, mc.CarveStartRow, mc.CarveStartCol, maze.NewRand(s.seed))
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}
	s.maze = m

	s.ballCell = maze.Cell{Row: mc.BallStartRow, Col: mc.BallStartCol}
	s.goalCell = m.OppositeCorner(s.ballCell)
	s.solution = m.Solve(s.ballCell, s.goalCell)

	s.geometry = layout.NewGeometry(
		float64(s.cfg.Window.Width),
		float64(s.cfg.Window.Height),
		mc.Rows, mc.Cols,
		s.cfg.Geometry.Margin,
		s.cfg.Geometry.WallThickness,
	)
	return nil
}

// spawn 把迷宫转换为刚体实体
func (s *MazeScene) spawn() error {
	colors := s.cfg.Colors
	bodies := layout.Build(s.maze, s.geometry, layout.Options{
		BallCell:        s.ballCell,
		GoalCell:        s.goalCell,
		BallRadiusRatio: s.cfg.Geometry.BallRadiusRatio,
		Palette: layout.Palette{
			Wall:     config.MustParseColor(colors.Wall),
			Boundary: config.MustParseColor(colors.Boundary),
			Goal:     config.MustParseColor(colors.Goal),
			Ball:     config.MustParseColor(colors.Ball),
		},
	})

	ballID, err := entities.SpawnBodies(s.entityManager, bodies, s.cfg.Physics.BallSpeed)
	if err != nil {
		return fmt.Errorf("failed to spawn bodies: %w", err)
	}
	s.ballID = ballID

	log.Printf("[MazeScene] Spawned %d bodies (%d inner walls)", len(bodies), s.maze.ClosedEdgeCount())
	return nil
}

// initSystems 创建并连接各个系统
func (s *MazeScene) initSystems() {
	p := s.cfg.Physics

	s.physicsSystem = systems.NewPhysicsSystem(s.entityManager, p.Gravity, p.Substeps)
	s.ballControlSystem = systems.NewBallControlSystem(s.entityManager, s.keys)
	s.winSystem = systems.NewWinPhaseSystem(s.entityManager, s.physicsSystem, p.WinGravity, p.CollapseSeconds)
	s.winSystem.SetWinCallback(s.onWin)

	s.renderSystem = systems.NewShapeRenderSystem(s.entityManager)
	s.renderSystem.SetSolution(
		s.geometry.PathPoints(s.solution),
		config.MustParseColor(s.cfg.Colors.Solution),
		float32(s.cfg.Geometry.WallThickness),
	)
	if s.settings != nil && s.settings.GetSettings().ShowSolution {
		s.renderSystem.ToggleSolution()
	}
}

// onWin 记录成绩
func (s *MazeScene) onWin(result systems.WinResult) {
	log.Printf("[MazeScene] Run %s won in %.2fs", s.runID, result.ElapsedSeconds)
	if s.records == nil {
		return
	}

	newBest, err := s.records.Add(game.WinRecord{
		RunID:   s.runID,
		Rows:    s.maze.Rows,
		Cols:    s.maze.Cols,
		Seed:    s.seed,
		Seconds: result.ElapsedSeconds,
	})
	if err != nil {
		log.Printf("[MazeScene] Warning: failed to save win record: %v", err)
	}
	s.newBest = newBest
}

// Update 更新场景
func (s *MazeScene) Update(deltaTime float64) {
	if s.keys.IsKeyJustPressed(ebiten.KeyH) {
		visible := s.renderSystem.ToggleSolution()
		log.Printf("[MazeScene] Solution overlay: %v", visible)
		if s.settings != nil {
			s.settings.SetShowSolution(visible)
		}
	}

	s.ballControlSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.winSystem.Update(deltaTime)
}

// Draw 绘制场景
func (s *MazeScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)

	x := int(s.geometry.Margin) + hudPadding
	y := int(s.geometry.Margin) + hudPadding
	for i, line := range s.HUDLines() {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*hudLineHeight)
	}
}

// HUDLines 返回 HUD 文字，每个元素一行
func (s *MazeScene) HUDLines() []string {
	lines := []string{
		fmt.Sprintf("Time %.1fs  Seed %d  [H] solution", s.winSystem.Elapsed(), s.seed),
	}
	if s.bestBefore != nil {
		lines = append(lines, fmt.Sprintf("Best %.1fs", s.bestBefore.Seconds))
	}
	if s.winSystem.HasWon() {
		banner := fmt.Sprintf("You win! %.2fs", s.winSystem.Elapsed())
		if s.newBest {
			banner += "  New best!"
		}
		lines = append(lines, banner)
	}
	return lines
}

// RunID 本局的唯一标识
func (s *MazeScene) RunID() string {
	return s.runID
}

// Seed 本局实际使用的随机种子
func (s *MazeScene) Seed() int64 {
	return s.seed
}

// Maze 本局的迷宫快照
func (s *MazeScene) Maze() *maze.Maze {
	return s.maze
}

// HasWon 是否已经到达终点
func (s *MazeScene) HasWon() bool {
	return s.winSystem.HasWon()
}

// IsSimulating 物理模拟是否仍在运行
func (s *MazeScene) IsSimulating() bool {
	return s.physicsSystem.IsRunning()
}
