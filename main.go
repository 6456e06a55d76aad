package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/mazeball/pkg/app"
	"github.com/decker502/mazeball/pkg/config"
	"github.com/decker502/mazeball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// 存储目录名
const appName = "mazeball"

var (
	// 命令行参数
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml，也可用 MAZE_CONFIG 指定）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "迷宫随机种子，0 表示基于时间")
	rows       = flag.Int("rows", 0, "迷宫行数（覆盖配置）")
	cols       = flag.Int("cols", 0, "迷宫列数（覆盖配置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameCfg, err := loadConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Main] Warning: failed to open data storage: %v (records will not be saved)", err)
		store = nil
	}

	gameApp, err := app.NewApp(app.Config{Verbose: *verbose}, gameCfg, store)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gameCfg.Window.Width, gameCfg.Window.Height)
	ebiten.SetWindowTitle(gameCfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadConfig 按优先级合并配置：
// 配置文件 → .env 与环境变量 → 命令行参数
func loadConfig() (*config.GameConfig, error) {
	config.LoadDotEnv(".env")

	path := *configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	gameCfg, err := readBaseConfig(path)
	if err != nil {
		return nil, err
	}

	if err := gameCfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// 只覆盖显式传入的参数
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			gameCfg.Maze.Seed = *seed
		case "rows":
			gameCfg.Maze.Rows = *rows
		case "cols":
			gameCfg.Maze.Cols = *cols
		}
	})
	gameCfg.ClampToGrid()

	if err := gameCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return gameCfg, nil
}

// readBaseConfig 读取未经覆盖的基础配置
//
// 参数:
//   - path: 外部配置文件路径，为空时使用内置 data/game.yaml
//
// 返回:
//   - *config.GameConfig: 基础配置；内置文件缺失时为默认配置
//   - error: 文件读取或解析失败时返回错误
func readBaseConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	if !embedded.Exists(embedded.DefaultGameConfigPath) {
		log.Printf("[Main] Warning: embedded %s not found, using built-in defaults", embedded.DefaultGameConfigPath)
		return config.DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(embedded.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}
