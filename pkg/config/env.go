package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvConfigPath = "MAZE_CONFIG"
	EnvRows       = "MAZE_ROWS"
	EnvCols       = "MAZE_COLS"
	EnvSeed       = "MAZE_SEED"
)

// LookupFunc 环境变量查询函数，签名与 os.LookupEnv 一致
type LookupFunc func(key string) (string, bool)

// LoadDotEnv 加载 .env 文件到进程环境变量
// 文件不存在不是错误，仅记录日志
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[Config] .env file not found or could not be loaded: %v", err)
		return
	}
	log.Printf("[Config] .env loaded")
}

// ApplyEnvOverrides 用进程环境变量覆盖配置
func (c *GameConfig) ApplyEnvOverrides() error {
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv 用 lookup 提供的变量覆盖网格尺寸与种子
//
// 覆盖网格尺寸后会把起点收回到网格内，然后重新验证。
//
// 参数:
//   - lookup: 环境变量查询函数
//
// 返回:
//   - error: 变量无法解析或覆盖后配置无效时返回错误
func (c *GameConfig) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvRows); ok {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvRows, err)
		}
		c.Maze.Rows = rows
	}

	if v, ok := lookup(EnvCols); ok {
		cols, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvCols, err)
		}
		c.Maze.Cols = cols
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvSeed, err)
		}
		c.Maze.Seed = seed
	}

	c.ClampToGrid()
	return c.Validate()
}

// ClampToGrid 把雕刻起点和小球出生格收回到当前网格内
// 网格尺寸非正时不做处理，交给 Validate 报错
func (c *GameConfig) ClampToGrid() {
	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return
	}
	c.Maze.CarveStartRow = clampInt(c.Maze.CarveStartRow, 0, c.Maze.Rows-1)
	c.Maze.CarveStartCol = clampInt(c.Maze.CarveStartCol, 0, c.Maze.Cols-1)
	c.Maze.BallStartRow = clampInt(c.Maze.BallStartRow, 0, c.Maze.Rows-1)
	c.Maze.BallStartCol = clampInt(c.Maze.BallStartCol, 0, c.Maze.Cols-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
