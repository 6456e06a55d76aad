package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// MaxRecentRecords 每种网格尺寸保留的最近胜利记录数
const MaxRecentRecords = 10

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "wins"
)

// WinRecord 一局胜利的记录
// 只保存成绩和种子，不保存迷宫本身（同一种子可重新生成同一迷宫）
type WinRecord struct {
	RunID     string    `yaml:"runId"`
	Rows      int       `yaml:"rows"`
	Cols      int       `yaml:"cols"`
	Seed      int64     `yaml:"seed"`
	Seconds   float64   `yaml:"seconds"`
	Timestamp time.Time `yaml:"timestamp"`
}

// GridRecord 某一网格尺寸下的累计记录
type GridRecord struct {
	Wins   int         `yaml:"wins"`
	Best   *WinRecord  `yaml:"best,omitempty"`
	Recent []WinRecord `yaml:"recent,omitempty"` // 最新的在前
}

// RecordBook 所有网格尺寸的记录，键为 GridKey
type RecordBook struct {
	Grids map[string]*GridRecord `yaml:"grids"`
}

// GridKey 返回网格尺寸的记录键，例如 "10x10"
func GridKey(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

// RecordManager 胜利记录管理器
// 与 SettingsManager 共用 gdata，gdata 不可用时只在内存中记录
type RecordManager struct {
	prop yamlProp
	book *RecordBook
}

// NewRecordManager 创建记录管理器并加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		prop: yamlProp{manager: gdataManager, object: recordsObject, property: recordsProperty},
		book: newRecordBook(),
	}

	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting empty)", err)
	}
	return rm
}

func newRecordBook() *RecordBook {
	return &RecordBook{Grids: make(map[string]*GridRecord)}
}

// Load 从 gdata 加载记录
func (rm *RecordManager) Load() error {
	rm.book = newRecordBook()

	var loaded RecordBook
	found, err := rm.prop.load(&loaded)
	if err != nil || !found {
		return err
	}
	if loaded.Grids == nil {
		loaded.Grids = make(map[string]*GridRecord)
	}

	rm.book = &loaded
	log.Printf("[RecordManager] Loaded records for %d grid sizes", len(loaded.Grids))
	return nil
}

// Save 保存记录到 gdata
// 降级模式下直接返回 nil
func (rm *RecordManager) Save() error {
	return rm.prop.save(rm.book)
}

// Add 添加一条胜利记录并保存
//
// RunID 为空时自动生成，Timestamp 为零值时使用当前时间。
//
// 返回：
//   - bool: 是否刷新了该网格尺寸的最佳用时
//   - error: 记录非法或保存失败（保存失败时内存中的记录仍然有效）
func (rm *RecordManager) Add(rec WinRecord) (bool, error) {
	if rec.Rows <= 0 || rec.Cols <= 0 {
		return false, fmt.Errorf("invalid grid size %dx%d", rec.Rows, rec.Cols)
	}
	if rec.Seconds < 0 {
		return false, fmt.Errorf("invalid duration %.2f", rec.Seconds)
	}
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	key := GridKey(rec.Rows, rec.Cols)
	grid, ok := rm.book.Grids[key]
	if !ok {
		grid = &GridRecord{}
		rm.book.Grids[key] = grid
	}

	grid.Wins++
	newBest := grid.Best == nil || rec.Seconds < grid.Best.Seconds
	if newBest {
		best := rec
		grid.Best = &best
	}

	grid.Recent = append([]WinRecord{rec}, grid.Recent...)
	if len(grid.Recent) > MaxRecentRecords {
		grid.Recent = grid.Recent[:MaxRecentRecords]
	}

	log.Printf("[RecordManager] %s win #%d in %.2fs (run %s, best=%v)", key, grid.Wins, rec.Seconds, rec.RunID, newBest)

	if err := rm.Save(); err != nil {
		return newBest, err
	}
	return newBest, nil
}

// Grid 返回某一网格尺寸的记录副本
func (rm *RecordManager) Grid(rows, cols int) (GridRecord, bool) {
	grid, ok := rm.book.Grids[GridKey(rows, cols)]
	if !ok {
		return GridRecord{}, false
	}

	out := GridRecord{
		Wins:   grid.Wins,
		Recent: append([]WinRecord(nil), grid.Recent...),
	}
	if grid.Best != nil {
		best := *grid.Best
		out.Best = &best
	}
	return out, true
}

// Best 返回某一网格尺寸的最佳记录
func (rm *RecordManager) Best(rows, cols int) (WinRecord, bool) {
	grid, ok := rm.book.Grids[GridKey(rows, cols)]
	if !ok || grid.Best == nil {
		return WinRecord{}, false
	}
	return *grid.Best, true
}
