//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.mazeball -o build/android/mazeball.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/MazeBall.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/mazeball/pkg/app"
	"github.com/decker502/mazeball/pkg/config"
)

func init() {
	// 移动端没有命令行和 .env，使用默认配置
	gameCfg := config.DefaultGameConfig()

	store, err := gdata.Open(gdata.Config{AppName: "mazeball"})
	if err != nil {
		log.Printf("[Mobile] Warning: failed to open data storage: %v", err)
		store = nil
	}

	gameApp, err := app.NewApp(app.Config{Verbose: true}, gameCfg, store)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
