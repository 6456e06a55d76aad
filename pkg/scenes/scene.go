package scenes

import (
	"github.com/decker502/mazeball/pkg/game"
)

// Scene 是 game.Scene 的别名，本包的场景都由 game.SceneManager 驱动
type Scene = game.Scene
