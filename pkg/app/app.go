// Package app 提供模拟应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载资源、持久化开关、
// 创建战斗场景，并把 ebiten 的输入和绘制接到场景上。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/embedded"
	"github.com/gonewx/pvzsim/pkg/game"
	"github.com/gonewx/pvzsim/pkg/systems"
	"github.com/gonewx/pvzsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "pvzsim"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataDir 从磁盘目录加载资源（为空则使用嵌入资源）
	DataDir string
	// Watch 监视 DataDir，资源文件变化时重建场景
	Watch bool
	// BoardLines 覆盖保存的 DrawBoardLines 开关
	BoardLines *bool
	// Seed 天空阳光的随机种子
	Seed uint64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *game.BattleScene
	settings *game.SettingsManager
	render   *systems.RenderSystem
	pointer  *utils.PointerTracker
	watcher  *game.ResourceWatcher
	verbose  bool
	debug    bool // F3 切换：绘制轮廓
}

// NewApp 创建并初始化应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dataFS, err := openData(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	resources := game.NewResourceManager(dataFS)
	if err := resources.Load(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// gdata 不可用时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	if cfg.BoardLines != nil {
		features := settings.Features()
		features.DrawBoardLines = *cfg.BoardLines
		settings.SetFeatures(features)
	}

	state := game.NewGameState(settings)
	engine := game.NewEngine(game.NewSpriteManager(), state)
	scene := game.NewBattleScene(engine, resources, cfg.Seed)
	if err := scene.Populate(0); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	a := &App{
		scene:    scene,
		settings: settings,
		render:   systems.NewRenderSystem(),
		pointer:  utils.NewPointerTracker(),
		verbose:  cfg.Verbose,
	}

	if cfg.Watch {
		if cfg.DataDir == "" {
			log.Printf("[App] --watch ignored: embedded resources never change")
		} else {
			w, err := game.NewResourceWatcher(filepath.Join(cfg.DataDir, game.SpritesDir))
			if err != nil {
				return nil, fmt.Errorf("资源监视失败: %w", err)
			}
			a.watcher = w
		}
	}

	return a, nil
}

func openData(dir string) (fs.FS, error) {
	if dir != "" {
		log.Printf("[App] Loading resources from %s", dir)
		return os.DirFS(dir), nil
	}
	return embedded.Data()
}

// Update 更新模拟逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.watcher != nil && a.watcher.Poll() {
		if err := a.scene.Reload(); err != nil {
			log.Printf("[App] Reload failed, keeping current scene: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		a.toggleBoardLines()
	}

	p := a.pointer.Update()
	engine := a.scene.Engine
	switch {
	case p.JustPressed:
		engine.PointerDown(p.Position)
	case p.JustReleased:
		engine.PointerUp(p.Position)
	case p.Moved:
		engine.PointerMove(p.Position)
	}

	// 模拟出错是致命的：返回错误让 ebiten 结束运行
	deltaMs := 1000.0 / float64(ebiten.TPS())
	if err := a.scene.Update(deltaMs); err != nil {
		return fmt.Errorf("simulation stopped: %w", err)
	}
	return nil
}

// toggleBoardLines 切换网格线并保存
func (a *App) toggleBoardLines() {
	state := a.scene.Engine.State
	state.Features.DrawBoardLines = !state.Features.DrawBoardLines
	a.settings.SetFeatures(state.Features)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save features: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 90, B: 40, A: 255})

	state := a.scene.Engine.State
	a.render.Draw(screen, a.scene.Engine.Sprites.All(), systems.RenderOptions{
		DrawBoardLines: state.Features.DrawBoardLines,
		DrawOutlines:   a.debug,
		ShowSunScore:   true,
		SunScore:       state.Sun.Score,
	})
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}

// Close 释放资源监视器
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
