package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/pvzsim/pkg/app"
	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	dataDir    = flag.String("data", "", "从磁盘目录加载资源（默认使用嵌入资源）")
	watch      = flag.Bool("watch", false, "监视 --data 目录，资源变化时重建场景")
	boardLines = flag.Bool("board-lines", false, "绘制草坪网格线")
	seed       = flag.Uint64("seed", 1, "天空阳光的随机种子")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: *verbose,
		DataDir: *dataDir,
		Watch:   *watch,
		Seed:    *seed,
	}
	// 只有显式传入时才覆盖保存的开关
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "board-lines" {
			cfg.BoardLines = boardLines
		}
	})

	a, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer a.Close()

	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle("植物大战僵尸 - 战斗模拟")

	if err := ebiten.RunGame(a); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
