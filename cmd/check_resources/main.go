// check_resources 校验资源目录：加载全部精灵声明，逐个创建实体，
// 并检查按草坪行列放置的实体是否落在声明的行列
//
// 用法:
//
//	go run ./cmd/check_resources --data data
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/pvzsim/pkg/game"
	"github.com/gonewx/pvzsim/pkg/types"
)

var (
	dataDir = flag.String("data", "data", "资源根目录")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	rm := game.NewResourceManager(os.DirFS(*dataDir))
	if err := rm.Load(); err != nil {
		fmt.Printf("❌ 资源加载失败: %v\n", err)
		os.Exit(1)
	}

	problems := 0
	for i := range rm.Config().Sprites {
		data := &rm.Config().Sprites[i]
		kind, err := data.Type()
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			problems++
			continue
		}

		sprites, err := rm.CreateSprites(data.Name, kind, 0)
		if err != nil {
			fmt.Printf("❌ %s %s: %v\n", kind, data.Name, err)
			problems++
			continue
		}

		offset := len(data.Positions)
		for j, p := range data.BoardPlacements {
			want := types.BoardLocation{Row: p.Row, Col: p.Col}
			if got := sprites[offset+j].BoardLocation; got != want {
				fmt.Printf("⚠️  %s %s: 声明在 %+v，实际落在 %+v（单元格过高？）\n", kind, data.Name, want, got)
				problems++
			}
		}
		fmt.Printf("✅ %-12s %-12s 实体 %d 个，行为 %d 个\n", kind, data.Name, len(sprites), len(data.Behaviors))
	}

	if problems > 0 {
		fmt.Printf("\n发现 %d 个问题\n", problems)
		os.Exit(1)
	}
	fmt.Println("\n全部资源校验通过")
}
