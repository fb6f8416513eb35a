// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DataRoot 嵌入资源的根目录
const DataRoot = "data"

// ErrNotInitialized 在 Init 之前访问嵌入资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀，并要求以 "data/" 开头
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if path != DataRoot && !strings.HasPrefix(path, DataRoot+"/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s/')", path, DataRoot)
	}
	return path, nil
}

// Sub 返回指定目录的子文件系统，路径必须以 "data" 开头
func Sub(dir string) (fs.FS, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	dir, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(dataFS, dir)
}

// Data 返回以 data 目录为根的文件系统，供资源管理器使用
func Data() (fs.FS, error) {
	return Sub(DataRoot)
}
