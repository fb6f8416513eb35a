package game

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 同一文件在此间隔内的重复事件只通知一次
const reloadDebounce = 100 * time.Millisecond

// ResourceWatcher 监视磁盘上的资源目录，资源文件变化时发出通知
// 只在使用 --data 从磁盘加载资源时有意义（嵌入资源不会变化）
type ResourceWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string // 发生变化的文件路径
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewResourceWatcher 监视给定的目录
func NewResourceWatcher(dirs ...string) (*ResourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	rw := &ResourceWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rw.run()
	log.Printf("[ResourceWatcher] Watching %v", dirs)
	return rw, nil
}

// Close 停止监视，可重复调用
func (rw *ResourceWatcher) Close() error {
	var err error
	rw.once.Do(func() {
		close(rw.closeCh)
		err = rw.watcher.Close()
		<-rw.done
	})
	return err
}

// Poll 非阻塞地取出所有待处理的变化，返回是否有资源文件变化
// 在游戏循环中每帧调用
func (rw *ResourceWatcher) Poll() bool {
	changed := false
	for {
		select {
		case name, ok := <-rw.Events:
			if !ok {
				return changed
			}
			log.Printf("[ResourceWatcher] Changed: %s", name)
			changed = true
		case err, ok := <-rw.Errors:
			if !ok {
				return changed
			}
			log.Printf("[ResourceWatcher] Error: %v", err)
		default:
			return changed
		}
	}
}

func (rw *ResourceWatcher) run() {
	defer func() {
		close(rw.Events)
		close(rw.Errors)
		close(rw.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isResourceFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now

			select {
			case rw.Events <- event.Name:
			case <-rw.closeCh:
				return
			}
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case rw.Errors <- err:
			default:
			}
		case <-rw.closeCh:
			return
		}
	}
}

func isResourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".png"
}
