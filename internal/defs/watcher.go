// internal/defs/watcher.go
package defs

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher следит за файлом баланса и публикует перечитанные конфиги.
// Редакторы сохраняют файлы сериями событий, поэтому события дребезжат;
// повторные срабатывания в пределах 100 мс игнорируются.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Balance
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher начинает наблюдение за файлом path. Следим за каталогом,
// а не за самим файлом: редакторы часто пересоздают файл при сохранении,
// и inode-подписка на старый файл молча умирает.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    path,
		Updates: make(chan *Balance, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close останавливает наблюдение. Повторные вызовы безопасны.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			bal, err := LoadBalance(w.path)
			if err != nil {
				// Битый файл не должен ломать идущий забег — остаёмся на текущем балансе.
				log.Printf("balance reload failed: %v", err)
				continue
			}
			w.publish(bal)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("balance watcher error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

// publish кладёт свежий баланс в канал, вытесняя непрочитанный старый.
func (w *Watcher) publish(bal *Balance) {
	for {
		select {
		case w.Updates <- bal:
			return
		default:
			select {
			case <-w.Updates:
			default:
			}
		}
	}
}
