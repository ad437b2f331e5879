package gizmos

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file every time it changes on disk.
// The parent directory is watched so editors that replace the file on save
// are picked up too.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Config
	errs    chan error
	done    chan struct{}
}

func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	w := &ConfigWatcher{
		path:    abs,
		watcher: watcher,
		updates: make(chan Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers the latest successfully loaded config. Older undelivered
// configs are dropped in favour of newer ones.
func (w *ConfigWatcher) Updates() <-chan Config { return w.updates }

// Errors delivers load and watch failures; the watcher keeps running.
func (w *ConfigWatcher) Errors() <-chan error { return w.errs }

func (w *ConfigWatcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *ConfigWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Truncated mid-save; the next write carries the content.
			if info, err := os.Stat(w.path); err == nil && info.Size() == 0 {
				continue
			}
			cfg, err := LoadConfig(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

func (w *ConfigWatcher) sendConfig(cfg Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

func (w *ConfigWatcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
		// A failure is already waiting; keep the first one.
	}
}

// LiveConfig is the resource holding the config currently in effect.
// Generation increases by one on every applied reload.
type LiveConfig struct {
	Config     Config
	Generation int

	watcher *ConfigWatcher
}

func (l *LiveConfig) Close() error {
	if l.watcher == nil {
		return nil
	}
	return l.watcher.Close()
}

// ConfigReloadModule publishes Initial as a LiveConfig and, when Path is set,
// swaps in the file's new contents at the start of the frame after it changes.
type ConfigReloadModule struct {
	Path    string
	Initial Config
}

func (mod ConfigReloadModule) Install(app *App, cmd *Commands) {
	live := &LiveConfig{Config: mod.Initial}
	cmd.AddResources(live)

	if mod.Path == "" {
		return
	}
	w, err := WatchConfig(mod.Path)
	if err != nil {
		cmd.Logger().Warnf("Config reload disabled: %v", err)
		return
	}
	live.watcher = w
	app.UseSystem(
		System(configReloadSystem).
			InStage(PreUpdate),
	)
}

func configReloadSystem(live *LiveConfig, cmd *Commands) {
	for {
		select {
		case cfg := <-live.watcher.Updates():
			live.Config = cfg
			live.Generation++
			cmd.Logger().SetDebug(cfg.Debug)
			cmd.Logger().Infof("Reloaded config (generation %d)", live.Generation)
		case err := <-live.watcher.Errors():
			cmd.Logger().Warnf("Config reload failed, keeping generation %d: %v", live.Generation, err)
		default:
			return
		}
	}
}
