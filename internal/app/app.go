package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dshills/formstorm/internal/config"
	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/export"
	"github.com/dshills/formstorm/internal/input/keymap"
	"github.com/dshills/formstorm/internal/notify"
	"github.com/dshills/formstorm/internal/palette"
	"github.com/dshills/formstorm/internal/script"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// LogLevel overrides [log] level when set.
	LogLevel string

	// LogOutput receives log lines. When nil, [log] file or os.Stderr is used.
	LogOutput io.Writer

	// ScriptOutput receives Lua print output. Defaults to os.Stdout.
	ScriptOutput io.Writer

	// FileSystem and Environ replace the real ones for config loading.
	FileSystem config.FileSystem
	Environ    func() []string
}

// Application owns the store and the collaborators built around it.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	logger  *Logger
	store   *editor.Store
	palette *palette.Palette
	keymap  *keymap.Keymap
	script  *script.State

	changes *notify.Subscription
	logFile io.Closer
	closed  bool

	opts Options
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.cleanup()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	if err := app.initConfig(); err != nil {
		return err
	}
	if err := app.initLogger(); err != nil {
		return err
	}
	app.initStore()
	app.initPalette()
	if err := app.initKeymap(); err != nil {
		return err
	}
	if err := app.initScript(); err != nil {
		return err
	}
	app.logger.Debug("bootstrap complete")
	return nil
}

func (app *Application) initConfig() error {
	var loaderOpts []config.LoaderOption
	if app.opts.FileSystem != nil {
		loaderOpts = append(loaderOpts, config.WithFileSystem(app.opts.FileSystem))
	}
	if app.opts.Environ != nil {
		loaderOpts = append(loaderOpts, config.WithEnviron(app.opts.Environ))
	}

	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.NewLoader(loaderOpts...).LoadFrom(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg
	return nil
}

func (app *Application) initLogger() error {
	level := app.config.Log.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}

	out := app.opts.LogOutput
	if out == nil && app.config.Log.File != "" {
		f, err := os.OpenFile(app.config.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		app.logFile = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	if out != nil {
		cfg.Output = out
	}
	app.logger = NewLogger(cfg)
	return nil
}

func (app *Application) initStore() {
	storeLog := app.logger.WithComponent("editor")
	opts := append(app.config.EditorOptions(), editor.WithLogger(storeLog))
	app.store = editor.New(opts...)

	app.changes = app.store.Subscribe(func(c notify.Change) {
		storeLog.Debug("change %s %v", c.Action, c.IDs)
	})
}

func (app *Application) initPalette() {
	app.palette = palette.New(palette.WithRecentSize(app.config.Palette.RecentSize))
}

func (app *Application) initKeymap() error {
	km := keymap.NewDefault(app.store)
	if err := km.ApplyOverrides(app.config.Keys); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	app.keymap = km
	return nil
}

func (app *Application) initScript() error {
	timeout, err := app.config.ScriptTimeout()
	if err != nil {
		return &InitError{Component: "script", Err: err}
	}
	out := app.opts.ScriptOutput
	if out == nil {
		out = os.Stdout
	}

	st := script.NewState(script.WithExecutionTimeout(timeout), script.WithOutput(out))
	if err := st.Register(script.NewEditorModule(app.store, script.WithPalette(app.palette))); err != nil {
		st.Close()
		return &InitError{Component: "script", Err: err}
	}
	app.script = st
	return nil
}

// cleanup releases whatever bootstrap managed to create.
func (app *Application) cleanup() {
	if app.script != nil {
		app.script.Close()
	}
	if app.changes != nil {
		app.changes.Unsubscribe()
	}
	if app.store != nil {
		app.store.Close()
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Store returns the editor store.
func (app *Application) Store() *editor.Store {
	return app.store
}

// Palette returns the component palette.
func (app *Application) Palette() *palette.Palette {
	return app.palette
}

// Keymap returns the shortcut keymap.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// RunScript executes Lua code against the store. name labels the chunk.
func (app *Application) RunScript(ctx context.Context, name, code string) error {
	app.mu.Lock()
	closed := app.closed
	app.mu.Unlock()
	if closed {
		return ErrClosed
	}

	log := app.logger.WithComponent("script").WithField("script", name)
	log.Debug("running")
	if err := app.script.Run(ctx, name, code); err != nil {
		log.Error("failed: %v", err)
		return NewOperationError("run", name, err)
	}
	log.Info("done, %d elements", app.store.Len())
	return nil
}

// RunFile reads and executes a Lua script file.
func (app *Application) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return NewOperationError("run", path, err)
	}
	return app.RunScript(ctx, path, string(code))
}

// Export renders the current document in format f.
func (app *Application) Export(f export.Format, opts export.Options) (string, error) {
	out, err := export.Generate(f, export.FromState(app.store.State()), opts)
	if err != nil {
		return "", NewOperationError("export", string(f), err)
	}
	app.logger.WithComponent("export").Debug("rendered %s, %d bytes", f, len(out))
	return out, nil
}

// Close shuts down the script runner and the store. Close is idempotent.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return nil
	}
	app.closed = true
	app.cleanup()
	return nil
}

// String describes the application for diagnostics.
func (app *Application) String() string {
	return fmt.Sprintf("formstorm(%s, %d elements)", app.store.ProjectName(), app.store.Len())
}
