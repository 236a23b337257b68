package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/engine/clipboard"
	"github.com/dshills/linedit/internal/persist"
	"github.com/dshills/linedit/internal/script"
)

// Application owns one editing session and the front end that drives it.
type Application struct {
	cfg *config.Config

	logger *Logger // root; level changes reach every derived logger
	log    *Logger

	session *engine.Session
	runner  *script.Runner

	// Front end
	in     *bufio.Reader
	out    io.Writer
	tty    bool
	prompt bool

	logFile *os.File
	opts    Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides log.level when not empty.
	LogLevel string

	// File is loaded into the session on startup.
	File string

	// In and Out are the front end streams. Default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer

	// LogOutput overrides log.file when not nil.
	LogOutput io.Writer

	// Store overrides the file store used for load and save.
	Store persist.Store
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapError(err, "loading config")
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	app := &Application{
		cfg:  cfg,
		in:   bufio.NewReader(opts.In),
		out:  opts.Out,
		tty:  isTerminal(opts.In),
		opts: opts,
	}
	app.prompt = cfg.Editor.Prompt && app.tty

	if err := app.initLogger(); err != nil {
		return nil, err
	}
	app.initSession()

	if opts.File != "" {
		if err := app.session.LoadFromFile(opts.File); err != nil {
			if !errors.Is(err, persist.ErrNotFound) {
				app.Close()
				return nil, NewOperationError("load", opts.File, err)
			}
			app.log.Info("%s does not exist, starting empty", opts.File)
		}
	}

	return app, nil
}

// initLogger creates the root logger from log.level and log.file.
func (app *Application) initLogger() error {
	output := app.opts.LogOutput
	if output == nil && app.cfg.Log.File != "" {
		f, err := OpenLogFile(app.cfg.Log.File)
		if err != nil {
			return err
		}
		app.logFile = f
		output = f
	}

	lc := DefaultLoggerConfig()
	lc.Level = ParseLogLevel(app.cfg.Log.Level)
	if output != nil {
		lc.Output = output
	}
	app.logger = NewLogger(lc)
	return nil
}

// initSession builds the session, its clipboard and the script runner.
func (app *Application) initSession() {
	var clipOpts []clipboard.Option
	if app.cfg.Clipboard.System {
		if clipboard.SystemAvailable() {
			clipLog := app.logger.WithComponent("clipboard")
			clipOpts = append(clipOpts,
				clipboard.WithSystemMirror(),
				clipboard.WithErrorHandler(func(err error) {
					clipLog.Warn("system clipboard: %v", err)
				}),
			)
		} else {
			app.logger.Warn("system clipboard unavailable, using the session clipboard only")
		}
	}

	opts := []engine.Option{
		engine.WithMaxUndoEntries(app.cfg.History.MaxEntries),
		engine.WithClipboard(clipboard.New(clipOpts...)),
	}
	if app.opts.Store != nil {
		opts = append(opts, engine.WithStore(app.opts.Store))
	}
	app.session = engine.New(opts...)

	app.log = app.logger.WithComponent("menu").WithField("session", app.session.ID())
	app.runner = script.NewRunner(app.session,
		script.WithTimeout(app.cfg.Script.TimeoutDuration()),
		script.WithOutput(app.out),
	)
}

// Session returns the editing session.
func (app *Application) Session() *engine.Session {
	return app.session
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Config returns the resolved configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// RunScript runs the Lua file at path as one undoable edit. The buffer is
// then saved to output, or printed when output is empty.
func (app *Application) RunScript(ctx context.Context, path, output string) error {
	app.log.Debug("running script %s", path)
	if err := app.runner.RunFile(ctx, path); err != nil {
		return NewOperationError("script", path, err)
	}

	if output == "" {
		app.printLines()
		return nil
	}
	if err := app.session.SaveToFile(output); err != nil {
		return NewOperationError("save", output, err)
	}
	app.log.Info("saved %d lines to %s", app.session.LineCount(), output)
	return nil
}

// watchConfig follows the config file and applies log level changes.
func (app *Application) watchConfig(ctx context.Context) {
	if !app.cfg.Watch || app.cfg.Source == "" {
		return
	}

	log := app.logger.WithComponent("config")
	err := config.Watch(ctx, app.cfg.Source, func(cfg *config.Config, err error) {
		if err != nil {
			log.Warn("reload: %v", err)
			return
		}
		app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
		log.Info("log level set to %s", cfg.Log.Level)
	})
	if err != nil {
		log.Warn("%v", err)
	}
}

// Close releases the log file, if any.
func (app *Application) Close() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
