package cmd

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wxxedu/flusty/bridge"
	"github.com/wxxedu/flusty/config"
	"github.com/wxxedu/flusty/dartgen"
	"github.com/wxxedu/flusty/errors"
	"github.com/wxxedu/flusty/logger"
	"github.com/wxxedu/flusty/resolver"
)

var watch bool

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Resolve the module tree and write the Dart binding file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		if err := generate(cfg); err != nil {
			printGenerateError(err)
			return err
		}
		if !watch {
			return nil
		}
		return watchAndRegenerate(cfg)
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate on source changes")
}

func generate(cfg *config.Config) error {
	res := resolver.New(cfg.Markers, logger.Logger)
	module, err := res.Resolve(cfg.RootModule, cfg.RustEntryPath())
	if err != nil {
		return err
	}

	builder := dartgen.NewFileBuilder().
		SetModuleName(cfg.LibName).
		SetLibName(cfg.LibName)
	builder.AddLibPath("target").AddLibPath("release")
	if err := builder.AddModule(module); err != nil {
		return err
	}
	out, err := builder.Build()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DartOutPath(), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	outFile := filepath.Join(cfg.DartOutPath(), cfg.LibName+".dart")
	if err := os.WriteFile(outFile, []byte(out), 0o644); err != nil {
		return errors.Wrap(err, "write binding file")
	}
	logger.Logger.Infow("wrote bindings", "file", outFile)
	pterm.Success.Printfln("generated %s", outFile)
	return nil
}

// watchAndRegenerate re-runs generation whenever a source file under the
// entry directory is written.
func watchAndRegenerate(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "start watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.RustEntryPath()); err != nil {
		return errors.Wrapf(err, "watch %s", cfg.RustEntryPath())
	}
	pterm.Info.Printfln("watching %s", cfg.RustEntryPath())

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".rs" {
				continue
			}
			logger.Logger.Debugw("source changed", "file", event.Name)
			if err := generate(cfg); err != nil {
				printGenerateError(err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("watcher error", "error", werr)
		}
	}
}

// printGenerateError gives conversion failures their rich terminal rendering;
// other errors go through the plain path.
func printGenerateError(err error) {
	var cerr *bridge.ConversionError
	if errors.As(err, &cerr) {
		pterm.Error.Println(cerr.FormatError(bridge.ErrorContextTerminal))
		return
	}
	pterm.Error.Println(err.Error())
}
