// Package resolver walks a nested Rust module hierarchy on disk, filters
// declarations by marker attribute, and assembles an ordered module tree.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wxxedu/flusty/bridge"
	"github.com/wxxedu/flusty/errors"
	"github.com/wxxedu/flusty/syntax"
)

// Resolver-level sentinel errors.
var (
	// ErrMissingName indicates a resolve call without a module name.
	ErrMissingName = errors.New("missing module name")
	// ErrMissingPath indicates a resolve call without a module path.
	ErrMissingPath = errors.New("missing module path")
)

// InvalidModuleError indicates a module that could not be loaded: neither
// candidate file exists, or the file that does exist fails to parse. The two
// conditions share one type; a parse failure carries its cause.
type InvalidModuleError struct {
	Name  string
	Path  string
	Cause error // nil when no candidate file exists
}

func (e *InvalidModuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid module: %s in %s: %v", e.Name, e.Path, e.Cause)
	}
	return fmt.Sprintf("invalid module: %s in %s", e.Name, e.Path)
}

func (e *InvalidModuleError) Unwrap() error { return e.Cause }

// Module is one node of the resolved tree. It exclusively owns its children
// and declarations; ordering matches source declaration order so generated
// output is stable across runs.
type Module struct {
	Name     string
	Parent   string // parent module name; empty for the root
	Children []*Module
	Structs  []*bridge.Struct
	Enums    []*bridge.Enum
	Funcs    []*bridge.Func
}

// IsRoot reports whether the module is the root of its tree.
func (m *Module) IsRoot() bool { return m.Parent == "" }

// Resolver discovers annotated declarations in a module hierarchy. The
// marker set is configured once per resolution pass.
type Resolver struct {
	markers []string
	log     *zap.SugaredLogger
}

// New creates a Resolver that includes declarations carrying at least one
// attribute whose identifier exactly matches one of markers. A nil logger
// disables logging.
func New(markers []string, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Resolver{markers: markers, log: log}
}

// Resolve loads the module `name` from directory `path`, scans its items in
// declaration order and recurses into exported submodules. It never returns
// a partial module: any extraction failure aborts the whole call.
func (r *Resolver) Resolve(name, path string) (*Module, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if path == "" {
		return nil, ErrMissingPath
	}
	return r.resolve(name, path, "")
}

func (r *Resolver) resolve(name, path, parent string) (*Module, error) {
	file, err := r.readModule(name, path)
	if err != nil {
		return nil, err
	}

	module := &Module{Name: name, Parent: parent}
	for _, item := range file.Items {
		switch item := item.(type) {
		case *syntax.ModItem:
			if !item.Public {
				continue
			}
			child, err := r.resolve(item.Name, path, name)
			if err != nil {
				return nil, err
			}
			module.Children = append(module.Children, child)

		case *syntax.FnItem:
			if !item.Public || !r.matches(item.Attrs) {
				continue
			}
			fn, cerr := bridge.ExtractFunc(item)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "module %q: cannot export %s", name, item.Describe())
			}
			r.log.Debugw("discovered function", "module", name, "fn", fn.Name)
			module.Funcs = append(module.Funcs, fn)

		case *syntax.StructItem:
			if !item.Public || !r.matches(item.Attrs) {
				continue
			}
			st, cerr := bridge.ExtractStruct(item)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "module %q: cannot export %s", name, item.Describe())
			}
			r.log.Debugw("discovered struct", "module", name, "struct", st.Name)
			module.Structs = append(module.Structs, st)

		case *syntax.EnumItem:
			if !item.Public || !r.matches(item.Attrs) {
				continue
			}
			en, cerr := bridge.ExtractEnum(item)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "module %q: cannot export %s", name, item.Describe())
			}
			r.log.Debugw("discovered enum", "module", name, "enum", en.Name)
			module.Enums = append(module.Enums, en)
		}
	}
	return module, nil
}

// readModule reads and parses `path/name.rs`, falling back to
// `path/name.mod.rs`. Both missing, or a present file that fails to parse,
// report the same InvalidModuleError.
func (r *Resolver) readModule(name, path string) (*syntax.File, error) {
	candidates := []string{
		filepath.Join(path, name+".rs"),
		filepath.Join(path, name+".mod.rs"),
	}
	for _, candidate := range candidates {
		src, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		file, perr := syntax.ParseFile(candidate, string(src))
		if perr != nil {
			return nil, &InvalidModuleError{Name: name, Path: path, Cause: perr}
		}
		r.log.Debugw("loaded module file", "module", name, "file", candidate)
		return file, nil
	}
	return nil, &InvalidModuleError{Name: name, Path: path}
}

// matches reports whether any attribute's identifier exactly matches one of
// the configured markers. Name=value attributes never match; the first
// matching attribute wins.
func (r *Resolver) matches(attrs []syntax.Attr) bool {
	for _, attr := range attrs {
		if attr.Kind == syntax.AttrNameValue {
			continue
		}
		for _, marker := range r.markers {
			if attr.IsIdent(marker) {
				return true
			}
		}
	}
	return false
}
