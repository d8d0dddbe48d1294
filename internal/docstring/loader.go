package docstring

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Loader resolves field docs of named struct types.
type Loader struct {
	mu     sync.Mutex
	pkgs   map[string]map[string]*structDocs // nil entry marks a package that failed to load
	dir    string
	logger *zap.Logger
}

type structDocs struct {
	fields   map[string]string
	embedded []typeRef
}

type typeRef struct{ pkgPath, name string }

type Option func(*Loader)

// WithDir sets the directory packages are resolved from.
func WithDir(dir string) Option {
	return func(l *Loader) { l.dir = dir }
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{
		pkgs:   make(map[string]map[string]*structDocs),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader.
func Default() *Loader {
	defaultOnce.Do(func() { defaultLoader = New() })
	return defaultLoader
}

// FieldDocs returns the doc comments of t's fields keyed by Go field name,
// nearest declaration first through embedded structs. It returns nil when
// the source of t cannot be found.
func (l *Loader) FieldDocs(t reflect.Type) map[string]string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" || t.PkgPath() == "" {
		return nil
	}

	root := l.lookup(typeRef{pkgPath: t.PkgPath(), name: baseName(t.Name())})
	if root == nil {
		return nil
	}

	out := make(map[string]string)
	seen := map[*structDocs]struct{}{root: {}}
	level := []*structDocs{root}
	for len(level) > 0 {
		var next []*structDocs
		for _, sd := range level {
			for name, doc := range sd.fields {
				if _, ok := out[name]; !ok {
					out[name] = doc
				}
			}

			for _, ref := range sd.embedded {
				inner := l.lookup(ref)
				if inner == nil {
					continue
				}

				if _, ok := seen[inner]; ok {
					continue
				}

				seen[inner] = struct{}{}
				next = append(next, inner)
			}
		}

		level = next
	}

	return out
}

func (l *Loader) lookup(ref typeRef) *structDocs {
	l.mu.Lock()
	defer l.mu.Unlock()

	structs, ok := l.pkgs[ref.pkgPath]
	if !ok {
		structs = l.load(ref.pkgPath)
		l.pkgs[ref.pkgPath] = structs
	}

	return structs[ref.name]
}

func (l *Loader) load(pkgPath string) map[string]*structDocs {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.dir,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		l.logger.Debug("failed to load package", zap.String("package", pkgPath), zap.Error(err))
		return nil
	}

	if len(pkgs) != 1 {
		l.logger.Debug("unexpected package count", zap.String("package", pkgPath), zap.Int("count", len(pkgs)))
		return nil
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		l.logger.Debug("package has errors",
			zap.String("package", pkgPath),
			zap.String("first", pkg.Errors[0].Error()),
			zap.Int("count", len(pkg.Errors)))
		return nil
	}

	structs := make(map[string]*structDocs)
	for _, file := range pkg.Syntax {
		collectFile(file, pkg.TypesInfo, structs)
	}

	l.logger.Debug("loaded field docs", zap.String("package", pkgPath), zap.Int("structs", len(structs)))
	return structs
}

func collectFile(file *ast.File, info *types.Info, structs map[string]*structDocs) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			structs[ts.Name.Name] = collectStruct(st, info)
		}
	}
}

func collectStruct(st *ast.StructType, info *types.Info) *structDocs {
	sd := &structDocs{fields: make(map[string]string)}
	for _, field := range st.Fields.List {
		doc := fieldDoc(field)

		if len(field.Names) == 0 {
			ref, ok := embeddedRef(field.Type, info)
			if !ok {
				continue
			}

			sd.embedded = append(sd.embedded, ref)
			if doc != "" {
				sd.fields[ref.name] = doc
			}

			continue
		}

		if doc == "" {
			continue
		}

		for _, name := range field.Names {
			sd.fields[name.Name] = doc
		}
	}

	return sd
}

func fieldDoc(field *ast.Field) string {
	if text := strings.TrimSpace(field.Doc.Text()); text != "" {
		return text
	}

	return strings.TrimSpace(field.Comment.Text())
}

func embeddedRef(expr ast.Expr, info *types.Info) (typeRef, bool) {
	if info == nil {
		return typeRef{}, false
	}

	t := info.TypeOf(expr)
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return typeRef{}, false
	}

	return typeRef{pkgPath: named.Obj().Pkg().Path(), name: named.Obj().Name()}, true
}

// baseName strips type arguments from an instantiated generic type name.
func baseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}
