// Package toolkit is the boundary to the installed OakVar toolkit. It
// invokes the toolkit's command-line entry point and converts its output
// and failures into values the dispatcher can return.
package toolkit

import "context"

//go:generate mockgen -source=toolkit.go -destination=mocks/toolkit_mock.go -package=mocks

// Toolkit exposes the fixed set of toolkit actions the server forwards to.
// Every method may block for the duration of the underlying action and may
// perform file-system, network, or database I/O owned by the toolkit.
type Toolkit interface {
	Version(ctx context.Context) (string, error)
	SystemCheck(ctx context.Context) (bool, string, error)
	SystemSetup(ctx context.Context, opts SetupOptions) error
	// ModulesDir returns the current modules directory; with a non-empty
	// directory argument it sets it first.
	ModulesDir(ctx context.Context, directory string) (string, error)

	ModuleList(ctx context.Context, opts ListOptions) (any, error)
	ModuleInfo(ctx context.Context, name string, local bool) (any, error)
	ModuleInstall(ctx context.Context, names []string, opts InstallOptions) error
	ModuleUninstall(ctx context.Context, names []string) error
	ModuleUpdate(ctx context.Context, patterns []string) error

	RunPipeline(ctx context.Context, opts RunOptions) (any, error)
	Report(ctx context.Context, opts ReportOptions) (any, error)

	SQLiteInfo(ctx context.Context, dbpath string) (any, error)
	FilterSQLite(ctx context.Context, opts FilterOptions) error

	NewModule(ctx context.Context, name, moduleType string) (string, error)
	NewExampleInput(ctx context.Context, directory string) (string, error)
	PackModule(ctx context.Context, name, outdir string, codeOnly bool) (any, error)

	StoreFetch(ctx context.Context, refreshDB, clean bool) error
	StoreRegister(ctx context.Context, name string, codeURLs, dataURLs []string) error
}

// SetupOptions controls system setup.
type SetupOptions struct {
	Clean     bool
	RefreshDB bool
}

// ListOptions filters the module listing.
type ListOptions struct {
	Patterns    []string
	Types       []string
	SearchStore bool
	Tags        []string
}

// InstallOptions controls module installation.
type InstallOptions struct {
	Overwrite        bool
	SkipDependencies bool
}

// RunOptions parameterizes an annotation pipeline run.
type RunOptions struct {
	Inputs      []string
	Annotators  []string
	ReportTypes []string
	OutputDir   string
	Genome      string
	RunName     string
	Cores       int
}

// ReportOptions parameterizes report generation from a result database.
type ReportOptions struct {
	DBPath      string
	ReportTypes []string
	OutputDir   string
	FilterPath  string
	FilterSQL   string
	Columns     []string
}

// FilterOptions parameterizes filtered-copy creation of result databases.
type FilterOptions struct {
	DBPaths        []string
	FilterPath     string
	FilterSQL      string
	IncludeSamples []string
	ExcludeSamples []string
	Suffix         string
	OutputDir      string
}
