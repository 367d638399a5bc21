package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/log"
)

const (
	// maxStderrBytes caps the amount of stderr captured from toolkit execution.
	maxStderrBytes = 64 * 1024

	// terminationGracePeriod is the time we wait after SIGTERM before SIGKILL.
	terminationGracePeriod = 5 * time.Second
)

// CLI invokes the toolkit through its command-line entry point.
type CLI struct {
	executable string
	timeout    time.Duration
	logger     *slog.Logger
}

var _ Toolkit = (*CLI)(nil)

// NewCLI resolves the toolkit executable and returns a CLI-backed Toolkit.
// A toolkit that cannot be located is a startup-fatal condition: the caller
// must not register any operations.
func NewCLI(executable string, timeout time.Duration) (*CLI, error) {
	path, err := exec.LookPath(executable)
	if err != nil {
		return nil, envelope.Errorf(envelope.NotInstalled,
			"toolkit executable %q not found on PATH; install OakVar (e.g. `pip install oakvar`) in the server's environment", executable)
	}
	return &CLI{
		executable: path,
		timeout:    timeout,
		logger:     log.WithComponent("toolkit"),
	}, nil
}

// Path returns the resolved toolkit executable path.
func (c *CLI) Path() string {
	return c.executable
}

type execResult struct {
	stdout   []byte
	stderr   string
	exitCode int
}

// execute spawns the toolkit subprocess and waits for it to finish.
// Returns an error only for spawn/timeout failures; a non-zero exit is
// reported through the result so callers can interpret it per action.
func (c *CLI) execute(ctx context.Context, args ...string) (*execResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.executable, args...)
	// Ask nicely first; kill after the grace period.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = terminationGracePeriod

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("invoking toolkit", "args", args)
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	res := &execResult{
		stdout: stdout.Bytes(),
		stderr: truncateStderr(stderr.String()),
	}

	if err != nil {
		if ctx.Err() != nil {
			c.logger.Warn("toolkit invocation cancelled", "args", args, "elapsed", elapsed)
			return nil, envelope.Errorf(envelope.ExecutionError,
				"toolkit invocation cancelled after %v: %v", elapsed.Round(time.Millisecond), ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			c.logger.Warn("toolkit exited with non-zero status",
				"args", args, "exit_code", res.exitCode, "elapsed", elapsed)
			return res, nil
		}
		return nil, fmt.Errorf("start toolkit process: %w", err)
	}

	c.logger.Debug("toolkit invocation finished", "args", args, "elapsed", elapsed)
	return res, nil
}

// run executes a toolkit action and classifies any failure. On success the
// raw stdout is returned.
func (c *CLI) run(ctx context.Context, args ...string) ([]byte, error) {
	res, err := c.execute(ctx, args...)
	if err != nil {
		return nil, err
	}
	if res.exitCode != 0 {
		return nil, classifyFailure(res)
	}
	return res.stdout, nil
}

// classifyFailure maps a failed toolkit invocation onto the error taxonomy.
// The toolkit does not report machine-readable error kinds, so the stderr
// text is matched against known markers.
func classifyFailure(res *execResult) error {
	msg := strings.TrimSpace(res.stderr)
	if msg == "" {
		msg = strings.TrimSpace(string(res.stdout))
	}
	if msg == "" {
		msg = fmt.Sprintf("toolkit exited with status %d", res.exitCode)
	}

	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not set up"),
		strings.Contains(lower, "modules_dir"),
		strings.Contains(lower, "modules directory"),
		strings.Contains(lower, "run `ov system setup`"),
		strings.Contains(lower, "system has not been set up"):
		return envelope.Errorf(envelope.NotConfigured, "%s", msg)
	case strings.Contains(lower, "usage:"),
		strings.Contains(lower, "unrecognized arguments"),
		strings.Contains(lower, "invalid choice"),
		strings.Contains(lower, "invalid argument"):
		return envelope.Errorf(envelope.InvalidInput, "%s", msg)
	default:
		return envelope.Errorf(envelope.ExecutionError, "%s", msg)
	}
}

// decodeOutput converts toolkit stdout into a response value. JSON output
// is decoded; anything else is surfaced as a trimmed string, since toolkit
// result objects have no representation beyond their printed form.
func decodeOutput(out []byte) any {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil
	}
	if gjson.ValidBytes(trimmed) && (trimmed[0] == '{' || trimmed[0] == '[') {
		var v any
		if err := json.Unmarshal(trimmed, &v); err == nil {
			return v
		}
	}
	return string(trimmed)
}

func truncateStderr(s string) string {
	if len(s) > maxStderrBytes {
		return s[:maxStderrBytes]
	}
	return s
}

// Version reports the installed toolkit version.
func (c *CLI) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "version")
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(string(out))
	if gjson.Valid(trimmed) {
		if v := gjson.Get(trimmed, "version"); v.Exists() {
			return v.String(), nil
		}
	}
	// Plain-text form, e.g. "OakVar 2.12.0": take the last field.
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", envelope.Errorf(envelope.ExecutionError, "toolkit reported an empty version")
	}
	return fields[len(fields)-1], nil
}

// SystemCheck runs the toolkit checkup. A non-zero exit with diagnostic
// output is a failed check, not an invocation error.
func (c *CLI) SystemCheck(ctx context.Context) (bool, string, error) {
	res, err := c.execute(ctx, "system", "check")
	if err != nil {
		return false, "", err
	}

	output := strings.TrimSpace(string(res.stdout))
	if output == "" {
		output = strings.TrimSpace(res.stderr)
	}
	return res.exitCode == 0, output, nil
}

// SystemSetup sets up or reconfigures the toolkit.
func (c *CLI) SystemSetup(ctx context.Context, opts SetupOptions) error {
	args := []string{"system", "setup"}
	if opts.Clean {
		args = append(args, "--clean")
	}
	if opts.RefreshDB {
		args = append(args, "--refresh-db")
	}
	_, err := c.run(ctx, args...)
	return err
}

// ModulesDir gets or sets the toolkit modules directory.
func (c *CLI) ModulesDir(ctx context.Context, directory string) (string, error) {
	args := []string{"config", "md"}
	if directory != "" {
		args = append(args, directory)
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ModuleList lists installed and/or store modules.
func (c *CLI) ModuleList(ctx context.Context, opts ListOptions) (any, error) {
	args := []string{"module", "ls", "--to", "json"}
	if opts.SearchStore {
		args = append(args, "-a")
	}
	for _, typ := range opts.Types {
		args = append(args, "-t", typ)
	}
	for _, tag := range opts.Tags {
		args = append(args, "--tag", tag)
	}
	args = append(args, opts.Patterns...)

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// ModuleInfo reports details for one module.
func (c *CLI) ModuleInfo(ctx context.Context, name string, local bool) (any, error) {
	args := []string{"module", "info", name, "--to", "json"}
	if local {
		args = append(args, "--local")
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// ModuleInstall installs modules from the store. Confirmation is forced
// with -y since there is no interactive console behind the server.
func (c *CLI) ModuleInstall(ctx context.Context, names []string, opts InstallOptions) error {
	args := []string{"module", "install", "-y"}
	if opts.Overwrite {
		args = append(args, "--overwrite")
	}
	if opts.SkipDependencies {
		args = append(args, "--skip-dependencies")
	}
	args = append(args, names...)
	_, err := c.run(ctx, args...)
	return err
}

// ModuleUninstall removes installed modules.
func (c *CLI) ModuleUninstall(ctx context.Context, names []string) error {
	args := append([]string{"module", "uninstall", "-y"}, names...)
	_, err := c.run(ctx, args...)
	return err
}

// ModuleUpdate updates installed modules matching the given patterns.
func (c *CLI) ModuleUpdate(ctx context.Context, patterns []string) error {
	args := append([]string{"module", "update", "-y"}, patterns...)
	_, err := c.run(ctx, args...)
	return err
}

// RunPipeline runs the annotation pipeline on the given inputs.
func (c *CLI) RunPipeline(ctx context.Context, opts RunOptions) (any, error) {
	args := []string{"run"}
	args = append(args, opts.Inputs...)
	if len(opts.Annotators) > 0 {
		args = append(args, "-a")
		args = append(args, opts.Annotators...)
	}
	if len(opts.ReportTypes) > 0 {
		args = append(args, "-t")
		args = append(args, opts.ReportTypes...)
	}
	if opts.OutputDir != "" {
		args = append(args, "-d", opts.OutputDir)
	}
	if opts.Genome != "" {
		args = append(args, "-l", opts.Genome)
	}
	if opts.RunName != "" {
		args = append(args, "-n", opts.RunName)
	}
	if opts.Cores > 0 {
		args = append(args, "--mp", strconv.Itoa(opts.Cores))
	}

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// Report generates reports from an existing result database.
func (c *CLI) Report(ctx context.Context, opts ReportOptions) (any, error) {
	args := []string{"report", opts.DBPath}
	if len(opts.ReportTypes) > 0 {
		args = append(args, "-t")
		args = append(args, opts.ReportTypes...)
	}
	if opts.OutputDir != "" {
		args = append(args, "-d", opts.OutputDir)
	}
	if opts.FilterPath != "" {
		args = append(args, "-f", opts.FilterPath)
	}
	if opts.FilterSQL != "" {
		args = append(args, "--filtersql", opts.FilterSQL)
	}
	if len(opts.Columns) > 0 {
		args = append(args, "--cols")
		args = append(args, opts.Columns...)
	}

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// SQLiteInfo describes a result database.
func (c *CLI) SQLiteInfo(ctx context.Context, dbpath string) (any, error) {
	out, err := c.run(ctx, "util", "sqliteinfo", dbpath, "--to", "json")
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// FilterSQLite writes filtered copies of result databases.
func (c *CLI) FilterSQLite(ctx context.Context, opts FilterOptions) error {
	args := []string{"util", "filtersqlite"}
	args = append(args, opts.DBPaths...)
	if opts.FilterPath != "" {
		args = append(args, "-f", opts.FilterPath)
	}
	if opts.FilterSQL != "" {
		args = append(args, "--filtersql", opts.FilterSQL)
	}
	for _, s := range opts.IncludeSamples {
		args = append(args, "--includesample", s)
	}
	for _, s := range opts.ExcludeSamples {
		args = append(args, "--excludesample", s)
	}
	if opts.Suffix != "" {
		args = append(args, "--suffix", opts.Suffix)
	}
	if opts.OutputDir != "" {
		args = append(args, "--out", opts.OutputDir)
	}
	_, err := c.run(ctx, args...)
	return err
}

// NewModule creates a module template and returns its directory.
func (c *CLI) NewModule(ctx context.Context, name, moduleType string) (string, error) {
	out, err := c.run(ctx, "new", "module", "-n", name, "-t", moduleType)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// NewExampleInput writes an example input file and returns its path.
func (c *CLI) NewExampleInput(ctx context.Context, directory string) (string, error) {
	args := []string{"new", "exampleinput"}
	if directory != "" {
		args = append(args, "-d", directory)
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PackModule packs a module for distribution.
func (c *CLI) PackModule(ctx context.Context, name, outdir string, codeOnly bool) (any, error) {
	args := []string{"module", "pack", name}
	if outdir != "" {
		args = append(args, "-d", outdir)
	}
	if codeOnly {
		args = append(args, "--code-only")
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return decodeOutput(out), nil
}

// StoreFetch refreshes the store cache.
func (c *CLI) StoreFetch(ctx context.Context, refreshDB, clean bool) error {
	args := []string{"store", "fetch"}
	if refreshDB {
		args = append(args, "--refresh-db")
	}
	if clean {
		args = append(args, "--clean")
	}
	_, err := c.run(ctx, args...)
	return err
}

// StoreRegister registers a module in the store.
func (c *CLI) StoreRegister(ctx context.Context, name string, codeURLs, dataURLs []string) error {
	args := []string{"store", "register", name}
	for _, u := range codeURLs {
		args = append(args, "--code-url", u)
	}
	for _, u := range dataURLs {
		args = append(args, "--data-url", u)
	}
	_, err := c.run(ctx, args...)
	return err
}
