// Package doctor validates the ovmcp configuration and the toolkit
// installation it fronts.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ovtools/ovmcp/internal/config"
	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/toolkit"
)

// Result holds the outcome of a validation run.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Issue describes a single validation error or warning.
type Issue struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// Doctor validates configuration and toolkit reachability. The toolkit
// may be nil when the executable could not be located; the corresponding
// checks then report the missing installation instead of running.
type Doctor struct {
	cfg *config.Config
	tk  toolkit.Toolkit
}

// New creates a Doctor from a loaded config and an optional toolkit.
func New(cfg *config.Config, tk toolkit.Toolkit) *Doctor {
	return &Doctor{cfg: cfg, tk: tk}
}

// Validate runs all checks and returns a result.
func (d *Doctor) Validate(ctx context.Context) *Result {
	r := &Result{Valid: true}

	d.validateServiceConfig(r)
	d.validateQueryConfig(r)
	d.validateAPIConfig(r)
	d.validateToolkit(ctx, r)

	r.Valid = len(r.Errors) == 0
	return r
}

func (d *Doctor) addError(r *Result, category, field, msg string) {
	r.Errors = append(r.Errors, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) addWarning(r *Result, category, field, msg string) {
	r.Warnings = append(r.Warnings, Issue{Category: category, Field: field, Message: msg})
}

// validateServiceConfig checks required service fields.
func (d *Doctor) validateServiceConfig(r *Result) {
	if d.cfg.Toolkit.Executable == "" {
		d.addError(r, "service", "toolkit.executable", "toolkit.executable is required")
	}
	if d.cfg.Toolkit.Timeout <= 0 {
		d.addError(r, "service", "toolkit.timeout", "timeout must be positive")
	}

	switch strings.ToUpper(d.cfg.Service.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "":
	default:
		d.addWarning(r, "service", "service.log_level",
			fmt.Sprintf("unknown log level %q, falling back to INFO", d.cfg.Service.LogLevel))
	}
}

// validateQueryConfig checks the query limit bounds.
func (d *Doctor) validateQueryConfig(r *Result) {
	if d.cfg.Query.DefaultLimit <= 0 {
		d.addError(r, "query", "query.default_limit", "default_limit must be positive")
	}
	if d.cfg.Query.MaxLimit <= 0 {
		d.addError(r, "query", "query.max_limit", "max_limit must be positive")
	}
	if d.cfg.Query.MaxLimit > 0 && d.cfg.Query.DefaultLimit > d.cfg.Query.MaxLimit {
		d.addError(r, "query", "query.default_limit", "default_limit exceeds max_limit")
	}
}

// validateAPIConfig checks the HTTP surface settings.
func (d *Doctor) validateAPIConfig(r *Result) {
	if d.cfg.API.Enabled && d.cfg.API.Listen == "" {
		d.addError(r, "api", "api.listen", "api.listen is required when the API is enabled")
	}
}

// validateToolkit checks that the toolkit executable exists and responds.
func (d *Doctor) validateToolkit(ctx context.Context, r *Result) {
	if d.cfg.Toolkit.Executable != "" {
		if _, err := exec.LookPath(d.cfg.Toolkit.Executable); err != nil {
			d.addError(r, "toolkit", "toolkit.executable",
				fmt.Sprintf("executable %q not found on PATH", d.cfg.Toolkit.Executable))
			return
		}
	}

	if d.tk == nil {
		d.addError(r, "toolkit", "toolkit.executable", "toolkit is not available")
		return
	}

	version, err := d.tk.Version(ctx)
	if err != nil {
		d.addError(r, "toolkit", "", fmt.Sprintf("failed to query toolkit version: %v", err))
		return
	}
	if version == "" {
		d.addWarning(r, "toolkit", "", "toolkit reported an empty version")
	}

	// A failed installation check is a warning: the adapter still serves
	// operations that do not need the modules directory.
	if _, err := d.tk.ModulesDir(ctx, ""); err != nil {
		var cerr *envelope.Error
		if errors.As(err, &cerr) && cerr.Category == envelope.NotConfigured {
			d.addWarning(r, "toolkit", "", "toolkit is installed but not set up: "+cerr.Message)
		} else {
			d.addError(r, "toolkit", "", fmt.Sprintf("failed to query modules directory: %v", err))
		}
	}
}
