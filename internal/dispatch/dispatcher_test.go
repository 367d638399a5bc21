package dispatch

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/log"
	"github.com/ovtools/ovmcp/internal/query"
	"github.com/ovtools/ovmcp/internal/toolkit"
	"github.com/ovtools/ovmcp/internal/toolkit/mocks"
)

func TestMain(m *testing.M) {
	log.Setup("ERROR") // Suppress logs in tests
	os.Exit(m.Run())
}

// newTestDispatcher wires a dispatcher to a strict mock toolkit. Any
// toolkit call without a matching expectation fails the test, which is
// exactly the "never calls into the toolkit" property we assert.
func newTestDispatcher(t *testing.T) (*Dispatcher, *mocks.MockToolkit) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)
	return New(tk, query.NewExecutor(100, 10000)), tk
}

func TestOperationSetComplete(t *testing.T) {
	d, _ := newTestDispatcher(t)

	want := []string{
		"ov_version", "ov_system_check", "ov_system_setup", "ov_modules_dir",
		"ov_module_list", "ov_module_info", "ov_module_install",
		"ov_module_uninstall", "ov_module_update",
		"ov_run", "ov_report",
		"ov_sqliteinfo", "ov_filtersqlite", "ov_query",
		"ov_new_module", "ov_new_exampleinput", "ov_module_pack",
		"ov_store_fetch", "ov_store_register",
	}

	got := make([]string, 0, len(want))
	for _, op := range d.Operations() {
		got = append(got, op.Name)
		assert.NotEmpty(t, op.Description, "operation %s has no description", op.Name)
		assert.NotNil(t, op.InputSchema, "operation %s has no input schema", op.Name)
	}
	assert.ElementsMatch(t, want, got)
}

func TestUnknownOperation(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res := d.Invoke(context.Background(), "ov_teleport", map[string]any{})
	require.NotNil(t, res.Error)
	assert.False(t, res.Success)
	assert.Equal(t, envelope.UnknownOperation, res.Error.Category)
}

func TestMissingRequiredParameter(t *testing.T) {
	d, _ := newTestDispatcher(t)

	tests := []struct {
		operation string
		args      map[string]any
	}{
		{"ov_module_info", map[string]any{}},
		{"ov_module_install", map[string]any{"overwrite": true}},
		{"ov_run", map[string]any{"genome": "hg38"}},
		{"ov_report", nil},
		{"ov_query", map[string]any{"dbpath": "x.sqlite"}},
		{"ov_new_module", map[string]any{"module_name": "mymod"}},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			res := d.Invoke(context.Background(), tt.operation, tt.args)
			require.NotNil(t, res.Error)
			assert.Equal(t, envelope.InvalidParameters, res.Error.Category)
		})
	}
}

func TestWrongParameterType(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res := d.Invoke(context.Background(), "ov_module_info", map[string]any{"module_name": 42})
	require.NotNil(t, res.Error)
	assert.Equal(t, envelope.InvalidParameters, res.Error.Category)
}

func TestVersionEndToEnd(t *testing.T) {
	d, tk := newTestDispatcher(t)
	tk.EXPECT().Version(gomock.Any()).Return("2.12.0", nil)

	res := d.Invoke(context.Background(), "ov_version", map[string]any{})
	require.True(t, res.Success, "unexpected error: %v", res.Error)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2.12.0", data["version"])
}

func TestQueryMutationNeverReachesDatabase(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res := d.Invoke(context.Background(), "ov_query", map[string]any{
		"dbpath": "x.sqlite",
		"sql":    "DELETE FROM variant",
	})
	require.NotNil(t, res.Error)
	assert.Equal(t, envelope.DisallowedOperation, res.Error.Category)
}

func TestExecutionErrorPreservedAndDispatcherRecovers(t *testing.T) {
	d, tk := newTestDispatcher(t)

	tk.EXPECT().
		ModuleInstall(gomock.Any(), []string{"nonexistent-module"}, toolkit.InstallOptions{}).
		Return(envelope.Errorf(envelope.ExecutionError, "module not found in store: nonexistent-module"))

	res := d.Invoke(context.Background(), "ov_module_install", map[string]any{
		"module_names": []any{"nonexistent-module"},
	})
	require.NotNil(t, res.Error)
	assert.Equal(t, envelope.ExecutionError, res.Error.Category)
	assert.Equal(t, "module not found in store: nonexistent-module", res.Error.Message)

	// The failure must not poison the next, unrelated invocation.
	tk.EXPECT().Version(gomock.Any()).Return("2.12.0", nil)
	res = d.Invoke(context.Background(), "ov_version", map[string]any{})
	assert.True(t, res.Success)
}

func TestSQLiteInfoIdempotent(t *testing.T) {
	d, tk := newTestDispatcher(t)

	info := map[string]any{"tables": []any{"variant", "gene"}, "num_variants": float64(1234)}
	tk.EXPECT().SQLiteInfo(gomock.Any(), "run1.sqlite").Return(info, nil).Times(2)

	first := d.Invoke(context.Background(), "ov_sqliteinfo", map[string]any{"dbpath": "run1.sqlite"})
	second := d.Invoke(context.Background(), "ov_sqliteinfo", map[string]any{"dbpath": "run1.sqlite"})

	require.True(t, first.Success)
	assert.Equal(t, first, second)
}

func TestModuleListDefaultsPattern(t *testing.T) {
	d, tk := newTestDispatcher(t)

	tk.EXPECT().
		ModuleList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts toolkit.ListOptions) (any, error) {
			assert.Equal(t, []string{".*"}, opts.Patterns)
			return []any{map[string]any{"name": "clinvar"}}, nil
		})

	res := d.Invoke(context.Background(), "ov_module_list", map[string]any{})
	require.True(t, res.Success)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, data["count"])
}

func TestBareStringAcceptedForStringSequence(t *testing.T) {
	d, tk := newTestDispatcher(t)

	tk.EXPECT().
		RunPipeline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts toolkit.RunOptions) (any, error) {
			assert.Equal(t, []string{"sample.vcf"}, opts.Inputs)
			return "run finished", nil
		})

	res := d.Invoke(context.Background(), "ov_run", map[string]any{"inputs": "sample.vcf"})
	assert.True(t, res.Success)
}

func TestInFlightTracking(t *testing.T) {
	d, tk := newTestDispatcher(t)

	release := make(chan struct{})
	started := make(chan struct{})
	tk.EXPECT().Version(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		close(started)
		<-release
		return "2.12.0", nil
	})

	done := make(chan envelope.Result, 1)
	go func() {
		done <- d.Invoke(context.Background(), "ov_version", map[string]any{})
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("invocation never started")
	}

	inflight := d.InFlight()
	require.Len(t, inflight, 1)
	assert.Equal(t, "ov_version", inflight[0].Operation)
	assert.NotEmpty(t, inflight[0].ID)

	close(release)
	select {
	case res := <-done:
		assert.True(t, res.Success)
	case <-time.After(5 * time.Second):
		t.Fatal("invocation never finished")
	}

	assert.Empty(t, d.InFlight())
}
