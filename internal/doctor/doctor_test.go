package doctor

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovtools/ovmcp/internal/config"
	"github.com/ovtools/ovmcp/internal/envelope"
	"github.com/ovtools/ovmcp/internal/toolkit/mocks"
)

// healthyConfig returns defaults with the executable pointed at a binary
// that exists on every test host, so PATH lookup succeeds and the mock
// toolkit receives the probe calls.
func healthyConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Toolkit.Executable = "sh"
	return cfg
}

func fieldsOf(issues []Issue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

func TestValidateHealthyInstallation(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)
	tk.EXPECT().Version(gomock.Any()).Return("2.12.0", nil)
	tk.EXPECT().ModulesDir(gomock.Any(), "").Return("/data/oakvar/modules", nil)

	r := New(healthyConfig(), tk).Validate(context.Background())

	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestValidateConfigErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)

	cfg := healthyConfig()
	cfg.Toolkit.Executable = ""
	cfg.Toolkit.Timeout = 0
	cfg.Query.DefaultLimit = 500
	cfg.Query.MaxLimit = 100
	cfg.API.Enabled = true
	cfg.API.Listen = ""

	r := New(cfg, tk).Validate(context.Background())

	require.False(t, r.Valid)
	fields := fieldsOf(r.Errors)
	assert.Contains(t, fields, "toolkit.executable")
	assert.Contains(t, fields, "toolkit.timeout")
	assert.Contains(t, fields, "query.default_limit")
	assert.Contains(t, fields, "api.listen")
}

func TestValidateExecutableMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)

	cfg := healthyConfig()
	cfg.Toolkit.Executable = "definitely-not-a-real-binary-9f2c"

	r := New(cfg, tk).Validate(context.Background())

	require.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "toolkit", r.Errors[0].Category)
	assert.Contains(t, r.Errors[0].Message, "not found on PATH")
}

func TestValidateVersionProbeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)
	tk.EXPECT().Version(gomock.Any()).
		Return("", envelope.Errorf(envelope.ExecutionError, "ov crashed"))

	r := New(healthyConfig(), tk).Validate(context.Background())

	require.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "ov crashed")
}

func TestValidateNotSetUpIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)
	tk.EXPECT().Version(gomock.Any()).Return("2.12.0", nil)
	tk.EXPECT().ModulesDir(gomock.Any(), "").
		Return("", envelope.Errorf(envelope.NotConfigured, "modules_dir is not set"))

	r := New(healthyConfig(), tk).Validate(context.Background())

	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0].Message, "not set up")
}

func TestValidateUnknownLogLevelWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	tk := mocks.NewMockToolkit(ctrl)
	tk.EXPECT().Version(gomock.Any()).Return("2.12.0", nil)
	tk.EXPECT().ModulesDir(gomock.Any(), "").Return("/data/oakvar/modules", nil)

	cfg := healthyConfig()
	cfg.Service.LogLevel = "verbose"

	r := New(cfg, tk).Validate(context.Background())

	assert.True(t, r.Valid)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "service", r.Warnings[0].Category)
}

func TestValidateNilToolkit(t *testing.T) {
	r := New(healthyConfig(), nil).Validate(context.Background())

	require.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "toolkit is not available", r.Errors[0].Message)
}
