package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureOutputWithExitCode(t *testing.T, run func() int) (int, string, string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe stdout failed: %v", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe stderr failed: %v", err)
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	code := run()

	_ = stdoutW.Close()
	_ = stderrW.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	stdoutBytes, _ := io.ReadAll(stdoutR)
	stderrBytes, _ := io.ReadAll(stderrR)

	_ = stdoutR.Close()
	_ = stderrR.Close()

	return code, string(stdoutBytes), string(stderrBytes)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigLockThenCheck(t *testing.T) {
	configPath := writeConfig(t, "service:\n  name: ovmcp\n")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"lock", "-config", configPath})
	})
	if code != 0 {
		t.Fatalf("config lock code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "authorized") {
		t.Fatalf("config lock stdout missing confirmation: %s", stdout)
	}

	code, stdout, stderr = captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"check", "-config", configPath})
	})
	if code != 0 {
		t.Fatalf("config check code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "valid") {
		t.Fatalf("config check stdout missing confirmation: %s", stdout)
	}
}

func TestConfigCheckDetectsTampering(t *testing.T) {
	configPath := writeConfig(t, "service:\n  name: ovmcp\n")

	if code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"lock", "-config", configPath})
	}); code != 0 {
		t.Fatalf("config lock code = %d, stderr: %s", code, stderr)
	}

	if err := os.WriteFile(configPath, []byte("service:\n  name: tampered\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"check", "-config", configPath})
	})
	if code != 1 {
		t.Fatalf("config check code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Integrity check failed") {
		t.Fatalf("stderr missing integrity failure: %s", stderr)
	}
}

func TestConfigNounRequiresAction(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun(nil)
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Fatalf("stderr missing usage: %s", stderr)
	}
}

func TestDoctorMissingToolkit(t *testing.T) {
	configPath := writeConfig(t, "toolkit:\n  executable: definitely-not-a-real-binary-9f2c\n")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runDoctor([]string{"-config", configPath})
	})
	if code != 1 {
		t.Fatalf("doctor code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "not found on PATH") {
		t.Fatalf("stdout missing toolkit finding: %s", stdout)
	}
}

func TestDoctorJSONOutput(t *testing.T) {
	configPath := writeConfig(t, "toolkit:\n  executable: definitely-not-a-real-binary-9f2c\n")

	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runDoctor([]string{"-config", configPath, "-json"})
	})
	if code != 1 {
		t.Fatalf("doctor code = %d", code)
	}
	if !strings.Contains(stdout, `"valid": false`) {
		t.Fatalf("stdout is not the expected JSON: %s", stdout)
	}
}

func TestServeFailsWithoutToolkit(t *testing.T) {
	configPath := writeConfig(t, "toolkit:\n  executable: definitely-not-a-real-binary-9f2c\n")

	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runServe([]string{"-config", configPath})
	})
	if code != 1 {
		t.Fatalf("serve code = %d", code)
	}
	if !strings.Contains(stderr, "Toolkit not available") {
		t.Fatalf("stderr missing startup failure: %s", stderr)
	}
}
