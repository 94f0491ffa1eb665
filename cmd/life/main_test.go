package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetRootCmd(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	if err := rootCmd.Flags().Set("version", "false"); err != nil {
		t.Fatalf("reset version flag: %v", err)
	}
	colorMode = "auto"
	return &out, &errOut
}

func TestVersionFlag(t *testing.T) {
	out, _ := resetRootCmd(t)
	rootCmd.SetArgs([]string{"--version", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "life compiler version") {
		t.Errorf("missing version banner, got: %s", out.String())
	}
}

func TestStdinSuccess(t *testing.T) {
	out, _ := resetRootCmd(t)
	rootCmd.SetIn(strings.NewReader("pub fn main(): I32 { return 0; }"))
	rootCmd.SetArgs([]string{"--color=off", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "(fn pub main") {
		t.Errorf("expected rendered tree, got: %s", out.String())
	}
}

func TestStdinParseError(t *testing.T) {
	_, errOut := resetRootCmd(t)
	rootCmd.SetIn(strings.NewReader("pub fn main(: I32 { return 0; }"))
	rootCmd.SetArgs([]string{"--color=off", "-"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for malformed source")
	}
	if !strings.Contains(errOut.String(), "error:") {
		t.Errorf("expected diagnostic output, got: %s", errOut.String())
	}
}

func TestDirectoryModeSuccess(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lib.life"), []byte("pub fn helper(): I32 { return 1; }"), 0o600); err != nil {
		t.Fatalf("write module: %v", err)
	}
	out, _ := resetRootCmd(t)
	rootCmd.SetArgs([]string{"--color=off", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "(fn pub helper") {
		t.Errorf("expected rendered tree, got: %s", out.String())
	}
}

func TestDirectoryModeFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lib.life"), []byte("pub fn broken(: I32 { return 1; }"), 0o600); err != nil {
		t.Fatalf("write module: %v", err)
	}
	_, errOut := resetRootCmd(t)
	rootCmd.SetArgs([]string{"--color=off", dir})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for malformed module")
	}
	if !strings.Contains(errOut.String(), "error:") {
		t.Errorf("expected diagnostic output, got: %s", errOut.String())
	}
}

func TestShouldColor(t *testing.T) {
	if !shouldColor("on", os.Stdout) {
		t.Error("color=on should always colorize")
	}
	if shouldColor("off", os.Stdout) {
		t.Error("color=off should never colorize")
	}
	var buf bytes.Buffer
	if shouldColor("auto", &buf) {
		t.Error("auto should not colorize a non-file writer")
	}
}
