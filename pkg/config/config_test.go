package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func loadFrom(t *testing.T, dir string) *Settings {
	t.Helper()
	s, err := Load(Options{ConfigPaths: []string{dir}, EnvFile: filepath.Join(dir, ".env")})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYBOOK_PATH", filepath.Join(dir, "data"))

	s := loadFrom(t, dir)
	if s.Path != filepath.Join(dir, "data") {
		t.Fatalf("unexpected path %q", s.Path)
	}
	if s.Editor.Debounce != DefaultDebounce {
		t.Fatalf("expected default debounce, got %v", s.Editor.Debounce)
	}
	if s.Audio.File != filepath.Join(dir, "data", "sounds", "background.m4a") {
		t.Fatalf("unexpected audio file %q", s.Audio.File)
	}
	if s.Log.File != filepath.Join(dir, "data", "daybook.log") {
		t.Fatalf("unexpected log file %q", s.Log.File)
	}
	if len(s.Keys.Playback) != 2 || s.Keys.Playback[0] != "ctrl+m" {
		t.Fatalf("unexpected playback keys %v", s.Keys.Playback)
	}
	if s.File != "" {
		t.Fatalf("expected no config file, got %q", s.File)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := strings.Join([]string{
		"path: " + filepath.Join(dir, "notes"),
		"editor:",
		"  debounce: 750ms",
		"log:",
		"  level: debug",
		"keys:",
		"  playback: [f2]",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, ".daybook.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s := loadFrom(t, dir)
	if s.Editor.Debounce != 750*time.Millisecond {
		t.Fatalf("expected 750ms debounce, got %v", s.Editor.Debounce)
	}
	if s.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", s.Log.Level)
	}
	if len(s.Keys.Playback) != 1 || s.Keys.Playback[0] != "f2" {
		t.Fatalf("expected playback override, got %v", s.Keys.Playback)
	}
	if len(s.Keys.Save) == 0 {
		t.Fatalf("expected default save keys to survive partial override")
	}
	if !strings.HasSuffix(s.File, ".daybook.yaml") {
		t.Fatalf("expected config file to be recorded, got %q", s.File)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "from-env")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DAYBOOK_PATH="+data+"\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("DAYBOOK_PATH") })

	s := loadFrom(t, dir)
	if s.Path != data {
		t.Fatalf("expected path from .env, got %q", s.Path)
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	s := &Settings{
		Path:   "/tmp/daybook",
		Editor: EditorSettings{Debounce: DefaultDebounce},
		Audio:  AudioSettings{File: "/tmp/daybook/sounds/background.m4a"},
		Log:    LogSettings{File: "/tmp/daybook/daybook.log", Level: "loud"},
		Keys:   DefaultKeys(),
	}
	if err := s.Validate(); err == nil {
		t.Fatal("expected invalid level to fail validation")
	}
	s.Log.Level = "info"
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}
}

func TestValidateRejectsTinyDebounce(t *testing.T) {
	e := EditorSettings{Debounce: time.Millisecond}
	if err := e.Validate(); err == nil {
		t.Fatal("expected 1ms debounce to fail validation")
	}
}

func TestValidateRejectsEmptyBinding(t *testing.T) {
	keys := DefaultKeys()
	keys.Quit = nil
	if err := keys.Validate(); err == nil {
		t.Fatal("expected missing quit binding to fail validation")
	}
}
