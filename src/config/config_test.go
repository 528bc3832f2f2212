package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned %v", err)
	}
	if c.NumFloors != DefaultNumFloors || c.TickInterval != DefaultTickInterval || c.MaxPeople != DefaultMaxPeople {
		t.Errorf("Load(\"\") = %+v, expected defaults", c)
	}
	if c.NumberOfFloors() != DefaultNumFloors {
		t.Errorf("NumberOfFloors() = %d, expected %d", c.NumberOfFloors(), DefaultNumFloors)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "elevator.yaml", `
numberOfFloors: 7
millisecondsBetweenMovement: 250
maximumNumberOfPeople: 4
enforceCapacity: true
logLevel: debug
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if c.NumFloors != 7 {
		t.Errorf("NumFloors = %d, expected 7", c.NumFloors)
	}
	if c.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 250ms", c.TickInterval)
	}
	if c.MaxPeople != 4 || !c.EnforceCapacity {
		t.Errorf("capacity = %d/%v, expected 4/true", c.MaxPeople, c.EnforceCapacity)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", c.LogLevel)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "elevator.yaml", "numberOfFloors: 3\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if c.NumFloors != 3 || c.TickInterval != DefaultTickInterval || c.MaxPeople != DefaultMaxPeople {
		t.Errorf("Load = %+v, expected 3 floors and default timing", c)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load of empty file returned %v", err)
	}
	if c.NumFloors != DefaultNumFloors {
		t.Errorf("NumFloors = %d, expected default", c.NumFloors)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
	path := writeFile(t, "bad.yaml", "numberOfFloors: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed file returned nil error")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "ELEVSIM_FLOORS=12\nELEVSIM_TICK_MS=50\nELEVSIM_ENFORCE_CAPACITY=true\nELEVSIM_LOG_LEVEL=WARN\n")
	c, err := LoadEnv(Default(), path)
	if err != nil {
		t.Fatalf("LoadEnv returned %v", err)
	}
	if c.NumFloors != 12 || c.TickInterval != 50*time.Millisecond || !c.EnforceCapacity || c.LogLevel != "warn" {
		t.Errorf("LoadEnv = %+v", c)
	}
}

func TestProcessEnvWinsOverFile(t *testing.T) {
	path := writeFile(t, ".env", "ELEVSIM_FLOORS=12\n")
	t.Setenv(EnvFloors, "5")
	c, err := LoadEnv(Default(), path)
	if err != nil {
		t.Fatalf("LoadEnv returned %v", err)
	}
	if c.NumFloors != 5 {
		t.Errorf("NumFloors = %d, expected process environment value 5", c.NumFloors)
	}
}

func TestLoadEnvBadNumber(t *testing.T) {
	t.Setenv(EnvMaxPeople, "lots")
	if _, err := LoadEnv(Default(), ""); err == nil {
		t.Error("LoadEnv accepted a non-numeric capacity")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"single floor", func(c *Config) { c.NumFloors = 1 }, nil},
		{"no floors", func(c *Config) { c.NumFloors = 0 }, ErrNoFloors},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, ErrTickInterval},
		{"negative capacity", func(c *Config) { c.MaxPeople = -1 }, ErrNegativeCap},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, ErrUnknownLogLevel},
	}
	for _, tt := range tests {
		c := Default()
		tt.modify(&c)
		err := c.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Validate() = %v, expected %v", tt.name, err, tt.want)
		}
	}
}
