package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/volschin/hmcfgusb"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v", cfg)
	}
	chip, err := cfg.chipProfile()
	if err != nil || chip != nil {
		t.Errorf("chipProfile() = %v, %v, want nil", chip, err)
	}
}

func TestLoadConfig(t *testing.T) {
	name := writeConfig(t, "chip: 644p\npollTimeout: 500ms\nreconnectRetries: 10\nlogFile: /tmp/flash.log\n")
	cfg, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		Chip:             "644p",
		PollTimeout:      500 * time.Millisecond,
		ReconnectDelay:   2 * time.Second,
		ReconnectRetries: 10,
		LogFile:          "/tmp/flash.log",
	}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
	chip, err := cfg.chipProfile()
	if err != nil {
		t.Fatal(err)
	}
	if *chip != hmcfgusb.ATmega644P {
		t.Errorf("chipProfile() = %+v", chip)
	}
	if len(cfg.programmerOptions()) != 3 {
		t.Errorf("unexpected number of programmer options")
	}
}

func TestLoadConfigCustomProfile(t *testing.T) {
	name := writeConfig(t, "profile:\n  name: ATmega1284P\n  imageSize: 0xF000\n  blockLength: 512\n")
	cfg, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	chip, err := cfg.chipProfile()
	if err != nil {
		t.Fatal(err)
	}
	want := hmcfgusb.ChipProfile{Name: "ATmega1284P", ImageSize: 0xF000, BlockLength: 512}
	if chip == nil || *chip != want {
		t.Fatalf("chipProfile() = %+v, want %+v", chip, want)
	}

	cfg.Chip = "328p"
	if chip, err = cfg.chipProfile(); err != nil || *chip != hmcfgusb.ATmega328P {
		t.Errorf("chipProfile() with chip name = %+v, %v", chip, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("loading a missing file succeeded")
	}
	if _, err := loadConfig(writeConfig(t, "baud: 115200\n")); err == nil {
		t.Errorf("unknown field accepted")
	}
	cfg, err := loadConfig(writeConfig(t, "chip: 2560p\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.chipProfile(); err == nil {
		t.Errorf("unknown chip accepted")
	}
}

func TestExampleConfig(t *testing.T) {
	ex := exampleConfig()
	for _, key := range []string{"chip:", "pollTimeout: 1s", "reconnectDelay: 2s"} {
		if !strings.Contains(ex, key) {
			t.Errorf("example config missing %q:\n%v", key, ex)
		}
	}
}
