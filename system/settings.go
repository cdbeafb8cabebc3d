// Copyright (c) 2026, The Mullion Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the platform-level persisted settings: saved window
// geometries and user overrides such as a forced backend. They are
// stored as TOML in the app data directory.
type Settings struct {
	// Backend forces a specific backend on platforms with more than
	// one ("x11" or "wayland" on Linux). Empty means auto-detect.
	// The MULLION_BACKEND environment variable takes precedence.
	Backend string `toml:"backend,omitempty"`

	// Geometries holds the last known geometry per window name, so
	// windows reopen where the user left them.
	Geometries map[string]WindowGeometry `toml:"geometries,omitempty"`

	mu sync.Mutex `toml:"-"`
}

// WindowGeometry is one saved window placement, in logical
// desktop coordinates.
type WindowGeometry struct {
	Pos  image.Point `toml:"pos"`
	Size image.Point `toml:"size"`
}

// TheSettings are the loaded platform settings; zero until
// [OpenSettings] runs (the base app does this at init).
var TheSettings Settings

// SettingsFile returns the path of the settings file.
func SettingsFile() string {
	return filepath.Join(TheApp.AppDataDir(), "window-settings.toml")
}

// OpenSettings reads [TheSettings] from [SettingsFile]. A missing
// file is not an error; the settings stay zero.
func OpenSettings() error {
	b, err := os.ReadFile(SettingsFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("system: opening settings: %w", err)
	}
	if err := toml.Unmarshal(b, &TheSettings); err != nil {
		return fmt.Errorf("system: parsing settings: %w", err)
	}
	return nil
}

// SaveSettings writes [TheSettings] to [SettingsFile].
func SaveSettings() error {
	b, err := toml.Marshal(&TheSettings)
	if err != nil {
		return fmt.Errorf("system: encoding settings: %w", err)
	}
	if err := os.WriteFile(SettingsFile(), b, 0644); err != nil {
		return fmt.Errorf("system: saving settings: %w", err)
	}
	return nil
}

// RecordGeometry saves the given window's current placement under its
// name, for restoring on next open. It does not write the file; that
// happens once at quit.
func RecordGeometry(w Window) {
	if w == nil || w.Name() == "" || w.Stage() >= Closing {
		return
	}
	TheSettings.mu.Lock()
	defer TheSettings.mu.Unlock()
	if TheSettings.Geometries == nil {
		TheSettings.Geometries = map[string]WindowGeometry{}
	}
	TheSettings.Geometries[w.Name()] = WindowGeometry{
		Pos:  w.Position(),
		Size: w.WinSize(),
	}
}

// SavedGeometry returns the saved placement for the given window
// name, if any.
func SavedGeometry(name string) (WindowGeometry, bool) {
	TheSettings.mu.Lock()
	defer TheSettings.mu.Unlock()
	wg, ok := TheSettings.Geometries[name]
	return wg, ok
}
