package profile

import (
	"maps"

	"github.com/mitchellh/hashstructure/v2"
)

// Settings is the daemon-owned global configuration. StateMap assigns the
// active profile name to each operating condition the daemon tracks
// (e.g. "power_ac", "power_bat"). The daemon is the sole writer of the
// authoritative copy; clients only ever hold mirrored snapshots.
type Settings struct {
	StateMap                 map[string]string `yaml:"state_map"`
	FanControlEnabled        bool              `yaml:"fan_control_enabled"`
	CPUSettingsEnabled       bool              `yaml:"cpu_settings_enabled"`
	KeyboardBacklightEnabled bool              `yaml:"keyboard_backlight_enabled"`
	ShutdownTime             *string           `yaml:"shutdown_time,omitempty"`
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	out := s
	if s.StateMap != nil {
		out.StateMap = maps.Clone(s.StateMap)
	}
	if s.ShutdownTime != nil {
		v := *s.ShutdownTime
		out.ShutdownTime = &v
	}
	return out
}

// Profile is a named bundle of performance and fan configuration. Built-in
// profiles are immutable from the client's perspective; custom profiles are
// user-owned. Names are unique across the union of both collections.
type Profile struct {
	Name           string          `yaml:"name"`
	CPU            CPUSettings     `yaml:"cpu"`
	Fan            FanSettings     `yaml:"fan"`
	Display        DisplaySettings `yaml:"display"`
	WebcamDisabled bool            `yaml:"webcam_disabled"`
}

// CPUSettings holds per-profile CPU tuning. Frequencies are in kHz;
// zero means "hardware default".
type CPUSettings struct {
	Governor     string `yaml:"governor"`
	MinFrequency int    `yaml:"min_frequency"`
	MaxFrequency int    `yaml:"max_frequency"`
	NoTurbo      bool   `yaml:"no_turbo"`
	OnlineCores  int    `yaml:"online_cores"`
}

// FanSettings holds per-profile fan control parameters. Table names a fan
// curve table from local configuration; MinimumSpeed and Offset are duty
// percentages applied on top of the curve.
type FanSettings struct {
	Table        string `yaml:"table"`
	MinimumSpeed int    `yaml:"minimum_speed"`
	Offset       int    `yaml:"offset"`
}

// DisplaySettings holds per-profile display tuning.
type DisplaySettings struct {
	Brightness    int  `yaml:"brightness"`
	UseBrightness bool `yaml:"use_brightness"`
}

// Clone returns an independent copy of the profile. Profile currently has
// no reference-typed fields, so this is a value copy; callers should still
// go through Clone so copies stay deep if the shape grows.
func (p Profile) Clone() Profile {
	return p
}

// CloneAll returns an independent copy of a profile collection.
func CloneAll(list []Profile) []Profile {
	if list == nil {
		return nil
	}
	out := make([]Profile, len(list))
	for i, p := range list {
		out[i] = p.Clone()
	}
	return out
}

// Fingerprint returns a structural hash of v. Two values with equal field
// contents hash identically regardless of where they were allocated.
func Fingerprint(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		// Only reachable for unhashable inputs (channels, funcs);
		// the profile types are plain data.
		return 0
	}
	return h
}

// Equal reports whether two profiles are structurally identical.
// Identity (same allocation) is never considered.
func Equal(a, b Profile) bool {
	return Fingerprint(a) == Fingerprint(b)
}

// SettingsEqual reports whether two settings values are structurally identical.
func SettingsEqual(a, b Settings) bool {
	return Fingerprint(a) == Fingerprint(b)
}

// IndexByName returns the position of the profile named name, or -1.
// Matching is exact string equality on Name.
func IndexByName(list []Profile, name string) int {
	for i, p := range list {
		if p.Name == name {
			return i
		}
	}
	return -1
}
