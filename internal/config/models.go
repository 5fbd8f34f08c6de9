package config

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/muurk/segbar/internal/segbar"
)

// Registry represents the entire profiles file.
type Registry struct {
	Version     int                 `yaml:"version"`
	Profiles    map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Profile is a saved bar request. Every field is optional; unset fields
// leave the corresponding mask bit clear so the library default applies.
type Profile struct {
	Description   string  `yaml:"description,omitempty"`
	Segments      *int    `yaml:"segments,omitempty"`
	Padding       *int    `yaml:"padding,omitempty"`
	SegmentWidth  *int    `yaml:"segment_width,omitempty"`
	SegmentHeight *int    `yaml:"segment_height,omitempty"`
	X             *int    `yaml:"x,omitempty"`
	Y             *int    `yaml:"y,omitempty"`
	Foreground    *string `yaml:"fg,omitempty"`
	Background    *string `yaml:"bg,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Backend      string `yaml:"backend"`          // "png" or "term"
	ScreenWidth  int    `yaml:"screen_width"`     // Canvas size for the png backend
	ScreenHeight int    `yaml:"screen_height"`    // Canvas size for the png backend
	Output       string `yaml:"output,omitempty"` // Default PNG path
}

// Backend names accepted in Preferences.Backend.
const (
	BackendPNG  = "png"
	BackendTerm = "term"
)

var profileNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Int returns a pointer to v, for building profiles in code.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building profiles in code.
func String(v string) *string { return &v }

// BuiltinProfiles are always available and cannot be overwritten or deleted.
var BuiltinProfiles = map[string]*Profile{
	"defaults":     {Description: "Library defaults, centered near the bottom of the screen"},
	"top-left":     {Description: "Default bar at (30,30)", X: Int(30), Y: Int(30)},
	"green-fg":     {Description: "Green segments", Foreground: String("green")},
	"green-bg":     {Description: "Green background", Background: String("green")},
	"big-pads":     {Description: "Padding of 10 pixels", Padding: Int(10)},
	"squares":      {Description: "Square 20x20 segments", SegmentWidth: Int(20), SegmentHeight: Int(20)},
	"many-squares": {Description: "60 square 10x10 segments", Segments: Int(60), SegmentWidth: Int(10), SegmentHeight: Int(10)},
}

// IsBuiltin reports whether name is a built-in profile.
func IsBuiltin(name string) bool {
	_, ok := BuiltinProfiles[name]
	return ok
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Profiles:    make(map[string]*Profile),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		Backend:      BackendPNG,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Output:       "segbar.png",
	}
}

// GetProfile looks up a user profile, falling back to the built-ins.
// Returns nil if no profile has that name.
func (r *Registry) GetProfile(name string) *Profile {
	if p, ok := r.Profiles[name]; ok {
		return p
	}
	return BuiltinProfiles[name]
}

// SetProfile adds or replaces a user profile.
func (r *Registry) SetProfile(name string, p *Profile) error {
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q (use lowercase letters, digits, '-' and '_')", name)
	}
	if IsBuiltin(name) {
		return fmt.Errorf("profile %q is built in and cannot be replaced", name)
	}
	if p == nil {
		return fmt.Errorf("profile %q is nil", name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}

	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = p
	return nil
}

// DeleteProfile removes a user profile.
func (r *Registry) DeleteProfile(name string) error {
	if IsBuiltin(name) {
		return fmt.Errorf("profile %q is built in and cannot be deleted", name)
	}
	if _, ok := r.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(r.Profiles, name)
	return nil
}

// ProfileNames returns every profile name, built-ins included, sorted.
func (r *Registry) ProfileNames() []string {
	names := make([]string, 0, len(r.Profiles)+len(BuiltinProfiles))
	for name := range BuiltinProfiles {
		names = append(names, name)
	}
	for name := range r.Profiles {
		if !IsBuiltin(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Validate checks the registry structure. Geometry that depends on the
// screen is left to the resolver.
func (r *Registry) Validate() error {
	if r.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", r.Version)
	}

	for name, p := range r.Profiles {
		if !profileNamePattern.MatchString(name) {
			return fmt.Errorf("invalid profile name %q", name)
		}
		if IsBuiltin(name) {
			return fmt.Errorf("profile %q shadows a built-in profile", name)
		}
		if p == nil {
			return fmt.Errorf("profile %q is empty", name)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}

	if prefs := r.Preferences; prefs != nil {
		switch prefs.Backend {
		case "", BackendPNG, BackendTerm:
		default:
			return fmt.Errorf("unknown backend %q (expected %s or %s)", prefs.Backend, BackendPNG, BackendTerm)
		}
		if prefs.ScreenWidth < 0 || prefs.ScreenHeight < 0 {
			return fmt.Errorf("invalid screen size %dx%d", prefs.ScreenWidth, prefs.ScreenHeight)
		}
	}

	return nil
}

// Validate rejects negative counts and sizes.
func (p *Profile) Validate() error {
	checks := []struct {
		field string
		value *int
	}{
		{"segments", p.Segments},
		{"padding", p.Padding},
		{"segment_width", p.SegmentWidth},
		{"segment_height", p.SegmentHeight},
	}
	for _, c := range checks {
		if c.value != nil && *c.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", c.field, *c.value)
		}
	}
	if p.Foreground != nil && *p.Foreground == "" {
		return fmt.Errorf("fg must not be empty")
	}
	if p.Background != nil && *p.Background == "" {
		return fmt.Errorf("bg must not be empty")
	}
	return nil
}

// Builder returns a request builder with the profile's fields applied.
// Callers may keep setting fields to override the profile.
func (p *Profile) Builder() *segbar.RequestBuilder {
	b := segbar.NewRequest()
	if p == nil {
		return b
	}
	if p.Segments != nil {
		b.SetSegments(*p.Segments)
	}
	if p.Padding != nil {
		b.SetPadding(*p.Padding)
	}
	if p.SegmentWidth != nil {
		b.SetSegmentWidth(*p.SegmentWidth)
	}
	if p.SegmentHeight != nil {
		b.SetSegmentHeight(*p.SegmentHeight)
	}
	if p.X != nil {
		b.SetX(*p.X)
	}
	if p.Y != nil {
		b.SetY(*p.Y)
	}
	if p.Foreground != nil {
		b.SetForeground(*p.Foreground)
	}
	if p.Background != nil {
		b.SetBackground(*p.Background)
	}
	return b
}

// Request converts the profile to a mask and attribute record.
func (p *Profile) Request() (segbar.Mask, *segbar.Attr) {
	return p.Builder().Build()
}

// ProfileFromRequest captures the masked fields of a request.
func ProfileFromRequest(mask segbar.Mask, attr *segbar.Attr) *Profile {
	p := &Profile{}
	if attr == nil {
		return p
	}
	if mask.Has(segbar.MaskSegments) {
		p.Segments = Int(attr.Segments)
	}
	if mask.Has(segbar.MaskPadding) {
		p.Padding = Int(attr.Padding)
	}
	if mask.Has(segbar.MaskSegmentWidth) {
		p.SegmentWidth = Int(attr.SegmentWidth)
	}
	if mask.Has(segbar.MaskSegmentHeight) {
		p.SegmentHeight = Int(attr.SegmentHeight)
	}
	if mask.Has(segbar.MaskX) {
		p.X = Int(attr.X)
	}
	if mask.Has(segbar.MaskY) {
		p.Y = Int(attr.Y)
	}
	if mask.Has(segbar.MaskForeground) {
		p.Foreground = String(attr.Foreground)
	}
	if mask.Has(segbar.MaskBackground) {
		p.Background = String(attr.Background)
	}
	return p
}
