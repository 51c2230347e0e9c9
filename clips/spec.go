// Package clips loads clip libraries from yaml authoring files and turns
// them into anim clips.
package clips

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/frameplay/anim"
	"github.com/milk9111/frameplay/render"
)

// LibrarySpec describes one spritesheet and the clips cut from it.
type LibrarySpec struct {
	Sheet   string     `yaml:"sheet"`
	FrameW  int        `yaml:"frame_w"`
	FrameH  int        `yaml:"frame_h"`
	Default string     `yaml:"default"`
	Clips   []ClipSpec `yaml:"clips"`
}

// ClipSpec describes one clip inside a library.
type ClipSpec struct {
	Name       string  `yaml:"name"`
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// LoadLibrarySpec reads and parses a library spec from disk.
func LoadLibrarySpec(filename string) (LibrarySpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return LibrarySpec{}, fmt.Errorf("clips: load %s: %w", filename, err)
	}
	spec, err := ParseLibrarySpec(data)
	if err != nil {
		return LibrarySpec{}, fmt.Errorf("clips: parse %s: %w", filename, err)
	}
	return spec, nil
}

// ParseLibrarySpec parses and validates a library spec.
func ParseLibrarySpec(data []byte) (LibrarySpec, error) {
	var spec LibrarySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return LibrarySpec{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return LibrarySpec{}, err
	}
	return spec, nil
}

// Validate checks the spec for authoring mistakes. These are load-time
// errors; nothing here is recoverable at play time.
func (s LibrarySpec) Validate() error {
	if s.FrameW <= 0 || s.FrameH <= 0 {
		return fmt.Errorf("frame size %dx%d is not positive", s.FrameW, s.FrameH)
	}
	if len(s.Clips) == 0 {
		return fmt.Errorf("library has no clips")
	}
	seen := make(map[string]bool, len(s.Clips))
	for i, c := range s.Clips {
		if c.Name == "" {
			return fmt.Errorf("clip %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate clip name %q", c.Name)
		}
		seen[c.Name] = true
		if c.FrameCount <= 0 {
			return fmt.Errorf("clip %q has frame_count %d", c.Name, c.FrameCount)
		}
		if c.FPS <= 0 {
			return fmt.Errorf("clip %q has fps %v", c.Name, c.FPS)
		}
		if c.Row < 0 || c.ColStart < 0 {
			return fmt.Errorf("clip %q has negative sheet position", c.Name)
		}
	}
	if s.Default == "" {
		return fmt.Errorf("library has no default clip")
	}
	if !seen[s.Default] {
		return fmt.Errorf("default clip %q is not defined", s.Default)
	}
	return nil
}

// Build slices the sheet per the spec and returns the default clip plus the
// remaining clips, ready for anim.NewAnimator.
func Build(spec LibrarySpec, sheet *ebiten.Image) (def *anim.Clip, rest []*anim.Clip, err error) {
	if sheet == nil {
		return nil, nil, fmt.Errorf("clips: sheet is nil")
	}
	for _, c := range spec.Clips {
		frames := render.SliceRow(sheet, spec.FrameW, spec.FrameH, c.Row, c.ColStart+c.FrameCount)
		if len(frames) < c.ColStart+c.FrameCount {
			return nil, nil, fmt.Errorf("clips: clip %q wants %d frames at col %d, sheet yields %d", c.Name, c.FrameCount, c.ColStart, len(frames))
		}
		clip, err := anim.NewClip(c.Name, frames[c.ColStart:c.ColStart+c.FrameCount], c.FPS, c.Loop)
		if err != nil {
			return nil, nil, fmt.Errorf("clips: clip %q: %w", c.Name, err)
		}
		if c.Name == spec.Default {
			def = clip
			continue
		}
		rest = append(rest, clip)
	}
	if def == nil {
		return nil, nil, fmt.Errorf("clips: default clip %q is not defined", spec.Default)
	}
	return def, rest, nil
}
