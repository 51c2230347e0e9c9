package clips

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const validLibraryYAML = `
sheet: hero.png
frame_w: 2
frame_h: 2
default: idle
clips:
  - name: idle
    row: 0
    frame_count: 2
    fps: 10
    loop: true
  - name: walk
    row: 1
    col_start: 1
    frame_count: 3
    fps: 12
    loop: true
`

func TestParseLibrarySpec(t *testing.T) {
	spec, err := ParseLibrarySpec([]byte(validLibraryYAML))
	if err != nil {
		t.Fatalf("ParseLibrarySpec: %v", err)
	}
	if spec.Sheet != "hero.png" || spec.Default != "idle" {
		t.Fatalf("unexpected spec header: %+v", spec)
	}
	if len(spec.Clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(spec.Clips))
	}
	if spec.Clips[1].ColStart != 1 || spec.Clips[1].FPS != 12 {
		t.Fatalf("walk clip parsed wrong: %+v", spec.Clips[1])
	}
}

func TestLibrarySpecValidation(t *testing.T) {
	base := func() LibrarySpec {
		return LibrarySpec{
			FrameW:  2,
			FrameH:  2,
			Default: "idle",
			Clips: []ClipSpec{
				{Name: "idle", FrameCount: 2, FPS: 10, Loop: true},
			},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*LibrarySpec)
		wantSub string
	}{
		{"ok", func(*LibrarySpec) {}, ""},
		{"zero_frame_size", func(s *LibrarySpec) { s.FrameW = 0 }, "frame size"},
		{"no_clips", func(s *LibrarySpec) { s.Clips = nil }, "no clips"},
		{"unnamed_clip", func(s *LibrarySpec) { s.Clips[0].Name = "" }, "no name"},
		{"duplicate_name", func(s *LibrarySpec) {
			s.Clips = append(s.Clips, ClipSpec{Name: "idle", FrameCount: 1, FPS: 5})
		}, "duplicate"},
		{"zero_frame_count", func(s *LibrarySpec) { s.Clips[0].FrameCount = 0 }, "frame_count"},
		{"non_positive_fps", func(s *LibrarySpec) { s.Clips[0].FPS = 0 }, "fps"},
		{"negative_position", func(s *LibrarySpec) { s.Clips[0].Row = -1 }, "position"},
		{"missing_default", func(s *LibrarySpec) { s.Default = "" }, "no default"},
		{"unknown_default", func(s *LibrarySpec) { s.Default = "run" }, "not defined"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := base()
			c.mutate(&spec)
			err := spec.Validate()
			if c.wantSub == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantSub) {
				t.Fatalf("Validate error %q should mention %q", err, c.wantSub)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	spec, err := ParseLibrarySpec([]byte(validLibraryYAML))
	if err != nil {
		t.Fatalf("ParseLibrarySpec: %v", err)
	}
	// 4 columns x 2 rows of 2x2 frames.
	sheet := ebiten.NewImage(8, 4)

	def, rest, err := Build(spec, sheet)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if def.Name() != "idle" || def.Len() != 2 {
		t.Fatalf("default clip = %q len %d", def.Name(), def.Len())
	}
	if len(rest) != 1 || rest[0].Name() != "walk" || rest[0].Len() != 3 {
		t.Fatalf("unexpected non-default clips: %v", rest)
	}
}

func TestBuildErrors(t *testing.T) {
	spec, err := ParseLibrarySpec([]byte(validLibraryYAML))
	if err != nil {
		t.Fatalf("ParseLibrarySpec: %v", err)
	}

	if _, _, err := Build(spec, nil); err == nil {
		t.Fatal("Build with nil sheet should fail")
	}

	// A sheet with a single row cannot supply the row-1 walk clip.
	if _, _, err := Build(spec, ebiten.NewImage(8, 2)); err == nil {
		t.Fatal("Build should fail when the sheet is too small for a clip")
	}
}
