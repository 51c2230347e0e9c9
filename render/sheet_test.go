package render

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSlice(t *testing.T) {
	// 3 columns x 2 rows of 4x4 frames.
	sheet := ebiten.NewImage(12, 8)

	cases := []struct {
		name       string
		frameCount int
		want       int
	}{
		{"all_frames", 0, 6},
		{"subset", 4, 4},
		{"clamped_to_sheet", 99, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			frames := Slice(sheet, 4, 4, c.frameCount)
			if len(frames) != c.want {
				t.Fatalf("expected %d frames, got %d", c.want, len(frames))
			}
			for i, f := range frames {
				b := f.Bounds()
				if b.Dx() != 4 || b.Dy() != 4 {
					t.Fatalf("frame %d is %dx%d, want 4x4", i, b.Dx(), b.Dy())
				}
			}
		})
	}
}

func TestSliceRow(t *testing.T) {
	sheet := ebiten.NewImage(12, 8)

	t.Run("second_row", func(t *testing.T) {
		frames := SliceRow(sheet, 4, 4, 1, 0)
		if len(frames) != 3 {
			t.Fatalf("expected the 3 remaining frames, got %d", len(frames))
		}
	})

	t.Run("negative_row_clamps", func(t *testing.T) {
		frames := SliceRow(sheet, 4, 4, -2, 2)
		if len(frames) != 2 {
			t.Fatalf("expected 2 frames, got %d", len(frames))
		}
	})

	t.Run("row_out_of_range", func(t *testing.T) {
		if frames := SliceRow(sheet, 4, 4, 5, 2); frames != nil {
			t.Fatalf("expected nil for an out-of-range row, got %d frames", len(frames))
		}
	})
}

func TestSliceRejectsBadInput(t *testing.T) {
	sheet := ebiten.NewImage(12, 8)
	if Slice(nil, 4, 4, 0) != nil {
		t.Fatal("nil sheet should yield nil")
	}
	if Slice(sheet, 0, 4, 0) != nil || Slice(sheet, 4, -1, 0) != nil {
		t.Fatal("non-positive frame size should yield nil")
	}
}
