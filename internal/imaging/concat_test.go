package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestResizeToHeight(t *testing.T) {
	tests := []struct {
		name          string
		w, h, target  int
		wantW, wantH  int
	}{
		{"halve", 200, 100, 50, 100, 50},
		{"truncates width", 101, 100, 50, 50, 50},
		{"unchanged", 80, 60, 60, 80, 60},
		{"never below one pixel", 1, 100, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeToHeight(createInMemoryImage(tt.w, tt.h, color.White), tt.target)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeToWidth(t *testing.T) {
	got := ResizeToWidth(createInMemoryImage(100, 40, color.White), 250)
	if got.Bounds().Dx() != 250 || got.Bounds().Dy() != 100 {
		t.Errorf("got %dx%d, want 250x100", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestSideBySide(t *testing.T) {
	face := createInMemoryImage(100, 200, color.RGBA{255, 0, 0, 255})
	verso := createInMemoryImage(90, 150, color.RGBA{0, 0, 255, 255})

	pair := SideBySide(face, verso)

	// Height is the smaller source height; face shrinks to 75 wide.
	if pair.Bounds().Dy() != 150 {
		t.Errorf("height = %d, want 150", pair.Bounds().Dy())
	}
	if pair.Bounds().Dx() != 75+90 {
		t.Errorf("width = %d, want %d", pair.Bounds().Dx(), 75+90)
	}

	// Face on the left, verso on the right.
	if r, _, b, _ := pair.At(10, 75).RGBA(); r>>8 < 200 || b>>8 > 50 {
		t.Errorf("left side should be red, got r=%d b=%d", r>>8, b>>8)
	}
	if r, _, b, _ := pair.At(150, 75).RGBA(); b>>8 < 200 || r>>8 > 50 {
		t.Errorf("right side should be blue, got r=%d b=%d", r>>8, b>>8)
	}
}

func TestHConcatAndVConcat(t *testing.T) {
	a := createInMemoryImage(10, 20, color.White)
	b := createInMemoryImage(30, 40, color.White)

	h := HConcat(a, b)
	if h.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Errorf("HConcat bounds = %v, want 40x40", h.Bounds())
	}

	v := VConcat(a, b)
	if v.Bounds() != image.Rect(0, 0, 30, 60) {
		t.Errorf("VConcat bounds = %v, want 30x60", v.Bounds())
	}

	// Area not covered by the narrower image stays black.
	if r, g, bl, _ := v.At(20, 5).RGBA(); r != 0 || g != 0 || bl != 0 {
		t.Errorf("padding should be black, got %d,%d,%d", r, g, bl)
	}
}
