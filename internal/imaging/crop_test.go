package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ironsheep/postcard-grid/internal/grid"
)

func newTestCropper() *Cropper {
	return NewCropper(DefaultJPEGQuality, nil)
}

func TestCropImage_Partition(t *testing.T) {
	const width, height = 120, 90
	img := createInMemoryImage(width, height, color.RGBA{200, 180, 160, 255})
	out := t.TempDir()

	result := newTestCropper().CropImage(img, []int{0, 30, 55, 90}, []int{0, 50, 120}, out)

	if len(result.ExtractedPaths) != 6 {
		t.Fatalf("extracted %d cells, want 6", len(result.ExtractedPaths))
	}

	area := 0
	for _, p := range result.ExtractedPaths {
		cell := decodeFile(t, p)
		area += cell.Bounds().Dx() * cell.Bounds().Dy()
	}
	if area != width*height {
		t.Errorf("cells cover %d pixels, want %d", area, width*height)
	}
}

func TestCropImage_RowMajorNaming(t *testing.T) {
	img := createInMemoryImage(60, 100, color.White)
	out := t.TempDir()

	result := newTestCropper().CropImage(img, []int{100, 0, 40}, []int{60, 30, 0}, out)

	var names []string
	for _, p := range result.ExtractedPaths {
		if filepath.Dir(p) != out {
			t.Errorf("artifact %s written outside %s", p, out)
		}
		names = append(names, filepath.Base(p))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "crop_manifest", []byte(strings.Join(names, "\n")+"\n"))
}

func TestCropImage_CellContent(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)
	fillRect(img, image.Rect(0, 50, 100, 100), color.Black)
	out := t.TempDir()

	result := newTestCropper().CropImage(img, []int{0, 50, 100}, []int{0, 100}, out)
	if len(result.ExtractedPaths) != 2 {
		t.Fatalf("extracted %d cells, want 2", len(result.ExtractedPaths))
	}

	top := decodeFile(t, result.ExtractedPaths[0])
	bottom := decodeFile(t, result.ExtractedPaths[1])

	if r, _, _, _ := top.At(50, 25).RGBA(); r>>8 < 200 {
		t.Errorf("top cell should be white, got %d", r>>8)
	}
	if r, _, _, _ := bottom.At(50, 25).RGBA(); r>>8 > 50 {
		t.Errorf("bottom cell should be black, got %d", r>>8)
	}
}

func TestCropImage_InsufficientBoundaries(t *testing.T) {
	img := createInMemoryImage(50, 50, color.White)

	tests := []struct {
		name string
		h, v []int
	}{
		{"single row boundary", []int{0}, []int{0, 50}},
		{"single column boundary", []int{0, 50}, []int{25}},
		{"empty", nil, nil},
		{"all out of range", []int{-10, 60}, []int{0, 50}},
		{"duplicates collapse to one", []int{20, 20, 20}, []int{0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "cells")
			result := newTestCropper().CropImage(img, tt.h, tt.v, out)
			if result.ExtractedPaths == nil {
				t.Fatal("ExtractedPaths must not be nil")
			}
			if len(result.ExtractedPaths) != 0 {
				t.Errorf("extracted %d cells, want 0", len(result.ExtractedPaths))
			}
		})
	}
}

func TestCropImage_ClipsOutOfRange(t *testing.T) {
	img := createInMemoryImage(50, 40, color.White)
	out := t.TempDir()

	result := newTestCropper().CropImage(img, []int{-5, 0, 20, 40, 90}, []int{0, 50, 51}, out)
	if len(result.ExtractedPaths) != 2 {
		t.Fatalf("extracted %d cells, want 2", len(result.ExtractedPaths))
	}
}

func TestCropImage_CreatesOutputDir(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)
	out := filepath.Join(t.TempDir(), "nested", "cells")

	result := newTestCropper().CropImage(img, []int{0, 20}, []int{0, 20}, out)
	if len(result.ExtractedPaths) != 1 {
		t.Fatalf("extracted %d cells, want 1", len(result.ExtractedPaths))
	}
	if _, err := os.Stat(filepath.Join(out, "crop_row0_col0.jpg")); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestCropImage_WriteFailureContinues(t *testing.T) {
	img := createInMemoryImage(40, 20, color.White)
	out := t.TempDir()

	// A directory squatting on the first cell's name makes that write fail.
	if err := os.Mkdir(filepath.Join(out, grid.CellName(0, 0)), 0755); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	result := newTestCropper().CropImage(img, []int{0, 20}, []int{0, 20, 40}, out)
	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if len(result.ExtractedPaths) != 1 || filepath.Base(result.ExtractedPaths[0]) != grid.CellName(0, 1) {
		t.Errorf("ExtractedPaths = %v, want only %s", result.ExtractedPaths, grid.CellName(0, 1))
	}
}

func TestCropImage_RoundTrip(t *testing.T) {
	img := createInMemoryImage(90, 90, color.White)
	out := t.TempDir()

	result := newTestCropper().CropImage(img, []int{0, 30, 60, 90}, []int{0, 45, 90}, out)

	want := map[grid.Position]bool{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			want[grid.Position{Row: r, Col: c}] = true
		}
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	got := map[grid.Position]bool{}
	for _, e := range entries {
		pos, ok := grid.ParseCellName(e.Name())
		if !ok {
			t.Errorf("unparsable artifact name %s", e.Name())
			continue
		}
		got[pos] = true
	}

	if len(got) != len(want) || len(result.ExtractedPaths) != len(want) {
		t.Fatalf("got %d positions / %d paths, want %d", len(got), len(result.ExtractedPaths), len(want))
	}
	for pos := range want {
		if !got[pos] {
			t.Errorf("position %v missing after round trip", pos)
		}
	}
}

func TestCropFile(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "sheet.png", createInMemoryImage(40, 40, color.White))

	result := newTestCropper().CropFile(src, []int{0, 20, 40}, []int{0, 40}, filepath.Join(dir, "out"))
	if len(result.ExtractedPaths) != 2 {
		t.Errorf("extracted %d cells, want 2", len(result.ExtractedPaths))
	}

	missing := newTestCropper().CropFile(filepath.Join(dir, "missing.png"), []int{0, 40}, []int{0, 40}, dir)
	if missing.ExtractedPaths == nil || len(missing.ExtractedPaths) != 0 {
		t.Errorf("unreadable source should give empty paths, got %v", missing.ExtractedPaths)
	}
}
