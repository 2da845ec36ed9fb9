package imaging

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "sheet.png", createInMemoryImage(120, 80, color.RGBA{255, 0, 0, 255}))

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 120x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.png")},
		{"undecodable file", garbage},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestSaveJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jpg")

	if err := SaveJPEG(createInMemoryImage(40, 30, color.White), path, 0); err != nil {
		t.Fatalf("SaveJPEG failed: %v", err)
	}

	img := decodeFile(t, path)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSaveJPEG_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.jpg")
	if err := SaveJPEG(createInMemoryImage(10, 10, color.White), path, 90); err == nil {
		t.Error("SaveJPEG should fail when the directory does not exist")
	}
}

func TestGetDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "dims.png", createInMemoryImage(200, 150, color.Black))

	dims, err := GetDimensions(path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("got %dx%d, want 200x150", dims.Width, dims.Height)
	}

	if _, err := GetDimensions(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("GetDimensions should fail for a missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
	// Idempotent
	if err := EnsureDir(dir); err != nil {
		t.Errorf("second EnsureDir failed: %v", err)
	}
}
