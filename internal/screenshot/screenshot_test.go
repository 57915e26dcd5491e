package screenshot

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestFit(t *testing.T) {
	tests := []struct {
		desc           string
		srcW, srcH     int
		boundW, boundH float64
		wantW, wantH   float64
	}{
		{"16:9 into wide box", 1920, 1080, 10, 5, 8.888888, 5},
		{"wide image clamps to width", 4000, 1000, 10, 5, 10, 2.5},
		{"tall image keeps height bound", 500, 1000, 8, 4, 2, 4},
		{"square into square", 600, 600, 3, 3, 3, 3},
		{"zero source", 0, 100, 10, 5, 0, 0},
		{"zero bound", 100, 100, 0, 5, 0, 0},
	}

	for _, tt := range tests {
		w, h := Fit(tt.srcW, tt.srcH, tt.boundW, tt.boundH)
		if !almostEqual(w, tt.wantW) || !almostEqual(h, tt.wantH) {
			t.Errorf("[%s] expected %gx%g, got %gx%g", tt.desc, tt.wantW, tt.wantH, w, h)
		}
		if w > tt.boundW+epsilon || h > tt.boundH+epsilon {
			t.Errorf("[%s] fitted box %gx%g exceeds bounds %gx%g", tt.desc, w, h, tt.boundW, tt.boundH)
		}
	}
}

func TestCenterIn(t *testing.T) {
	x, y := CenterIn(1, 2, 10, 5, 8, 5)
	if !almostEqual(x, 2) || !almostEqual(y, 2) {
		t.Errorf("expected (2, 2), got (%g, %g)", x, y)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "dashboard.png"))
	touch(t, filepath.Join(dir, "my_shot.jpg"))
	touch(t, filepath.Join(dir, "slide_2.png"))
	touch(t, filepath.Join(dir, "demo-final.jpeg"))

	direct := filepath.Join(dir, "exact.gif")
	touch(t, direct)

	tests := []struct {
		desc string
		key  string
		want string
		ok   bool
	}{
		{"plain key", "dashboard", "dashboard.png", true},
		{"snake variant", "My Shot", "my_shot.jpg", true},
		{"numeric key", "2", "slide_2.png", true},
		{"glob fallback", "demo", "demo-final.jpeg", true},
		{"missing", "nothing-here", "", false},
		{"empty key", "", "", false},
	}

	for _, tt := range tests {
		got, ok := Find(dir, tt.key)
		if ok != tt.ok {
			t.Errorf("[%s] expected ok=%v, got %v", tt.desc, tt.ok, ok)
			continue
		}
		if tt.ok && got != filepath.Join(dir, tt.want) {
			t.Errorf("[%s] expected %s, got %s", tt.desc, tt.want, got)
		}
	}

	// A key that is already a path wins outright.
	if got, ok := Find(dir, direct); !ok || got != direct {
		t.Errorf("exact path: expected %s, got %s (ok=%v)", direct, got, ok)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.png")
	img := imaging.New(100, 50, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if err := imaging.Save(img, small); err != nil {
		t.Fatal(err)
	}

	data, ext, w, h, err := Load(small)
	if err != nil {
		t.Fatal(err)
	}
	if ext != "png" || w != 100 || h != 50 {
		t.Errorf("expected png 100x50, got %s %dx%d", ext, w, h)
	}
	if len(data) == 0 {
		t.Error("expected image bytes")
	}

	// Oversized images come back downscaled to the embed cap.
	big := filepath.Join(dir, "big.png")
	if err := imaging.Save(imaging.New(2400, 1200, color.NRGBA{A: 255}), big); err != nil {
		t.Fatal(err)
	}
	_, ext, w, h, err = Load(big)
	if err != nil {
		t.Fatal(err)
	}
	if ext != "png" {
		t.Errorf("expected png, got %s", ext)
	}
	if w > maxPixelWidth || h > maxPixelHeight {
		t.Errorf("downscaled image still %dx%d", w, h)
	}

	if _, _, _, _, err := Load(filepath.Join(dir, "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
	notImage := filepath.Join(dir, "not-image.png")
	touch(t, notImage)
	if _, _, _, _, err := Load(notImage); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestPlaceholder(t *testing.T) {
	data, w, h, err := Placeholder("No screenshot found", 320, 200, "")
	if err != nil {
		t.Fatal(err)
	}
	if w != 320 || h != 200 {
		t.Errorf("expected 320x200, got %dx%d", w, h)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("expected png, got %s", format)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 200 {
		t.Errorf("decoded size %v", img.Bounds())
	}

	// A bogus font path falls back to the fixed face rather than failing.
	if _, _, _, err := Placeholder("caption", 100, 80, "/does/not/exist.ttf"); err != nil {
		t.Errorf("expected fallback, got %v", err)
	}
}
