package loader

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"github.com/chewxy/math32"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadClip(t *testing.T) {
	tests := []struct {
		file     string
		name     string
		duration float32
	}{
		{file: "Walk.gltf", name: "Walk", duration: 1.2},
		{file: "Run.gltf", name: "Run", duration: 0.8},
		{file: "Idle.gltf", name: "Idle", duration: 2.5},
	}

	l := NewLoader(BackendTypeGLTF)
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			clip, err := l.LoadClip(fixture(tt.file))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if clip.Name != tt.name {
				t.Fatalf("name = %q, want %q", clip.Name, tt.name)
			}
			if math32.Abs(clip.Duration-tt.duration) > 1e-5 {
				t.Fatalf("duration = %v, want %v", clip.Duration, tt.duration)
			}
			want := []string{"mixamorig:Hips", "mixamorig:Spine"}
			if !slices.Equal(clip.Targets, want) {
				t.Fatalf("targets = %v, want %v", clip.Targets, want)
			}
		})
	}
}

func TestLoadClipErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{file: "Paladin.gltf", want: ErrNoAnimation},
		{file: "Walk.fbx", want: ErrUnsupportedFormat},
		{file: "Broken.gltf"},
		{file: "Missing.glb"},
	}

	l := NewLoader(BackendTypeGLTF)
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			clip, err := l.LoadClip(fixture(tt.file))
			if err == nil {
				t.Fatalf("expected error, got clip %+v", clip)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if got := len(l.Clips()); got != 0 {
		t.Fatalf("failed loads should not be cached, cache has %d", got)
	}
}

func TestLoadClipCaches(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)
	path := fixture("Walk.gltf")

	var wg sync.WaitGroup
	clips := make([]*animation.Clip, 8)
	for i := range clips {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := l.LoadClip(path)
			if err != nil {
				t.Errorf("load: %v", err)
				return
			}
			clips[i] = c
		}()
	}
	wg.Wait()

	for i, c := range clips {
		if c == nil || c != clips[0] {
			t.Fatalf("clip %d is not the shared cached clip", i)
		}
	}
	if l.Clip(path) != clips[0] {
		t.Fatalf("Clip(%q) did not return the cached clip", path)
	}
}

func TestLoadClipReader(t *testing.T) {
	f, err := os.Open(fixture("Walk.gltf"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	l := NewLoader(BackendTypeGLTF)
	clip, err := l.LoadClipReader("Stroll", f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if clip.Name != "Stroll" {
		t.Fatalf("unnamed animation should take the reader name, got %q", clip.Name)
	}
	if l.Clip("Stroll") != clip {
		t.Fatalf("reader clip not cached by name")
	}
}

func TestLoadSkeleton(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	skel, err := l.LoadSkeleton(fixture("Paladin.gltf"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if skel.Name != "Paladin" || len(skel.Joints) != 4 {
		t.Fatalf("unexpected skeleton %q with %d joints", skel.Name, len(skel.Joints))
	}
	if got := skel.JointIndex("mixamorig:Head"); got != 2 {
		t.Fatalf("JointIndex(Head) = %d, want 2", got)
	}

	again, err := l.LoadSkeleton(fixture("Paladin.gltf"))
	if err != nil || again != skel {
		t.Fatalf("second load should hit the cache")
	}

	if _, err := l.LoadSkeleton(fixture("Walk.gltf")); !errors.Is(err, ErrNoSkeleton) {
		t.Fatalf("err = %v, want ErrNoSkeleton", err)
	}
}

func TestClipBindsToSkeleton(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)
	skel, err := l.LoadSkeleton(fixture("Paladin.gltf"))
	if err != nil {
		t.Fatalf("skeleton: %v", err)
	}

	walk, err := l.LoadClip(fixture("Walk.gltf"))
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if n, err := skel.Bind(walk); err != nil || n != 2 {
		t.Fatalf("Bind(walk) = %d, %v; want 2, nil", n, err)
	}

	stray, err := l.LoadClip(fixture("Stray.gltf"))
	if err != nil {
		t.Fatalf("stray: %v", err)
	}
	if _, err := skel.Bind(stray); !errors.Is(err, animation.ErrClipMismatch) {
		t.Fatalf("err = %v, want ErrClipMismatch", err)
	}
}

func TestLoaderOptions(t *testing.T) {
	clip := &animation.Clip{Name: "Preloaded", Duration: 1}
	skel := animation.NewSkeleton("Rig", []string{"root"})
	l := NewLoader(BackendTypeGLTF, WithClip("a.glb", clip), WithSkeleton("rig.glb", skel))

	if got, err := l.LoadClip("a.glb"); err != nil || got != clip {
		t.Fatalf("preloaded clip not returned: %v", err)
	}
	if got, err := l.LoadSkeleton("rig.glb"); err != nil || got != skel {
		t.Fatalf("preloaded skeleton not returned: %v", err)
	}
}
