package loader

import (
	"slices"
	"testing"

	"github.com/qmuntal/gltf"
)

func animatedDoc(samplers ...*gltf.AnimationSampler) *gltf.Document {
	return &gltf.Document{
		Accessors: []*gltf.Accessor{
			{Count: 2, Max: []float32{0.4}},
			{Count: 2, Max: []float32{1.6}},
			{Count: 2},
		},
		Nodes: []*gltf.Node{{Name: "Hips"}, {}},
		Animations: []*gltf.Animation{{
			Samplers: samplers,
			Channels: []*gltf.Channel{
				{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(0)}},
				{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(1)}},
				{Sampler: gltf.Index(0), Target: gltf.ChannelTarget{Node: gltf.Index(0)}},
			},
		}},
	}
}

func TestExtractClip(t *testing.T) {
	doc := animatedDoc(
		&gltf.AnimationSampler{Input: gltf.Index(0)},
		&gltf.AnimationSampler{Input: gltf.Index(1)},
		&gltf.AnimationSampler{Input: gltf.Index(2)},
	)

	clip, err := extractClip(doc, "Walk")
	if err != nil {
		t.Fatalf("extractClip: %v", err)
	}
	if clip.Name != "Walk" {
		t.Fatalf("name = %q, want fallback %q", clip.Name, "Walk")
	}
	if clip.Duration != 1.6 {
		t.Fatalf("duration = %v, want 1.6", clip.Duration)
	}
	if want := []string{"Hips", "node_1"}; !slices.Equal(clip.Targets, want) {
		t.Fatalf("targets = %v, want %v", clip.Targets, want)
	}
}

func TestExtractClipBadSamplerInput(t *testing.T) {
	tests := []struct {
		name  string
		input *uint32
	}{
		{name: "missing", input: nil},
		{name: "out of range", input: gltf.Index(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := animatedDoc(&gltf.AnimationSampler{Input: tt.input})
			if clip, err := extractClip(doc, "Walk"); err == nil {
				t.Fatalf("expected error, got clip %+v", clip)
			}
		})
	}
}
