package animation

import (
	"errors"
	"testing"
)

func TestActionFadeOutStopsWhenSettled(t *testing.T) {
	a := NewAction(&Clip{Name: "Wave", Duration: 3})
	a.Play()
	a.SetEffectiveWeight(0.8)
	a.FadeOut(0.4)

	a.Update(0.2)
	if !near(a.Weight(), 0.4) {
		t.Fatalf("expected half-faded weight 0.4, got %f", a.Weight())
	}
	if !a.IsPlaying() || !a.IsFading() {
		t.Fatalf("action should still play while fading")
	}

	a.Update(0.2)
	if a.Weight() != 0 || a.IsPlaying() || a.IsFading() {
		t.Fatalf("expected stopped action, weight=%f playing=%v", a.Weight(), a.IsPlaying())
	}
}

func TestActionFadeIgnoresTimeScale(t *testing.T) {
	a := NewAction(&Clip{Name: "Run", Duration: 10}, WithTimeScale(2))
	a.Play()
	a.FadeIn(1)
	a.Update(0.5)

	if !near(a.Time(), 1) {
		t.Fatalf("expected scaled time 1, got %f", a.Time())
	}
	if !near(a.Weight(), 0.5) {
		t.Fatalf("fade should use unscaled time, got weight %f", a.Weight())
	}
}

func TestActionWithoutLoopClampsAtEnd(t *testing.T) {
	a := NewAction(&Clip{Name: "Once", Duration: 1}, WithLoop(false))
	a.Play()
	a.Update(5)
	if a.Time() != 1 {
		t.Fatalf("expected clamped time 1, got %f", a.Time())
	}
}

func TestActionPausedDoesNotAdvance(t *testing.T) {
	a := NewAction(&Clip{Name: "Idle", Duration: 1})
	a.FadeIn(1)
	a.Update(0.5)
	if a.Time() != 0 || a.Weight() != 0 {
		t.Fatalf("stopped action should not advance, time=%f weight=%f", a.Time(), a.Weight())
	}
}

func TestActionSetEffectiveWeightClamps(t *testing.T) {
	a := NewAction(&Clip{Name: "Idle"})
	a.SetEffectiveWeight(4)
	if a.Weight() != 1 {
		t.Fatalf("expected clamp to 1, got %f", a.Weight())
	}
	a.SetEffectiveWeight(-1)
	if a.Weight() != 0 {
		t.Fatalf("expected clamp to 0, got %f", a.Weight())
	}
}

func TestNewActionPanicsOnNilClip(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewAction(nil)
}

func TestNewClipAction(t *testing.T) {
	skel := NewSkeleton("Paladin", []string{"mixamorig:Hips", "mixamorig:Spine"})

	cases := []struct {
		name    string
		targets []string
		wantErr error
	}{
		{"all_bound", []string{"mixamorig:Hips", "mixamorig:Spine"}, nil},
		{"partly_bound", []string{"mixamorig:Hips", "Prop"}, nil},
		{"no_targets", nil, nil},
		{"unbound", []string{"Armature|Bone"}, ErrClipMismatch},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clip := &Clip{Name: "mixamo.com", Targets: c.targets}
			a, err := NewClipAction("Taunt", clip, skel)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Name() != "Taunt" || a.Skeleton() != skel || a.Clip() != clip {
				t.Fatalf("action not bound as requested")
			}
		})
	}
}

func TestSkeletonJointIndex(t *testing.T) {
	skel := NewSkeleton("Paladin", []string{"Hips", "Spine", "Hips"})
	if skel.JointIndex("Hips") != 0 || skel.JointIndex("Spine") != 1 {
		t.Fatalf("unexpected joint indices")
	}
	if skel.JointIndex("Head") != -1 {
		t.Fatalf("missing joint should return -1")
	}
	var nilSkel *Skeleton
	if nilSkel.JointIndex("Hips") != -1 {
		t.Fatalf("nil skeleton should return -1")
	}
}
