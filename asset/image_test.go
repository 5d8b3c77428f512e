package asset

import "testing"

// TestImageTableComplete verifies every image has a unique name and a drawable size
func TestImageTableComplete(t *testing.T) {
	seen := make(map[string]Image)
	for i := Image(1); i < ImageCount; i++ {
		spec := Images[i]
		if spec.Name == "" {
			t.Errorf("image %d has no name", i)
			continue
		}
		if prev, dup := seen[spec.Name]; dup {
			t.Errorf("images %d and %d share name %q", prev, i, spec.Name)
		}
		seen[spec.Name] = i
		if spec.Width <= 0 || spec.Height <= 0 {
			t.Errorf("image %q has no size", spec.Name)
		}
	}
}

// TestImageByName verifies name lookup and the unknown-name error
func TestImageByName(t *testing.T) {
	img, err := ImageByName("rock_bullet")
	if err != nil || img != ImageRockBullet {
		t.Errorf("ImageByName(rock_bullet) = %v, %v", img, err)
	}
	if _, err := ImageByName("dragon"); err == nil {
		t.Error("Expected error for unknown image")
	}
}
