package verify

import "testing"

// TestPropertiesHold runs every property check serially. The checks are the
// contract of the core, so all of them must pass.
func TestPropertiesHold(t *testing.T) {
	for _, p := range Properties() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			if f := p.Check(); f != nil {
				t.Errorf("%s", f.Detail)
			}
		})
	}
}

func TestRunParallel(t *testing.T) {
	failures := Run(Config{NumWorkers: 4})
	if len(failures) != 0 {
		for _, f := range failures {
			t.Errorf("%s", f)
		}
	}
}

func TestRunDefaultsWorkers(t *testing.T) {
	if failures := Run(Config{}); len(failures) != 0 {
		t.Errorf("%d failures with default worker count", len(failures))
	}
}

func TestPropertyNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Properties() {
		if seen[p.Name] {
			t.Errorf("duplicate property name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Check == nil {
			t.Errorf("property %q has no check", p.Name)
		}
	}
}
