package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/colormix/internal/color"
)

type fakeMode struct {
	id string
}

func (f fakeMode) ID() string { return f.id }
func (f fakeMode) Title() string { return "Fake " + f.id }
func (f fakeMode) Description() string { return "test mode" }
func (f fakeMode) MixMode() color.MixMode { return color.Additive }
func (f fakeMode) CuratedCount() int { return 2 }

func TestRegisterAndLookup(t *testing.T) {
	Register(fakeMode{id: "zz_test_b"})
	Register(fakeMode{id: "zz_test_a"})

	if !Exists("zz_test_a") {
		t.Fatal("Exists(zz_test_a) = false")
	}

	m, err := Lookup("zz_test_b")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if m.ID() != "zz_test_b" {
		t.Errorf("Lookup returned %q", m.ID())
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_test_a" || info.ID == "zz_test_b" {
			ids = append(ids, info.ID)
			if info.Curated != 2 || info.MixMode != color.Additive || info.Title != "Fake "+info.ID {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_test_a" || ids[1] != "zz_test_b" {
		t.Errorf("List() order = %v, want sorted", ids)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nonexistent_type")
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Lookup() error = %v, want ErrUnknownType", err)
	}
	if Exists("nonexistent_type") {
		t.Error("Exists(nonexistent_type) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(fakeMode{id: "zz_test_dup"})

	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register(fakeMode{id: "zz_test_dup"})
}
