package registry

import (
	"testing"

	"github.com/playform/playform/internal/runtime"
)

type fakeDef struct {
	name  string
	title string
}

func (d *fakeDef) Name() string  { return d.name }
func (d *fakeDef) Title() string { return d.title }
func (d *fakeDef) Init(api *runtime.API, start runtime.LoopStarter) (runtime.StopFunc, error) {
	return nil, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_alpha", func() runtime.Definition {
		return &fakeDef{name: "test_alpha", title: "Alpha"}
	})

	if !Exists("test_alpha") {
		t.Error("Exists(test_alpha) = false after Register")
	}

	def, err := Create("test_alpha")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if def.Name() != "test_alpha" {
		t.Errorf("created definition Name() = %q", def.Name())
	}

	// Each Create returns a fresh instance
	def2, _ := Create("test_alpha")
	if def == def2 {
		t.Error("Create returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create(no_such_game) should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists(no_such_game) = true")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("test_dup", func() runtime.Definition {
		return &fakeDef{name: "test_dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", func() runtime.Definition {
		return &fakeDef{name: "test_dup", title: "Dup"}
	})
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test_zz", func() runtime.Definition {
		return &fakeDef{name: "test_zz", title: "Zed"}
	})
	Register("test_aa", func() runtime.Definition {
		return &fakeDef{name: "test_aa", title: "Ay"}
	})

	infos := List()
	prev := ""
	foundAA := false
	for _, info := range infos {
		if info.Name < prev {
			t.Fatalf("List() not sorted: %q after %q", info.Name, prev)
		}
		prev = info.Name
		if info.Name == "test_aa" {
			foundAA = true
			if info.Title != "Ay" {
				t.Errorf("Title = %q, expected Ay", info.Title)
			}
		}
	}
	if !foundAA {
		t.Error("List() missing registered definition")
	}
}
