package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-martians/internal/core"
)

type stubBackend struct{ title string }

func (b stubBackend) Title() string { return b.title }

func (b stubBackend) Run(context.Context, Game, core.RuntimeConfig) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Backend { return stubBackend{title: "Stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered backend not found")
	}
	b, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.Title() != "Stub" {
		t.Errorf("Title = %q, expected %q", b.Title(), "Stub")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List does not include the stub with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-backend"); err == nil {
		t.Error("expected error for unknown backend")
	}
	if Exists("no-such-backend") {
		t.Error("Exists reported an unregistered backend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Backend { return stubBackend{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz-dup", func() Backend { return stubBackend{} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Backend { return stubBackend{} })
	Register("zz-a", func() Backend { return stubBackend{} })
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
