package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
)

// stubController satisfies device.Controller for registry tests.
type stubController struct{}

func (stubController) Connect(context.Context) error { return nil }
func (stubController) Connected() bool { return true }
func (stubController) Poll() (device.State, error) { return device.State{}, nil }
func (stubController) SetLEDs(*core.PixelGrid) error { return nil }
func (stubController) EnableLEDControl(bool) error { return nil }
func (stubController) Close() error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-ok", "always works", func(Options) (device.Controller, error) {
		return stubController{}, nil
	})

	if !Exists("stub-ok") {
		t.Fatal("Exists() = false after Register")
	}

	ctrl, err := Create("stub-ok", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if ctrl == nil {
		t.Fatal("Create() returned nil controller")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-driver", Options{}); err == nil {
		t.Error("Create() should fail for unknown driver")
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("stub-fail", "always fails", func(Options) (device.Controller, error) {
		return nil, boom
	})

	_, err := Create("stub-fail", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "", func(Options) (device.Controller, error) { return stubController{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", "", func(Options) (device.Controller, error) { return stubController{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("stub-b", "", func(Options) (device.Controller, error) { return stubController{}, nil })
	Register("stub-a", "first", func(Options) (device.Controller, error) { return stubController{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	found := false
	for _, d := range list {
		if d.Name == "stub-a" {
			found = true
			if d.Description != "first" {
				t.Errorf("Description = %q, expected %q", d.Description, "first")
			}
		}
	}
	if !found {
		t.Error("stub-a missing from List()")
	}
}
