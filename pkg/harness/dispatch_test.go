package harness

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestSuggestOperation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"close typo", "clik", "click"},
		{"transposition", "ifll", "fill"},
		{"underscore slip", "selectoption", "select_option"},
		{"probe typo", "is_visble", "is_visible"},
		{"exact name", "hover", "hover"},
		{"nothing close", "launch_missiles", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestOperation(tt.in); got != tt.want {
				t.Errorf("SuggestOperation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCallUnknownOperationFailsWithoutEngineRoundTrip(t *testing.T) {
	locator := &fakeLocator{}
	el := testElement("#submit", locator, nil, t.TempDir())

	_, err := el.Call("clik")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("error kind = %v, want ErrUnknownOperation", err)
	}
	if !strings.Contains(err.Error(), `Did you mean "click"?`) {
		t.Errorf("error = %q, want click suggestion", err)
	}
	if locator.calls != 0 {
		t.Errorf("engine round-trips = %d, want 0", locator.calls)
	}
}

func TestCallUnknownOperationWithoutCloseMatch(t *testing.T) {
	locator := &fakeLocator{}
	el := testElement("#submit", locator, nil, t.TempDir())

	_, err := el.Call("teleport_to_dashboard")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("error kind = %v, want ErrUnknownOperation", err)
	}
	if !strings.Contains(err.Error(), "No similar method found") {
		t.Errorf("error = %q, want no-match message", err)
	}
	if locator.calls != 0 {
		t.Errorf("engine round-trips = %d, want 0", locator.calls)
	}
}

func TestCallDispatchesKnownOperations(t *testing.T) {
	locator := &fakeLocator{text: "Welcome", attr: "nav-link", state: true}
	el := testElement("#menu", locator, nil, t.TempDir())

	tests := []struct {
		name string
		args []string
		want any
	}{
		{"click", nil, nil},
		{"fill", []string{"Admin"}, nil},
		{"press", []string{"Enter"}, nil},
		{"get_text", nil, "Welcome"},
		{"get_attribute", []string{"class"}, "nav-link"},
		{"is_visible", nil, true},
		{"wait_for", []string{"visible"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := el.Call(tt.name, tt.args...)
			if err != nil {
				t.Fatalf("Call(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Call(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCallAndSuggestionsShareOneRegistry(t *testing.T) {
	for _, name := range operationNames {
		t.Run(name, func(t *testing.T) {
			locator := &fakeLocator{state: true}
			el := testElement("#menu", locator, nil, t.TempDir())

			// Every suggestible name must dispatch; a name that suggests
			// itself but falls through to the unknown-operation branch
			// means the candidate set and the dispatch set have diverged.
			if got := SuggestOperation(name); got != name {
				t.Fatalf("SuggestOperation(%q) = %q, want identity", name, got)
			}
			arg := filepath.Join(t.TempDir(), "arg")
			if _, err := el.Call(name, arg); errors.Is(err, ErrUnknownOperation) {
				t.Errorf("Call(%q) = %v, want dispatch", name, err)
			}
		})
	}
}

func TestCallMissingArgument(t *testing.T) {
	locator := &fakeLocator{}
	el := testElement("#input", locator, nil, t.TempDir())

	_, err := el.Call("fill")
	if err == nil {
		t.Fatal("Call(fill) with no value succeeded")
	}
	if locator.calls != 0 {
		t.Errorf("engine round-trips = %d, want 0", locator.calls)
	}
}
