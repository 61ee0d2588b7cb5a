package menu_test

import (
	"testing"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

func TestPath_ChildDoesNotAlias(t *testing.T) {
	t.Parallel()

	parent := make(menu.Path, 1, 4)
	parent[0] = "editor_context_menu"

	a := parent.Child("a")
	b := parent.Child("b")

	if a.String() != "editor_context_menu/a" {
		t.Errorf("a = %q, want %q", a, "editor_context_menu/a")
	}
	if b.String() != "editor_context_menu/b" {
		t.Errorf("b = %q, want %q", b, "editor_context_menu/b")
	}
	if len(parent) != 1 {
		t.Errorf("len(parent) = %d, want 1", len(parent))
	}
}

func TestPath_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	p := menu.Path{"view-item-context-menu", "inline"}
	if got := menu.ParsePath(p.String()); !got.Equal(p) {
		t.Errorf("ParsePath(%q) = %v, want %v", p.String(), got, p)
	}
	if got := menu.ParsePath(""); len(got) != 0 {
		t.Errorf("ParsePath(\"\") = %v, want empty", got)
	}
}

func TestPath_SeparatorInsideSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path menu.Path
		text string
	}{
		{name: "slash in group", path: menu.Path{"editor_context_menu", "a/b"}, text: "editor_context_menu/a%2Fb"},
		{name: "literal percent", path: menu.Path{"m", "50%"}, text: "m/50%25"},
		{name: "escaped-looking group", path: menu.Path{"m", "x%2Fy"}, text: "m/x%252Fy"},
		{name: "empty group", path: menu.Path{"m", ""}, text: "m/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.path.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
			if got := menu.ParsePath(tt.text); !got.Equal(tt.path) {
				t.Errorf("ParsePath(%q) = %q, want %q", tt.text, got, tt.path)
			}
		})
	}
}

func TestPath_Equal(t *testing.T) {
	t.Parallel()

	if (menu.Path{"a"}).Equal(menu.Path{"a", "b"}) {
		t.Error("paths of different length reported equal")
	}
	if (menu.Path{"a", "b"}).Equal(menu.Path{"a", "c"}) {
		t.Error("paths with different segments reported equal")
	}
	if !(menu.Path{}).Equal(nil) {
		t.Error("empty and nil paths should be equal")
	}
}
