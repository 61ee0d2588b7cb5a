package menu_test

import (
	"testing"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

func strPtr(s string) *string { return &s }

func TestParseGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		field     *string
		wantGroup string
		wantOrder *string
	}{
		{name: "nil field is ungrouped", field: nil, wantGroup: "", wantOrder: nil},
		{name: "empty field is ungrouped", field: strPtr(""), wantGroup: "", wantOrder: nil},
		{name: "group only", field: strPtr("nav"), wantGroup: "nav", wantOrder: nil},
		{name: "group and order", field: strPtr("nav@10"), wantGroup: "nav", wantOrder: strPtr("10")},
		{name: "only first delimiter splits", field: strPtr("nav@a@b"), wantGroup: "nav", wantOrder: strPtr("a@b")},
		{name: "empty order is kept", field: strPtr("nav@"), wantGroup: "nav", wantOrder: strPtr("")},
		{name: "empty group with order", field: strPtr("@5"), wantGroup: "", wantOrder: strPtr("5")},
		{name: "order is not coerced", field: strPtr("1_modification@z9"), wantGroup: "1_modification", wantOrder: strPtr("z9")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			group, order := menu.ParseGroup(tt.field)
			if group != tt.wantGroup {
				t.Errorf("group = %q, want %q", group, tt.wantGroup)
			}
			switch {
			case tt.wantOrder == nil && order != nil:
				t.Errorf("order = %q, want nil", *order)
			case tt.wantOrder != nil && order == nil:
				t.Errorf("order = nil, want %q", *tt.wantOrder)
			case tt.wantOrder != nil && *order != *tt.wantOrder:
				t.Errorf("order = %q, want %q", *order, *tt.wantOrder)
			}
		})
	}
}
