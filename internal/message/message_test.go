package message

import "testing"

func TestName_Valid(t *testing.T) {
	tests := []struct {
		name  Name
		valid bool
	}{
		{"", false},
		{"ping", true},
		{"mounted", true},
		{"a b c", true}, // names are opaque, spaces allowed
	}

	for _, tt := range tests {
		if got := tt.name.Valid(); got != tt.valid {
			t.Errorf("Name(%q).Valid() = %v, expected %v", tt.name, got, tt.valid)
		}
	}
}

func TestName_String(t *testing.T) {
	if Name("ping").String() != "ping" {
		t.Errorf("expected ping, got %s", Name("ping").String())
	}
}

func TestLifecycleNames(t *testing.T) {
	for _, n := range []Name{Mounted, Updated, Unmounted} {
		if !n.Valid() {
			t.Errorf("lifecycle name %q should be valid", n)
		}
	}
}
