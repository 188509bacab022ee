package galaxy

import (
	"errors"
	"testing"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		query  string
		want   ViewMode
	}{
		{"default", "", "", ModeGalaxy},
		{"stored boxes", "boxes", "", ModeBoxes},
		{"stored 3d", "3d", "", ModeGalaxy},
		{"stored garbage", "vr", "", ModeGalaxy},
		{"boxes flag", "", "boxes=1", ModeBoxes},
		{"boxes flag zero", "boxes", "boxes=0", ModeBoxes},
		{"mode boxes overrides stored", "3d", "mode=boxes", ModeBoxes},
		{"mode 3d overrides stored", "boxes", "mode=3d", ModeGalaxy},
		{"mode 3d beats boxes flag", "", "?boxes=1&mode=3d", ModeGalaxy},
		{"unknown mode ignored", "boxes", "mode=flat", ModeBoxes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMode(tt.stored, ParseQuery(tt.query)); got != tt.want {
				t.Errorf("ResolveMode(%q, %q) = %s, want %s", tt.stored, tt.query, got, tt.want)
			}
		})
	}
}

func TestParseQuery_Malformed(t *testing.T) {
	if q := ParseQuery("%zz"); len(q) != 0 {
		t.Errorf("ParseQuery = %v, want empty", q)
	}
}

func TestPreferences_Persist(t *testing.T) {
	store := NewMemoryStore()
	p := NewPreferences(store, nil)
	if p.Mode() != ModeGalaxy || p.HasStored() {
		t.Fatalf("mode=%s stored=%v", p.Mode(), p.HasStored())
	}

	var changes []ViewMode
	p.Subscribe(func(m ViewMode) { changes = append(changes, m) })

	p.SetMode(ModeBoxes)
	p.SetMode(ModeBoxes)
	p.SetMode("vr")
	if p.Mode() != ModeBoxes || len(changes) != 1 {
		t.Errorf("mode=%s changes=%v", p.Mode(), changes)
	}
	if v, ok, _ := store.Get(PreferenceKey); !ok || v != "boxes" {
		t.Errorf("stored = %q, %v", v, ok)
	}
	if !p.HasStored() {
		t.Error("HasStored = false after SetMode")
	}

	reopened := NewPreferences(store, nil)
	if reopened.Mode() != ModeBoxes {
		t.Errorf("reopened mode = %s, want boxes", reopened.Mode())
	}
	if q := NewPreferences(store, ParseQuery("mode=3d")); q.Mode() != ModeGalaxy {
		t.Errorf("query override mode = %s", q.Mode())
	}
}

func TestPreferences_StoreUnavailable(t *testing.T) {
	store := &MemoryStore{Fail: true}
	p := NewPreferences(store, nil)
	if p.Mode() != ModeGalaxy {
		t.Errorf("mode = %s, want default", p.Mode())
	}
	if !errors.Is(p.LastError, ErrStoreUnavailable) {
		t.Errorf("LastError = %v", p.LastError)
	}

	var got ViewMode
	p.Subscribe(func(m ViewMode) { got = m })
	p.LastError = nil
	p.SetMode(ModeBoxes)

	if p.Mode() != ModeBoxes || got != ModeBoxes {
		t.Errorf("mode=%s notified=%s; the switch should succeed in memory", p.Mode(), got)
	}
	if !errors.Is(p.LastError, ErrStoreUnavailable) {
		t.Errorf("LastError = %v", p.LastError)
	}
	if p.HasStored() {
		t.Error("HasStored with a failing store")
	}
}

func TestPreferences_NilStore(t *testing.T) {
	p := NewPreferences(nil, ParseQuery("boxes=1"))
	if p.Mode() != ModeBoxes {
		t.Errorf("mode = %s", p.Mode())
	}
	p.SetMode(ModeGalaxy)
	if p.Mode() != ModeGalaxy || p.LastError != nil {
		t.Errorf("mode=%s err=%v", p.Mode(), p.LastError)
	}
}
