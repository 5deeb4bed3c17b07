package store

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) (*Prefs, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return p, path
}

func TestPrefs_GetMissing(t *testing.T) {
	p, _ := openTemp(t)
	defer p.Close()

	v, ok, err := p.Get("summerCityRate")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Get on empty store = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestPrefs_SetManyPersistsAcrossReopen(t *testing.T) {
	p, path := openTemp(t)

	if err := p.SetMany(map[string]string{
		"summerCityRate": "12.1",
		"winterCityRate": "14",
	}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	if err := p.SetMany(map[string]string{"summerCityRate": "12.3"}); err != nil {
		t.Fatalf("SetMany overwrite: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p.Close()

	v, ok, err := p.Get("summerCityRate")
	if err != nil || !ok || v != "12.3" {
		t.Fatalf("Get(summerCityRate) = (%q, %v, %v), want (12.3, true, nil)", v, ok, err)
	}

	all, err := p.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 || all["winterCityRate"] != "14" {
		t.Fatalf("All = %v", all)
	}
}

func TestPrefs_Delete(t *testing.T) {
	p, _ := openTemp(t)
	defer p.Close()

	if err := p.SetMany(map[string]string{"a": "1", "b": "2"}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	if err := p.Delete("a", "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok, _ := p.Get("a"); ok {
		t.Error("key a still present after Delete")
	}
	if v, ok, _ := p.Get("b"); !ok || v != "2" {
		t.Errorf("key b = (%q, %v), want (2, true)", v, ok)
	}
}

func TestPrefs_AllRoundTrip(t *testing.T) {
	p, _ := openTemp(t)
	defer p.Close()

	all, err := p.All()
	if err != nil {
		t.Fatalf("All on empty store: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("All on empty store = %v, want empty", all)
	}

	want := map[string]string{
		"summerCityRate":    "12.35",
		"summerHighwayRate": "8.5",
		"winterCityRate":    "13.8",
		"winterHighwayRate": "10.2",
	}
	if err := p.SetMany(want); err != nil {
		t.Fatalf("SetMany: %v", err)
	}
	all, err = p.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != len(want) {
		t.Fatalf("All = %v, want %v", all, want)
	}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("All()[%s] = %q, want %q", k, all[k], v)
		}
	}

	if err := p.Delete("summerCityRate"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	all, err = p.All()
	if err != nil {
		t.Fatalf("All after Delete: %v", err)
	}
	if _, ok := all["summerCityRate"]; ok || len(all) != 3 {
		t.Errorf("All after Delete = %v", all)
	}
}
