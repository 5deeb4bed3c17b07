package profile

import (
	"errors"
	"testing"

	"github.com/benzenergy/benzconfig/internal/model"
)

type mapStore struct {
	values  map[string]string
	getErr  error
	saveErr error
	saves   int
}

func newMapStore(values map[string]string) *mapStore {
	if values == nil {
		values = map[string]string{}
	}
	return &mapStore{values: values}
}

func (m *mapStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStore) SetMany(values map[string]string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func assertDefaults(t *testing.T, s *Set) {
	t.Helper()
	for _, season := range model.Seasons {
		if got, want := s.Profile(season), model.DefaultProfile(season); got != want {
			t.Errorf("%s profile = %+v, want %+v", season, got, want)
		}
	}
}

func TestLoad_EmptyStoreYieldsDefaults(t *testing.T) {
	s, err := Load(newMapStore(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertDefaults(t, s)

	summer := s.Profile(model.Summer)
	if summer.CityRate != 11.5 || summer.HighwayRate != 8.5 {
		t.Errorf("summer rates = %v/%v, want 11.5/8.5", summer.CityRate, summer.HighwayRate)
	}
	winter := s.Profile(model.Winter)
	if winter.CityRate != 13.8 || winter.HighwayRate != 10.2 {
		t.Errorf("winter rates = %v/%v, want 13.8/10.2", winter.CityRate, winter.HighwayRate)
	}
}

func TestLoad_CorruptValuesYieldDefaults(t *testing.T) {
	s, err := Load(newMapStore(map[string]string{
		KeySummerCityRate:    "garbage",
		KeySummerHighwayRate: "",
		KeyWinterCityRate:    "-3",
		KeyWinterHighwayRate: "NaNx",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertDefaults(t, s)
}

func TestLoad_StoredRatesOverrideDefaults(t *testing.T) {
	s, err := Load(newMapStore(map[string]string{
		KeySummerCityRate:    "12",
		KeyWinterHighwayRate: "9.75",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	summer := s.Profile(model.Summer)
	if summer.CityRate != 12 || summer.HighwayRate != 8.5 {
		t.Errorf("summer rates = %v/%v, want 12/8.5", summer.CityRate, summer.HighwayRate)
	}
	winter := s.Profile(model.Winter)
	if winter.CityRate != 13.8 || winter.HighwayRate != 9.75 {
		t.Errorf("winter rates = %v/%v, want 13.8/9.75", winter.CityRate, winter.HighwayRate)
	}
	if summer.CityProportion != model.DefaultCityProportion {
		t.Errorf("proportions must start from defaults, got %v", summer.CityProportion)
	}
}

func TestLoad_StoreFailure(t *testing.T) {
	ms := newMapStore(nil)
	ms.getErr = errors.New("disk on fire")

	s, err := Load(ms)
	if err == nil {
		t.Fatal("Load should report store failure")
	}
	assertDefaults(t, s)
}

func TestCommit_PersistsRatesNotProportions(t *testing.T) {
	ms := newMapStore(nil)
	s, err := Load(ms)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := model.DrivingProfile{CityProportion: 0.5, HighwayProportion: 0.5, CityRate: 14.2, HighwayRate: 9}
	if err := s.Commit(model.Winter, p); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := s.Profile(model.Winter); got != p {
		t.Errorf("Profile(winter) = %+v, want %+v", got, p)
	}

	if ms.values[KeyWinterCityRate] != "14.2" || ms.values[KeyWinterHighwayRate] != "9" {
		t.Errorf("persisted winter = %q/%q", ms.values[KeyWinterCityRate], ms.values[KeyWinterHighwayRate])
	}
	if ms.values[KeySummerCityRate] != "11.5" {
		t.Errorf("summer city rate persisted as %q, want 11.5", ms.values[KeySummerCityRate])
	}

	// A new process sees the rates but default proportions.
	reloaded, err := Load(ms)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Profile(model.Winter)
	if got.CityRate != 14.2 || got.HighwayRate != 9 {
		t.Errorf("reloaded rates = %v/%v", got.CityRate, got.HighwayRate)
	}
	if got.CityProportion != model.DefaultCityProportion || got.HighwayProportion != model.DefaultHighwayProportion {
		t.Errorf("reloaded proportions = %v/%v, want defaults", got.CityProportion, got.HighwayProportion)
	}
}

func TestCommit_SaveFailureKeepsMemory(t *testing.T) {
	ms := newMapStore(nil)
	s, _ := Load(ms)
	ms.saveErr = errors.New("read-only")

	p := model.DrivingProfile{CityProportion: 0.4, HighwayProportion: 0.6, CityRate: 10, HighwayRate: 7}
	if err := s.Commit(model.Summer, p); err == nil {
		t.Fatal("Commit should surface the save error")
	}
	if s.Profile(model.Summer) != p {
		t.Error("in-memory profile should still be updated")
	}
}

func TestReset(t *testing.T) {
	ms := newMapStore(map[string]string{KeySummerCityRate: "20"})
	s, _ := Load(ms)
	s.SetProportions(model.Summer, 0.6, 0.4)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	summer := s.Profile(model.Summer)
	if summer.CityRate != 11.5 {
		t.Errorf("CityRate after reset = %v, want 11.5", summer.CityRate)
	}
	if summer.CityProportion != 0.6 {
		t.Errorf("Reset must not touch proportions, got %v", summer.CityProportion)
	}
	if ms.values[KeySummerCityRate] != "11.5" {
		t.Errorf("persisted after reset = %q", ms.values[KeySummerCityRate])
	}
}

func TestDefaults_NotPersistent(t *testing.T) {
	s := Defaults()
	if s.Persistent() {
		t.Fatal("Defaults() should not be persistent")
	}
	if err := s.Commit(model.Summer, model.DefaultProfile(model.Summer)); err != nil {
		t.Fatalf("Commit without store: %v", err)
	}
}
