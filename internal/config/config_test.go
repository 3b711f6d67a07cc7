package config

import "testing"

func TestDefaultAllowsBuiltinMappers(t *testing.T) {
	c := Default()
	for _, m := range []uint8{0, 1, 4} {
		if !c.AllowsMapper(m) {
			t.Errorf("Default() should allow mapper %d", m)
		}
	}
	if c.AllowsMapper(99) {
		t.Error("Default() should not allow mapper 99")
	}
}

func TestLoadFromFileRejectsUnknownFillStrategy(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.json"
	if err := (&Config{SupportedMappers: []uint8{0}, RAMFill: "garbage"}).SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected LoadFromFile to reject an unknown ram_fill strategy")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.json"

	original := &Config{SupportedMappers: []uint8{0, 4}, RAMFill: RAMFillFF}
	if err := original.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.RAMFill != RAMFillFF {
		t.Errorf("RAMFill = %q, want %q", loaded.RAMFill, RAMFillFF)
	}
	if loaded.AllowsMapper(1) {
		t.Error("loaded config should not allow mapper 1")
	}
}
