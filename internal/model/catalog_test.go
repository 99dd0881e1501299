package model

import "testing"

func TestCatalog_AllFirst(t *testing.T) {
	if Countries()[0].Name != AllOption {
		t.Errorf("Expected first country to be %q, got %q", AllOption, Countries()[0].Name)
	}
	if Categories()[0].Name != AllOption {
		t.Errorf("Expected first category to be %q, got %q", AllOption, Categories()[0].Name)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Countries()
	c[1].Name = "Atlantis"

	if Countries()[1].Name == "Atlantis" {
		t.Error("Mutating Countries() result should not affect the catalog")
	}
}

func TestFlagFor(t *testing.T) {
	tests := []struct {
		area     string
		expected string
	}{
		{"Italian", "🇮🇹"},
		{"Unknown", "❓"},
		{"Martian", DefaultFlag},
	}

	for _, test := range tests {
		result := FlagFor(test.area)
		if result != test.expected {
			t.Errorf("FlagFor(%q) = %s, expected %s", test.area, result, test.expected)
		}
	}
}

func TestIconFor(t *testing.T) {
	if IconFor("Seafood") != "🐟" {
		t.Errorf("Expected seafood icon, got %s", IconFor("Seafood"))
	}
	if IconFor("Goat") != DefaultCategoryIcon {
		t.Errorf("Expected default icon for unknown category, got %s", IconFor("Goat"))
	}
}

func TestCatalogNames(t *testing.T) {
	names := CatalogNames([]CatalogEntry{{"All", "x"}, {"Beef", "y"}})
	if len(names) != 2 || names[0] != "All" || names[1] != "Beef" {
		t.Errorf("CatalogNames() = %v, expected [All Beef]", names)
	}
}
