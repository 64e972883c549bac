package geobridge

import (
	"errors"
	"testing"
)

// The configuration table is process wide; these tests run sequentially in
// one file so they cannot race each other.

func TestSetGetConfigOption(t *testing.T) {
	if err := SetConfigOption("GDAL_CACHEMAX", "128"); err != nil {
		t.Fatalf("SetConfigOption: %v", err)
	}
	defer func() {
		if err := ClearConfigOption("GDAL_CACHEMAX"); err != nil {
			t.Errorf("ClearConfigOption: %v", err)
		}
	}()

	got, err := ConfigOption("GDAL_CACHEMAX", "")
	if err != nil {
		t.Fatalf("ConfigOption: %v", err)
	}
	if got != "128" {
		t.Errorf("expected 128, got %q", got)
	}
}

func TestConfigOptionDefault(t *testing.T) {
	got, err := ConfigOption("GEOBRIDGE_NONEXISTENT_OPTION", "DEFAULT_VALUE")
	if err != nil {
		t.Fatalf("ConfigOption: %v", err)
	}
	if got != "DEFAULT_VALUE" {
		t.Errorf("expected the default for a missing key, got %q", got)
	}
}

func TestClearConfigOption(t *testing.T) {
	if err := SetConfigOption("GEOBRIDGE_TEST_OPTION", "256"); err != nil {
		t.Fatalf("SetConfigOption: %v", err)
	}
	got, err := ConfigOption("GEOBRIDGE_TEST_OPTION", "DEFAULT")
	if err != nil {
		t.Fatalf("ConfigOption: %v", err)
	}
	if got != "256" {
		t.Errorf("expected 256, got %q", got)
	}

	if err := ClearConfigOption("GEOBRIDGE_TEST_OPTION"); err != nil {
		t.Fatalf("ClearConfigOption: %v", err)
	}
	got, err = ConfigOption("GEOBRIDGE_TEST_OPTION", "DEFAULT")
	if err != nil {
		t.Fatalf("ConfigOption: %v", err)
	}
	if got != "DEFAULT" {
		t.Errorf("expected the default after clearing, got %q", got)
	}
}

func TestConfigOptionEmbeddedNul(t *testing.T) {
	var enc *EncodingError
	if err := SetConfigOption("f\x00oo", "valid"); !errors.As(err, &enc) {
		t.Errorf("expected EncodingError for key, got %v", err)
	}
	if err := SetConfigOption("foo", "in\x00valid"); !errors.As(err, &enc) {
		t.Errorf("expected EncodingError for value, got %v", err)
	}
	if err := ClearConfigOption("f\x00oo"); !errors.As(err, &enc) {
		t.Errorf("expected EncodingError for clear, got %v", err)
	}
	if _, err := ConfigOption("f\x00oo", ""); !errors.As(err, &enc) {
		t.Errorf("expected EncodingError for get, got %v", err)
	}
}
