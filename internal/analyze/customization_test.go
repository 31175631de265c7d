package analyze

import "testing"

func TestDefaultCustomization(t *testing.T) {
	c := DefaultCustomization()

	if c.SummaryLength != LengthMedium {
		t.Errorf("Expected default length medium, got %q", c.SummaryLength)
	}
	if c.OutputFormat != FormatPDF {
		t.Errorf("Expected default format pdf, got %q", c.OutputFormat)
	}
	if len(c.FocusAreas) != 2 || c.FocusAreas[0] != "key-findings" || c.FocusAreas[1] != "methodology" {
		t.Errorf("Expected default focus areas [key-findings methodology], got %v", c.FocusAreas)
	}
}

func TestToggleFocusArea(t *testing.T) {
	c := DefaultCustomization()

	// Adding a new area appends it in membership order.
	c.ToggleFocusArea("results")
	if !c.HasFocusArea("results") {
		t.Error("Expected 'results' to be added")
	}
	if c.FocusAreas[len(c.FocusAreas)-1] != "results" {
		t.Errorf("Expected 'results' appended last, got %v", c.FocusAreas)
	}

	// Toggling an existing area removes it.
	c.ToggleFocusArea("methodology")
	if c.HasFocusArea("methodology") {
		t.Error("Expected 'methodology' to be removed")
	}

	// Toggling twice restores membership.
	c.ToggleFocusArea("math")
	c.ToggleFocusArea("math")
	if c.HasFocusArea("math") {
		t.Error("Expected double toggle to remove 'math'")
	}
}
