package ui

import "testing"

func TestConfirmNonInteractiveReturnsDefault(t *testing.T) {
	tests := []struct {
		name       string
		defaultYes bool
	}{
		{"default yes", true},
		{"default no", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Confirm("Proceed?", tt.defaultYes, false)
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.defaultYes {
				t.Errorf("Confirm = %v, want the %v default", got, tt.defaultYes)
			}
		})
	}
}

func TestSelectNonInteractiveReturnsFirstOption(t *testing.T) {
	got, err := Select("Framework?", []string{"laravel", "symfony"}, false)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != "laravel" {
		t.Errorf("Select = %q, want first option", got)
	}
}

func TestSelectNoOptions(t *testing.T) {
	if _, err := Select("Framework?", nil, false); err == nil {
		t.Error("expected error for empty option list")
	}
}

func TestInputNonInteractiveReturnsPlaceholder(t *testing.T) {
	got, err := Input("Name", "app", false)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "app" {
		t.Errorf("Input = %q, want placeholder", got)
	}
}
