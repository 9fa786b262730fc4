package domain

import (
	"strings"
	"testing"
)

func TestBuildPrompt_SubstitutesOnce(t *testing.T) {
	for _, s := range []Style{StyleExterior, StyleInterior} {
		got := s.BuildPrompt("use blue tones")
		if n := strings.Count(got, "use blue tones"); n != 1 {
			t.Errorf("%s: preferences occur %d times, want 1", s, n)
		}
		if strings.Contains(got, PreferencesPlaceholder) {
			t.Errorf("%s: placeholder left in %q", s, got)
		}
	}
}

func TestBuildPrompt_Exterior(t *testing.T) {
	want := "You are an intelligent AI home painter. use blue tones .Make sure to maintain the architectural integrity while creating a professional and aesthetically pleasing result."
	if got := StyleExterior.BuildPrompt("use blue tones"); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestBuildPrompt_NoEscaping(t *testing.T) {
	got := StyleInterior.BuildPrompt(`{preferences} "quoted" <b>`)
	if !strings.HasPrefix(got, `You are an expert AI interior designer. {preferences} "quoted" <b> .Ensure`) {
		t.Errorf("unexpected prompt %q", got)
	}
}

func TestBuildPrompt_NatureIgnoresPreferences(t *testing.T) {
	if got := StyleNatureInspired.BuildPrompt("ignored"); got != NatureInspiredPrompt {
		t.Errorf("nature prompt changed: %q", got)
	}
}

func TestStyle_Routes(t *testing.T) {
	tests := []struct {
		style    Style
		requires bool
		message  string
		missing  string
	}{
		{StyleExterior, true, "Error processing exterior design request", "image_url and preferences are required"},
		{StyleInterior, true, "Error processing interior design request", "image_url and preferences are required"},
		{StyleNatureInspired, false, "Error processing nature-inspired architectural visualization request", "image_url is required"},
	}
	for _, tt := range tests {
		if got := tt.style.RequiresPreferences(); got != tt.requires {
			t.Errorf("%s.RequiresPreferences() = %v", tt.style, got)
		}
		if got := tt.style.FailureMessage(); got != tt.message {
			t.Errorf("%s.FailureMessage() = %q", tt.style, got)
		}
		if got := tt.style.MissingFieldsMessage(); got != tt.missing {
			t.Errorf("%s.MissingFieldsMessage() = %q", tt.style, got)
		}
	}
}
