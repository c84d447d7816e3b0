package contentgen

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    GeneratedContent
		wantErr bool
	}{
		{
			name: "plain object",
			raw:  `{"title":"T","description":"D","script":"S","hashtags":["#a","#b"]}`,
			want: GeneratedContent{Title: "T", Description: "D", Script: "S", Hashtags: []string{"#a", "#b"}},
		},
		{
			name: "fenced with prose",
			raw:  "Here you go:\n```json\n{\"title\":\"T\",\"script\":\"S\"}\n```\nEnjoy!",
			want: GeneratedContent{Title: "T", Script: "S", Hashtags: []string{}},
		},
		{
			name: "missing title uses topic",
			raw:  `{"description":"D"}`,
			want: GeneratedContent{Title: "Topic", Description: "D", Hashtags: []string{}},
		},
		{
			name: "hashtags as string",
			raw:  `{"title":"T","hashtags":"#one #two,#three"}`,
			want: GeneratedContent{Title: "T", Hashtags: []string{"#one", "#two", "#three"}},
		},
		{
			name: "nested braces",
			raw:  `{"title":"T","script":"use {curly} braces"}`,
			want: GeneratedContent{Title: "T", Script: "use {curly} braces", Hashtags: []string{}},
		},
		{name: "no json", raw: "nothing here", wantErr: true},
		{name: "malformed", raw: `{"title": "T",}`, wantErr: true},
		{name: "trailing brace only", raw: "}{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractContent(tt.raw, "Topic")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractContentNoJSONSentinel(t *testing.T) {
	_, err := ExtractContent("plain words", "x")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	req := ContentRequest{Niche: "Fitness", Style: "tutorial", Platform: "tiktok", Type: "shorts"}

	prompt := BuildPrompt(req, ContentPreferences{Length: "long"})
	for _, want := range []string{
		"Create viral content for a tiktok shorts.",
		"Brand Name: AutoContent AI",
		"Tone: Professional & Engaging",
		"Target Length: comprehensive and deep",
		"Topic: Interesting Trends",
		"Visual Branding: Font=Inter, Color=#0070f3, Background=solid",
		"imageDescription",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "Include Keywords") {
		t.Error("keywords line should be omitted when empty")
	}

	prompt = BuildPrompt(req, ContentPreferences{TargetKeywords: []string{"gym", "protein"}})
	if !strings.Contains(prompt, "Include Keywords: gym, protein") {
		t.Error("expected keywords line")
	}
}

func TestLengthDescriptorUnknown(t *testing.T) {
	if got, want := LengthDescriptor("epic"), LengthDescriptor("medium"); got != want {
		t.Fatalf("unknown length = %q, want %q", got, want)
	}
}
