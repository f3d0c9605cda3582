package scene

import (
	"strings"
	"testing"
)

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		prompt string
		want   Topic
	}{
		{"", TopicForest},
		{"a quiet meadow", TopicForest},
		{"a dark forest at night", TopicForest},
		{"one lonely TREE", TopicForest},
		{"Forest city under the sea", TopicForest},
		{"a busy city", TopicCity},
		{"CITY of glass and BUILDINGs", TopicCity},
		{"tall building by the sea", TopicCity},
		{"a peaceful underwater reef", TopicUnderwater},
		{"deep SEA creatures", TopicUnderwater},
		{"Underwater", TopicUnderwater},
		{"   ", TopicForest},
		{"日本の森", TopicForest},
	}
	for _, tt := range tests {
		if got := DetectTopic(tt.prompt); got != tt.want {
			t.Errorf("DetectTopic(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}

func TestDetectTopicPriority(t *testing.T) {
	// Every forest keyword beats every later keyword regardless of position.
	for _, fk := range Keywords(TopicForest) {
		for _, later := range append(Keywords(TopicCity), Keywords(TopicUnderwater)...) {
			prompt := later + " and " + fk
			if got := DetectTopic(prompt); got != TopicForest {
				t.Errorf("DetectTopic(%q) = %q, want forest", prompt, got)
			}
		}
	}
	for _, ck := range Keywords(TopicCity) {
		for _, uk := range Keywords(TopicUnderwater) {
			prompt := strings.ToUpper(uk) + " " + ck
			if got := DetectTopic(prompt); got != TopicCity {
				t.Errorf("DetectTopic(%q) = %q, want city", prompt, got)
			}
		}
	}
}

func TestTopicsOrder(t *testing.T) {
	got := Topics()
	want := []Topic{TopicForest, TopicCity, TopicUnderwater}
	if len(got) != len(want) {
		t.Fatalf("Topics() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := Keywords(TopicCity)
	kw[0] = "mutated"
	if Keywords(TopicCity)[0] != "city" {
		t.Error("Keywords should return a copy")
	}
	if Keywords("mars") != nil {
		t.Error("Keywords for unknown topic should be nil")
	}
}

func TestParseTopic(t *testing.T) {
	tests := []struct {
		in     string
		want   Topic
		wantOK bool
	}{
		{"forest", TopicForest, true},
		{" City ", TopicCity, true},
		{"UNDERWATER", TopicUnderwater, true},
		{"desert", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTopic(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTopic(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLookupAssetsTotal(t *testing.T) {
	for _, topic := range Topics() {
		a := LookupAssets(topic)
		if a.Title == "" || a.BackgroundURL == "" || a.Elements == "" {
			t.Errorf("LookupAssets(%q) has empty fields: %+v", topic, a)
		}
	}

	fallback := LookupAssets("volcano")
	if fallback != LookupAssets(DefaultTopic) {
		t.Error("unknown topic should resolve to the default topic's assets")
	}
	if LookupAssets(TopicForest).Title != "Enchanted Forest" {
		t.Errorf("forest title = %q", LookupAssets(TopicForest).Title)
	}
	if LookupAssets(TopicCity).Title != "The city Landscape" {
		t.Errorf("city title = %q", LookupAssets(TopicCity).Title)
	}
}

func TestRenderEnvironmentElements(t *testing.T) {
	tests := []struct {
		topic Topic
		want  string
	}{
		{TopicForest, `"Log"`},
		{TopicCity, `"Brick"`},
		{TopicUnderwater, `"Fish"`},
	}
	for _, tt := range tests {
		got := RenderEnvironmentElements(tt.topic)
		if !strings.Contains(got, tt.want) {
			t.Errorf("RenderEnvironmentElements(%q) missing %s", tt.topic, tt.want)
		}
	}
	if got := RenderEnvironmentElements("volcano"); got != "" {
		t.Errorf("unknown topic fragment = %q, want empty", got)
	}
}

func TestGenerateDocumentDeterministic(t *testing.T) {
	prompts := []string{"", "a peaceful underwater reef", "CITY of glass", "some trees"}
	for _, p := range prompts {
		if GenerateDocument(p) != GenerateDocument(p) {
			t.Errorf("GenerateDocument(%q) is not deterministic", p)
		}
	}
}

func TestGenerateDocumentContainsOnlyOwnAssets(t *testing.T) {
	for _, topic := range Topics() {
		doc := GenerateForTopic(topic).HTML
		own := LookupAssets(topic)

		if !strings.Contains(doc, own.BackgroundURL) {
			t.Errorf("%s document missing its background URL", topic)
		}
		if !strings.Contains(doc, "<title>"+own.Title+"</title>") {
			t.Errorf("%s document missing its title", topic)
		}
		if !strings.Contains(doc, own.Elements) {
			t.Errorf("%s document missing its elements", topic)
		}
		for _, other := range Topics() {
			if other == topic {
				continue
			}
			oa := LookupAssets(other)
			if strings.Contains(doc, oa.Elements) {
				t.Errorf("%s document contains %s elements", topic, other)
			}
			if strings.Contains(doc, oa.BackgroundURL) {
				t.Errorf("%s document contains %s background", topic, other)
			}
		}
	}
}

func TestGenerateDocumentWellFormed(t *testing.T) {
	doc := GenerateDocument("anything")
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("document should start with a doctype")
	}
	for _, tag := range []string{"<html", "</html>", "<head>", "</head>", "<body>", "</body>", "<style>", "</style>", "<script>", "</script>"} {
		if strings.Count(doc, tag) != 1 {
			t.Errorf("document should contain exactly one %s", tag)
		}
	}
	if strings.Contains(doc, "{{") {
		t.Error("document contains unexpanded template actions")
	}
}

func TestScenarioUnderwaterReef(t *testing.T) {
	d := Generate("a peaceful underwater reef")
	if d.Topic != TopicUnderwater {
		t.Fatalf("topic = %q, want underwater", d.Topic)
	}
	if !strings.Contains(d.HTML, underwaterBackgroundURL) {
		t.Error("missing underwater background URL")
	}
	if !strings.Contains(d.HTML, "Fish") {
		t.Error("missing Fish fragment")
	}
	for _, banned := range []string{"Brick", "Log"} {
		if strings.Contains(d.HTML, banned) {
			t.Errorf("underwater document contains %q", banned)
		}
	}
}

func TestScenarioEmptyPrompt(t *testing.T) {
	d := Generate("")
	if d.Topic != TopicForest {
		t.Fatalf("topic = %q, want forest", d.Topic)
	}
	if !strings.Contains(d.HTML, forestBackgroundURL) {
		t.Error("missing forest background URL")
	}
}

func TestScenarioMixedCaseCity(t *testing.T) {
	d := Generate("CITY of glass and BUILDINGs")
	if d.Topic != TopicCity {
		t.Fatalf("topic = %q, want city", d.Topic)
	}
	if !strings.Contains(d.HTML, cityBackgroundURL) {
		t.Error("missing city background URL")
	}
	if strings.Contains(d.HTML, "Fish") || strings.Contains(d.HTML, `"Log"`) {
		t.Error("city document contains another topic's elements")
	}
}

func TestGenerateForUnknownTopic(t *testing.T) {
	d := GenerateForTopic("volcano")
	if d.Topic != DefaultTopic {
		t.Errorf("topic = %q, want %q", d.Topic, DefaultTopic)
	}
	if d.HTML != GenerateDocument("") {
		t.Error("unknown topic should render the default scene")
	}
}
