package plan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/numberleader/reportgen/internal/llm"
)

type stubProvider struct {
	reply string
	err   error
	seen  string
}

func (s *stubProvider) Chat(_ context.Context, messages []llm.Message) (string, error) {
	s.seen = messages[len(messages)-1].Content
	return s.reply, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func sampleRequest() Request {
	return Request{
		BusinessName:   "Brightside Foods",
		Industry:       "packaged foods",
		TargetMarket:   "urban households",
		ProductService: "ready-to-eat meal kits",
	}
}

func TestMissingFields(t *testing.T) {
	var empty Request
	want := []string{"businessName", "industry", "targetMarket", "productService"}
	missing := empty.MissingFields()
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
	if got := sampleRequest().MissingFields(); len(got) != 0 {
		t.Fatalf("complete request reported missing fields: %v", got)
	}
}

func TestFormatResolution(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", DefaultFormat, true},
		{"comprehensive", "comprehensive", true},
		{"concise", "concise", true},
		{"investor", "investor", true},
		{"poem", "poem", false},
	}
	for _, tc := range cases {
		req := sampleRequest()
		req.PlanFormat = tc.in
		format, ok := req.Format()
		if format != tc.want || ok != tc.wantOK {
			t.Errorf("Format(%q) = %q, %v; want %q, %v", tc.in, format, ok, tc.want, tc.wantOK)
		}
	}
}

func TestGenerateSanitizesProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "Sure! Here's the plan:\n## Plan\nThe buisness will grow."}
	got := Generate(context.Background(), provider, sampleRequest())
	if got != "Plan\nThe business will grow." {
		t.Fatalf("got %q", got)
	}
	for _, want := range []string{"Brightside Foods", "packaged foods", "urban households", "ready-to-eat meal kits"} {
		if !strings.Contains(provider.seen, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(provider.seen, "comprehensive business plan") {
		t.Errorf("prompt missing default format instructions: %q", provider.seen)
	}
}

func TestGenerateFallsBackToOutline(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}
	req := sampleRequest()
	req.PlanFormat = "concise"
	got := Generate(context.Background(), provider, req)
	for _, want := range []string{
		"Business Plan: Brightside Foods (concise)",
		"urban households",
		"ready-to-eat meal kits",
		"Next Steps",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("outline missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateWithoutProviderUsesOutline(t *testing.T) {
	got := Generate(context.Background(), nil, sampleRequest())
	if !strings.Contains(got, "Business Plan: Brightside Foods (comprehensive)") {
		t.Fatalf("got %q", got)
	}
}
