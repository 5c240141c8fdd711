package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/numberleader/reportgen/internal/llm"
	"github.com/numberleader/reportgen/internal/llm/providers"
)

// scriptedProvider answers prompts from a substring-keyed script and records
// how many chat calls it served. Safe for concurrent use.
type scriptedProvider struct {
	mu      sync.Mutex
	script  map[string]string
	err     error
	calls   int
	prompts []string
}

func (p *scriptedProvider) Chat(_ context.Context, messages []llm.Message) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	prompt := messages[len(messages)-1].Content
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	for needle, reply := range p.script {
		if strings.Contains(prompt, needle) {
			return reply, nil
		}
	}
	return "", errors.New("no scripted reply")
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestAugmentResolvesEveryJob(t *testing.T) {
	provider := &scriptedProvider{script: map[string]string{
		"alpha": "alpha reply",
		"gamma": "gamma reply",
	}}
	assembler := NewAssembler(provider)

	jobs := []PromptJob{
		{Key: "a", Prompt: "please do alpha", Fallback: "alpha default"},
		{Key: "b", Prompt: "please do beta", Fallback: "beta default"},
		{Key: "c", Prompt: "please do gamma", Fallback: "gamma default"},
	}
	results := assembler.Augment(context.Background(), jobs)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if r := results["a"]; !r.FromAI || r.Text != "alpha reply" {
		t.Errorf("job a: %+v", r)
	}
	// Job b has no scripted reply: its failure must not disturb the rest.
	if r := results["b"]; r.FromAI || r.Text != "beta default" {
		t.Errorf("job b: %+v", r)
	}
	if r := results["c"]; !r.FromAI || r.Text != "gamma reply" {
		t.Errorf("job c: %+v", r)
	}
	if got := provider.callCount(); got != 3 {
		t.Errorf("expected one chat call per job, got %d", got)
	}
}

func TestAugmentTreatsBlankCompletionAsFailure(t *testing.T) {
	provider := &scriptedProvider{script: map[string]string{"alpha": "   \n  "}}
	assembler := NewAssembler(provider)

	results := assembler.Augment(context.Background(), []PromptJob{
		{Key: "a", Prompt: "please do alpha", Fallback: "alpha default"},
	})
	if r := results["a"]; r.FromAI || r.Text != "alpha default" {
		t.Fatalf("blank completion should resolve to fallback, got %+v", r)
	}
}

func TestAugmentWithNilProviderUsesFallbacks(t *testing.T) {
	assembler := NewAssembler(nil)
	results := assembler.Augment(context.Background(), []PromptJob{
		{Key: "a", Prompt: "anything", Fallback: "default a"},
	})
	if r := results["a"]; r.FromAI || r.Text != "default a" {
		t.Fatalf("nil provider should resolve to fallback, got %+v", r)
	}
}

func TestConclusionFactorsSanitizesAIText(t *testing.T) {
	provider := &scriptedProvider{script: map[string]string{
		"valuation factors": "Sure! Here's the list:\n1. Strong buisness moat.\n2. Revenue of 2.5 million.\n3. Loyal customers.",
	}}
	assembler := NewAssembler(provider)

	got := assembler.ConclusionFactors(context.Background(), "A tech startup")
	want := "1. Strong business moat.\n2. Revenue of 25.00 lakhs.\n3. Loyal customers."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConclusionFactorsFallsBackToDefaults(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("boom")}
	assembler := NewAssembler(provider)

	if got := assembler.ConclusionFactors(context.Background(), "A tech startup"); got != DefaultFactors {
		t.Fatalf("expected default factors, got %q", got)
	}
}

func TestConclusionFactorsFallsBackWithLocalProvider(t *testing.T) {
	assembler := NewAssembler(providers.NewLocalProvider())
	if got := assembler.ConclusionFactors(context.Background(), "A tech startup"); got != DefaultFactors {
		t.Fatalf("expected default factors, got %q", got)
	}
}

func TestAugmentRunsJobsConcurrently(t *testing.T) {
	const jobCount = 6
	var (
		mu      sync.Mutex
		started int
	)
	release := make(chan struct{})
	provider := providerFunc(func(ctx context.Context, messages []llm.Message) (string, error) {
		mu.Lock()
		started++
		ready := started == jobCount
		mu.Unlock()
		if ready {
			close(release)
		}
		select {
		case <-release:
			return "done", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	assembler := NewAssembler(provider)

	jobs := make([]PromptJob, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		jobs = append(jobs, PromptJob{Key: fmt.Sprintf("job%d", i), Prompt: "p", Fallback: "f"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := assembler.Augment(ctx, jobs)

	// Every job blocked until all six were in flight; a sequential
	// assembler would deadlock here instead of completing.
	for key, r := range results {
		if !r.FromAI || r.Text != "done" {
			t.Errorf("job %s: %+v", key, r)
		}
	}
}

// providerFunc adapts a function to the provider interface for tests.
type providerFunc func(ctx context.Context, messages []llm.Message) (string, error)

func (f providerFunc) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	return f(ctx, messages)
}

func (f providerFunc) Name() string { return "func" }
