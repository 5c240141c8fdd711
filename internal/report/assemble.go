package report

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/llm"
)

// Assembler drives the optional AI augmentation of a report. Every prompt
// is a single attempt: failures resolve to the job's fallback text and
// never fail the surrounding request.
type Assembler struct {
	provider llm.Provider
}

func NewAssembler(provider llm.Provider) *Assembler {
	return &Assembler{provider: provider}
}

// PromptJob is one independent augmentation prompt with its hardcoded
// fallback.
type PromptJob struct {
	Key      string
	Prompt   string
	Fallback string
}

// PromptResult carries either the model's raw text or the fallback.
type PromptResult struct {
	Text   string
	FromAI bool
}

// Augment issues all jobs concurrently and joins before returning. One
// prompt's failure neither blocks nor invalidates the others; a failed or
// empty completion resolves to the job's fallback.
func (a *Assembler) Augment(ctx context.Context, jobs []PromptJob) map[string]PromptResult {
	logger := common.Logger()
	results := make([]PromptResult, len(jobs))
	var group errgroup.Group
	for i, job := range jobs {
		group.Go(func() error {
			if a.provider == nil {
				results[i] = PromptResult{Text: job.Fallback}
				return nil
			}
			text, err := a.provider.Chat(ctx, []llm.Message{{Role: "user", Content: job.Prompt}})
			if err != nil || strings.TrimSpace(text) == "" {
				logger.Warn("report: augmentation prompt failed, using default", "key", job.Key, "error", err)
				results[i] = PromptResult{Text: job.Fallback}
				return nil
			}
			results[i] = PromptResult{Text: text, FromAI: true}
			return nil
		})
	}
	// Errors are swallowed per prompt, so the join never fails.
	_ = group.Wait()
	out := make(map[string]PromptResult, len(jobs))
	for i, job := range jobs {
		out[job.Key] = results[i]
	}
	return out
}

const factorsPromptTemplate = `
Based on this company description, generate 3 specific valuation factors to consider (one sentence each):
"%s"

Format your response as just 3 numbered points, with no introduction or explanation.
`

// ConclusionFactors asks the model for company-specific conclusion factors,
// returning the default block when the call fails.
func (a *Assembler) ConclusionFactors(ctx context.Context, companyDescription string) string {
	results := a.Augment(ctx, []PromptJob{{
		Key:      "recommendations",
		Prompt:   fmt.Sprintf(factorsPromptTemplate, companyDescription),
		Fallback: DefaultFactors,
	}})
	result := results["recommendations"]
	if !result.FromAI {
		return result.Text
	}
	return Sanitize(result.Text)
}
