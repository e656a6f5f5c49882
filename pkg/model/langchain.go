package model

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// LangChainInvoker adapts any langchaingo-backed LLM (OpenAI, Anthropic,
// Ollama, ...) to the Invoker boundary.
type LangChainInvoker struct {
	llm  llms.Model
	opts []llms.CallOption
}

// NewLangChain wraps a langchaingo model. Call options (temperature, max
// tokens) apply to every invocation.
func NewLangChain(llm llms.Model, opts ...llms.CallOption) *LangChainInvoker {
	return &LangChainInvoker{llm: llm, opts: opts}
}

// Invoke sends the prompt as a single completion request and returns the raw
// text response. Provider errors surface untouched; the pipeline maps them
// to its fallback path.
func (i *LangChainInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, i.llm, prompt, i.opts...)
}
