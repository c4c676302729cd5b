package llm

import (
	"ImpulseGuard/internal/api/config"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestFallbackVariants_Substitutions(t *testing.T) {
	variants := FallbackVariants("You never listen and always interrupt. I don't care")

	require.Len(t, variants, 3)
	assert.Contains(t, variants[0], " often listen")
	assert.Contains(t, variants[0], " usually interrupt")
	assert.Contains(t, variants[0], "I want to resolve this")
	assert.NotContains(t, variants[0], " never ")
	assert.NotContains(t, variants[1], " always ")
}

func TestFallbackVariants_Idempotent(t *testing.T) {
	first := FallbackVariants("please fix ticket INV-2024 by 2026-09-01")
	second := FallbackVariants("please fix ticket INV-2024 by 2026-09-01")

	assert.Equal(t, first, second)
}

func TestStaticFallbackVariants(t *testing.T) {
	variants := StaticFallbackVariants()

	require.Len(t, variants, 3)
	assert.Equal(t, "Direct and neutral: Let's focus on actions and timeline.", variants[0])
}

func TestRewrite_NoClientUsesDeterministicFallback(t *testing.T) {
	require.Nil(t, llmClient)

	variants := Rewrite(context.Background(), "hello world")

	assert.Equal(t, FallbackVariants("hello world"), variants)
}

func TestParseVariants_NumberedBlocks(t *testing.T) {
	content := strings.Join([]string{
		"1)",
		"First take line one.",
		"First take line two.",
		"",
		"2)",
		"Second take.",
		"",
		"3)",
		"Third take.",
	}, "\n")

	variants := parseVariants(content)

	require.Len(t, variants, 3)
	assert.Equal(t, "First take line one. First take line two.", variants[0])
	assert.Equal(t, "Second take.", variants[1])
	assert.Equal(t, "Third take.", variants[2])
}

func TestParseVariants_MarkerWithInlineTextDropped(t *testing.T) {
	content := "1) inline marker text\nBody of the first variant."

	variants := parseVariants(content)

	require.Len(t, variants, 1)
	assert.Equal(t, "Body of the first variant.", variants[0])
}

func TestParseVariants_NoMarkers(t *testing.T) {
	assert.Empty(t, parseVariants(""))

	variants := parseVariants("Just one paragraph\nwith two lines.")
	require.Len(t, variants, 1)
	assert.Equal(t, "Just one paragraph with two lines.", variants[0])
}

func TestIsVariantMarker(t *testing.T) {
	assert.True(t, isVariantMarker("1)"))
	assert.True(t, isVariantMarker("2) Empathetic"))
	assert.True(t, isVariantMarker("3)"))
	assert.True(t, isVariantMarker("12. option"))
	assert.True(t, isVariantMarker("5"))
	assert.False(t, isVariantMarker("4. option"))
	assert.False(t, isVariantMarker("First option"))
}

// fakeModel 模拟外部大模型
type fakeModel struct {
	content string
	err     error
}

func (f *fakeModel) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return f.content, f.err
}

func withFakeModel(t *testing.T, m llms.Model) {
	t.Helper()
	prevClient := llmClient
	prevCfg := config.Cfg
	llmClient = m
	config.Cfg = &config.Config{}
	t.Cleanup(func() {
		llmClient = prevClient
		config.Cfg = prevCfg
	})
}

func TestRewrite_ExternalFailureUsesStaticFallback(t *testing.T) {
	withFakeModel(t, &fakeModel{err: errors.New("connection refused")})

	variants := Rewrite(context.Background(), "some text")

	assert.Equal(t, StaticFallbackVariants(), variants)
}

func TestRewrite_ParsesModelOutput(t *testing.T) {
	withFakeModel(t, &fakeModel{content: "1)\nFirst.\n2)\nSecond.\n3)\nThird.\n99\nExtra."})

	variants := Rewrite(context.Background(), "some text")

	assert.Equal(t, []string{"First.", "Second.", "Third."}, variants)
}

func TestRewrite_UnparseableOutputKeptWhole(t *testing.T) {
	withFakeModel(t, &fakeModel{content: "plain answer without markers"})

	variants := Rewrite(context.Background(), "some text")

	assert.Equal(t, []string{"plain answer without markers"}, variants)
}
