package llm

import (
	"ImpulseGuard/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
)

const (
	rewriteTimeout     = 20 * time.Second
	rewriteTemperature = 0.5
	maxVariants        = 3
)

const rewriteSystemPrompt = "You reduce escalation, keep facts, keep it concise."

// Rewrite 返回输入文本的3个改写候选 任何外部失败都在内部降级 不向调用方传播
func Rewrite(ctx context.Context, text string) []string {
	if llmClient == nil {
		return FallbackVariants(text)
	}

	ctx, cancel := context.WithTimeout(ctx, rewriteTimeout)
	defer cancel()

	resp, err := fetchModel(ctx, rewriteSystemPrompt, buildRewritePrompt(text), rewriteTemperature)
	if err != nil {
		log.Error("改写-AI大模型请求失败", "err", errors.Wrap(err, "rewrite model call"))
		return StaticFallbackVariants()
	}
	if len(resp.Choices) == 0 {
		log.Error("改写-AI大模型返回数据为空")
		return StaticFallbackVariants()
	}

	variants := parseVariants(resp.Choices[0].Content)
	if len(variants) == 0 {
		variants = []string{resp.Choices[0].Content}
	}
	if len(variants) > maxVariants {
		variants = variants[:maxVariants]
	}
	return variants
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := RewriteSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer RewriteSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.Info("正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(temp),
	)
}

func buildRewritePrompt(text string) string {
	return fmt.Sprintf(`Text (keep original language):
%s

Produce 3 alternatives:
1) Neutral-Direct (30–80 words)
2) Empathetic (40–90 words, I-statements)
3) Firm Boundaries (30–70 words, no insults)
Preserve dates/amounts/IDs verbatim.`, text)
}

// parseVariants 按编号标记行切分模型输出 标记行本身作为分隔符丢弃
func parseVariants(content string) []string {
	variants := make([]string, 0, maxVariants)
	buf := make([]string, 0)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isVariantMarker(line) {
			if len(buf) > 0 {
				variants = append(variants, strings.Join(buf, " "))
				buf = buf[:0]
			}
			continue
		}
		buf = append(buf, line)
	}
	if len(buf) > 0 {
		variants = append(variants, strings.Join(buf, " "))
	}
	return variants
}

// isVariantMarker 识别 `1)` `2)` `3)` 或以数字开头的标记行
func isVariantMarker(line string) bool {
	if strings.HasPrefix(line, "1)") || strings.HasPrefix(line, "2)") || strings.HasPrefix(line, "3)") {
		return true
	}
	runes := []rune(line)
	if len(runes) == 1 {
		return unicode.IsDigit(runes[0])
	}
	return unicode.IsDigit(runes[0]) && unicode.IsDigit(runes[1])
}

// FallbackVariants 未配置外部凭据时的确定性降级 对相同输入字节级幂等
func FallbackVariants(text string) []string {
	t := strings.ReplaceAll(text, " never ", " often ")
	t = strings.ReplaceAll(t, " always ", " usually ")
	t = strings.ReplaceAll(t, " I don't care", " I want to resolve this")

	return []string{
		fmt.Sprintf("Direct and neutral: %s. Let's agree on next steps and a clear timeline.", t),
		fmt.Sprintf("I feel concerned about this. I'd like to focus on facts and fix it together: %s", t),
		"Let's keep it respectful. Proposed plan: 1) … 2) … 3) …",
	}
}

// StaticFallbackVariants 外部调用失败时的固定兜底文案
func StaticFallbackVariants() []string {
	return []string{
		"Direct and neutral: Let's focus on actions and timeline.",
		"Empathetic: I feel concerned; I'd like to resolve this together.",
		"Firm boundaries: Please avoid judgments. Here’s how we proceed: 1) … 2) …",
	}
}
