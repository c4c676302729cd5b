package llm

import (
	"ImpulseGuard/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

// InitLLM 初始化大模型客户端 api_key 为空时不报错 改写走本地降级路径
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Info("LLM api key not configured, rewrite will use local fallback")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	return nil
}
