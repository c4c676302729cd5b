package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	CORS   CORSConfig   `mapstructure:"cors"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// CORSConfig 允许跨域的来源列表
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// LLMConfig 改写服务使用的大模型配置 ApiKey 为空时走本地降级路径
type LLMConfig struct {
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}
