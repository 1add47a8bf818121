package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"stockquote/feed"
)

// EnvPrefix 环境变量前缀，如 STOCKQUOTE_SERVER_PORT
const EnvPrefix = "STOCKQUOTE"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// Config 配置，环境变量名由字段名拆词得到，如 STOCKQUOTE_SERVER_READ_TIMEOUT
type Config struct {
	Server ServerConfig `yaml:"server" split_words:"true"`
	Input  InputConfig  `yaml:"input" split_words:"true"`
	Output OutputConfig `yaml:"output" split_words:"true"`
	Log    LogConfig    `yaml:"log" split_words:"true"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port            int           `yaml:"port" split_words:"true"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
	// 请求体上限（字节）
	MaxBodyBytes int64 `yaml:"max_body_bytes" split_words:"true"`
}

// InputConfig 原始行情文本配置
type InputConfig struct {
	Encoding string `yaml:"encoding" split_words:"true"` // gbk | utf8
}

// OutputConfig 命令行输出配置
type OutputConfig struct {
	Format  string `yaml:"format" split_words:"true"` // json | table
	NoColor bool   `yaml:"no_color" split_words:"true"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"` // console | json
}

// DefaultConfig 默认配置
var DefaultConfig = Config{
	Server: ServerConfig{
		Port:            19527,
		ReadTimeout:     10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    1 << 20,
	},
	Input:  InputConfig{Encoding: feed.EncodingGBK},
	Output: OutputConfig{Format: "json"},
	Log:    LogConfig{Level: "info", Format: "console"},
}

// LoadFromFile 从YAML文件加载配置，未出现的字段保留默认值
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	return &config, nil
}

// GetConfig 获取配置 (优先级: 环境变量 > 配置文件 > 默认值)
func GetConfig(configPath string) (*Config, error) {
	config := DefaultConfig

	if configPath != "" {
		cfg, err := LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		config = *cfg
	}

	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("读取环境变量失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes %d", ErrInvalidConfig, c.Server.MaxBodyBytes)
	}
	if !feed.ValidEncoding(c.Input.Encoding) {
		return fmt.Errorf("%w: input.encoding %q", ErrInvalidConfig, c.Input.Encoding)
	}
	switch c.Output.Format {
	case "json", "table":
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
