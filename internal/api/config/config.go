package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

const envPrefix = "BLOGLY"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "postgresql:///blogly")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// LoadConfig 从 configPath 下的 config.yaml 加载配置并填充到 Cfg，
// 文件不存在时使用默认值，环境变量 BLOGLY_* 覆盖文件内容
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath == "" {
		configPath = "./configs"
	}
	v.AddConfigPath(configPath)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return &cfg, nil
}
