package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rushteam/basketkit/config/builders"
	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

func setDefaults() {
	def := core.DefaultConfig()
	viper.SetDefault("mining.country", def.Country)
	viper.SetDefault("mining.min_item_count", def.MinItemCount)
	viper.SetDefault("mining.min_support", def.MinSupport)
	viper.SetDefault("mining.max_len", def.MaxLen)
	viper.SetDefault("mining.metric", def.Metric)
	viper.SetDefault("mining.min_threshold", def.MinThreshold)
	viper.SetDefault("mining.top_n", def.TopN)

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max_upload_mb", 32)

	viper.SetDefault("store.backend", "memory")
	viper.SetDefault("store.redis_addr", "localhost:6379")
	viper.SetDefault("store.redis_db", 0)
}

// miningConfig 从 viper 读取挖掘参数。
func miningConfig() core.Config {
	return core.Config{
		Country:      viper.GetString("mining.country"),
		MinItemCount: viper.GetInt("mining.min_item_count"),
		MinSupport:   viper.GetFloat64("mining.min_support"),
		MaxLen:       viper.GetInt("mining.max_len"),
		Metric:       viper.GetString("mining.metric"),
		MinThreshold: viper.GetFloat64("mining.min_threshold"),
		TopN:         viper.GetInt("mining.top_n"),
	}
}

// buildPipeline 优先使用 pipeline.file 指定的节点配置，否则按 mining.* 构建默认 Pipeline。
func buildPipeline() (*pipeline.Pipeline, error) {
	if path := viper.GetString("pipeline.file"); path != "" {
		cfg, err := pipeline.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load pipeline %s: %w", path, err)
		}
		return builders.FromConfig(cfg)
	}
	return builders.DefaultPipeline(miningConfig())
}

// bindFlags 在命令执行前把 flag 绑定到 viper key。
// 不同子命令可能绑定同一个 key，放在 PreRunE 中保证只有当前命令的 flag 生效。
func bindFlags(keys map[string]string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		for key, name := range keys {
			if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return fmt.Errorf("failed to bind %s flag: %w", name, err)
			}
		}
		return nil
	}
}
