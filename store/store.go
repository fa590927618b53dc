package store

import (
	"fmt"

	"github.com/rushteam/basketkit/core"
)

// 注意：此包只包含实现，接口定义在 core 包。
//
// 示例：
//   var s core.Store = NewMemoryStore()

// 后端名称
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options 描述如何创建 Store。
type Options struct {
	Backend   string
	RedisAddr string
	RedisDB   int
}

// New 按 Options 创建 Store；Backend 为空时使用内存存储。
func New(opts Options) (core.Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisDB)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
