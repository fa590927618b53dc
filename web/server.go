// Package web 是推荐 Pipeline 的 HTTP 前端：上传表单、flash 提示与 JSON 接口。
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/rushteam/basketkit"
	"github.com/rushteam/basketkit/core"
	"github.com/rushteam/basketkit/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultMaxUploadBytes 是默认的上传大小上限（32 MiB）。
const DefaultMaxUploadBytes int64 = 32 << 20

// Recommender 对一份上传运行推荐流程。
type Recommender interface {
	Recommend(ctx context.Context, rctx *core.RecommendContext, r io.Reader) (*core.Result, error)
}

// PipelineRecommender 用 Pipeline 实现 Recommender。
type PipelineRecommender struct {
	Pipeline *pipeline.Pipeline
}

func (p *PipelineRecommender) Recommend(ctx context.Context, rctx *core.RecommendContext, r io.Reader) (*core.Result, error) {
	return basketkit.Run(ctx, p.Pipeline, rctx, r)
}

// Server 处理上传请求。每个请求独立运行 Pipeline，Server 自身只持有只读配置。
type Server struct {
	recommender Recommender
	flashes     *FlashStore
	logger      *slog.Logger
	maxUpload   int64
	tmpl        *template.Template
}

// Option 配置 Server。
type Option func(*Server)

// WithLogger 设置 logger，默认 slog.Default()。
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMaxUploadBytes 设置上传大小上限。
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// NewServer 创建 Server；store 用于保存 flash 消息。
func NewServer(rec Recommender, store core.Store, opts ...Option) *Server {
	s := &Server{
		recommender: rec,
		flashes:     NewFlashStore(store),
		logger:      slog.Default(),
		maxUpload:   DefaultMaxUploadBytes,
		tmpl:        template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes 返回路由。
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("POST /{$}", s.Upload)
	mux.HandleFunc("POST /api/v1/recommendations", s.APIRecommend)
	mux.HandleFunc("GET /healthz", s.HealthCheck)

	return mux
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"store":  s.flashes.store.Name(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
