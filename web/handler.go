package web

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rushteam/basketkit/core"
)

// 页面提示文案
const (
	msgMissingFile = "Please upload a CSV file."
	msgNoItemsets  = "No frequent itemsets found. Try adjusting the dataset."
	msgNoRules     = "No association rules generated. Adjust support or confidence."
	msgErrorPrefix = "Error processing file: "
)

const formField = "file"

// pageData 是 index.html 的渲染数据
type pageData struct {
	Flashes         []Flash
	Recommendations []core.Recommendation
	Stats           *core.Stats
	Source          string
}

// Index 渲染上传表单，并显示上一次请求留下的提示。
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	flashes, err := s.flashes.Pop(r.Context(), w, r)
	if err != nil {
		s.logger.Error("pop flash failed", "error", err)
	}
	s.render(w, http.StatusOK, pageData{Flashes: flashes})
}

// Upload 处理表单上传：成功时直接渲染推荐结果，其余情况写入 flash 并重定向回表单。
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := s.formFile(w, r)
	if err != nil {
		if core.IsInvalidInput(err) {
			s.flashRedirect(w, r, FlashDanger, msgMissingFile)
			return
		}
		s.flashRedirect(w, r, FlashDanger, msgErrorPrefix+err.Error())
		return
	}
	defer file.Close()

	res, err := s.run(r.Context(), header.Filename, file)
	if err != nil {
		s.flashRedirect(w, r, FlashDanger, msgErrorPrefix+err.Error())
		return
	}

	switch res.Status {
	case core.StatusNoItemsets:
		s.flashRedirect(w, r, FlashWarning, msgNoItemsets)
		return
	case core.StatusNoRules:
		s.flashRedirect(w, r, FlashWarning, msgNoRules)
		return
	}

	// 与表单页一致，结果页也展示并清空尚未显示的提示
	flashes, err := s.flashes.Pop(r.Context(), w, r)
	if err != nil {
		s.logger.Error("pop flash failed", "error", err)
	}
	s.render(w, http.StatusOK, pageData{
		Flashes:         flashes,
		Recommendations: res.Recommendations,
		Stats:           &res.Stats,
		Source:          header.Filename,
	})
}

// APIRecommend 是 Upload 的 JSON 版本。
// 缺少文件返回 400，处理失败返回 422，其余（包括空结果）返回 200 与 status。
func (s *Server) APIRecommend(w http.ResponseWriter, r *http.Request) {
	file, header, err := s.formFile(w, r)
	if err != nil {
		if core.IsInvalidInput(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgMissingFile})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	defer file.Close()

	res, err := s.run(r.Context(), header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// formFile 读取上传文件。没有文件或文件为空时返回 core.ErrMissingFile，不做任何解析。
func (s *Server) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("file exceeds %d bytes", tooLarge.Limit)
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, core.ErrMissingFile
		}
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}

	file, header, err := r.FormFile(formField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, core.ErrMissingFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil, core.ErrMissingFile
	}
	return file, header, nil
}

func (s *Server) run(ctx context.Context, filename string, file multipart.File) (*core.Result, error) {
	rctx := &core.RecommendContext{
		RequestID: uuid.NewString(),
		Source:    filename,
	}
	start := time.Now()
	res, err := s.recommender.Recommend(ctx, rctx, file)
	if err != nil {
		s.logger.Warn("upload failed",
			"request_id", rctx.RequestID,
			"file", filename,
			"error", err,
			"elapsed", time.Since(start))
		return nil, err
	}
	s.logger.Info("upload processed",
		"request_id", rctx.RequestID,
		"file", filename,
		"status", string(res.Status),
		"rows", res.Stats.RowsParsed,
		"invoices", res.Stats.Invoices,
		"rules", res.Stats.Rules,
		"recommendations", len(res.Recommendations),
		"elapsed", time.Since(start))
	return res, nil
}

func (s *Server) flashRedirect(w http.ResponseWriter, r *http.Request, category, message string) {
	if err := s.flashes.Add(r.Context(), w, r, Flash{Category: category, Message: message}); err != nil {
		s.logger.Error("add flash failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render template failed", "error", err)
	}
}
