package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/rushteam/basketkit/core"
)

// Flash 消息类别，对应页面上的提示样式
const (
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

const (
	sessionCookie  = "basketkit_session"
	flashKeyPrefix = "flash:"
	flashTTL       = 300 // 秒
)

// Flash 是一条只显示一次的提示消息。
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FlashStore 按浏览器会话暂存 flash 消息，读取后即删除。
// 会话 id 保存在 cookie 中，消息本身保存在 core.Store。
type FlashStore struct {
	store core.Store
}

func NewFlashStore(store core.Store) *FlashStore {
	return &FlashStore{store: store}
}

// session 返回当前请求的会话 id；不存在时生成新的 id 并写入 cookie。
func (f *FlashStore) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// Add 追加一条消息。
func (f *FlashStore) Add(ctx context.Context, w http.ResponseWriter, r *http.Request, msg Flash) error {
	key := flashKeyPrefix + f.session(w, r)

	msgs, err := f.load(ctx, key)
	if err != nil {
		return err
	}
	msgs = append(msgs, msg)

	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("encode flash: %w", err)
	}
	return f.store.Set(ctx, key, data, flashTTL)
}

// Pop 取出并清空当前会话的全部消息。
func (f *FlashStore) Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]Flash, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, nil
	}
	key := flashKeyPrefix + c.Value

	msgs, err := f.load(ctx, key)
	if err != nil || len(msgs) == 0 {
		return nil, err
	}
	if err := f.store.Delete(ctx, key); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (f *FlashStore) load(ctx context.Context, key string) ([]Flash, error) {
	data, err := f.store.Get(ctx, key)
	if core.IsStoreNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load flash: %w", err)
	}
	var msgs []Flash
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}
	return msgs, nil
}
