package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session 单个调用方会话：首次接触创建，显式关闭或空闲超时逐出。
// Meta 存放跟进调用需要的少量上下文（上次查询的平台、参数等）
type Session struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	LastSeen  time.Time         `json:"last_seen"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Registry 进程级会话注册表。替代来源系统里的全局可变 map：
// 生命周期显式化为 Create / Lookup / Touch / Evict，空闲回收由 GC 巡检完成
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idleTTL  time.Duration
	logger   *logrus.Logger
}

// NewRegistry 创建注册表，idleTTL<=0 时默认 30 分钟
func NewRegistry(idleTTL time.Duration, logger *logrus.Logger) *Registry {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	return &Registry{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		logger:   logger,
	}
}

// Create 新建会话并登记
func (r *Registry) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		LastSeen:  now,
		Meta:      make(map[string]string),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Lookup 按 id 查找，不刷新活跃时间
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Touch 刷新活跃时间并合并 meta，会话不存在返回 false
func (r *Registry) Touch(id string, meta map[string]string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.LastSeen = time.Now()
	for k, v := range meta {
		s.Meta[k] = v
	}
	return true
}

// Evict 显式逐出，返回是否存在
func (r *Registry) Evict(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len 当前会话数
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// evictIdle 逐出超过 idleTTL 未活跃的会话，返回逐出数量
func (r *Registry) evictIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen) > r.idleTTL {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartGC 启动空闲回收巡检，ctx 取消时退出
func (r *Registry) StartGC(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := r.evictIdle(now); n > 0 && r.logger != nil {
					r.logger.WithField("evicted", n).Info("空闲会话已逐出")
				}
			}
		}
	}()
}
