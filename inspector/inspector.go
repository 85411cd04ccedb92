// Package inspector exposes traversal sessions over JSON-RPC so editor
// integrations and debugging tools can walk render trees out of process.
package inspector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"

	"go.lsp.dev/jsonrpc2"

	"github.com/webgrove/rendertree"
	"github.com/webgrove/rendertree/desc"
	"github.com/webgrove/rendertree/engine"
	"github.com/webgrove/rendertree/internal/debug"
	"github.com/webgrove/rendertree/metrics"
)

const serverName = "rendertree-inspector"

// Server dispatches inspector requests. Each open session is addressed
// by an id handed out by render/open; sessions not closed by the client
// are released when the connection goes down.
type Server struct {
	eng *engine.Engine
	col *metrics.Collector

	mu       sync.Mutex
	sessions map[string]*rendertree.Session
	nextID   int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMetrics makes the server account trees built, nodes materialized
// and open sessions on c.
func WithMetrics(c *metrics.Collector) ServerOption {
	return func(s *Server) { s.col = c }
}

// NewServer creates a Server whose sessions draw on eng.
func NewServer(eng *engine.Engine, opts ...ServerOption) *Server {
	s := &Server{
		eng:      eng,
		sessions: map[string]*rendertree.Session{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type openParams struct {
	Markup string `json:"markup"`
}

type openResult struct {
	Session string `json:"session"`
}

type sessionParams struct {
	Session string `json:"session"`
}

type nextResult struct {
	EOF  bool         `json:"eof"`
	Node *desc.Record `json:"node,omitempty"`
}

type typeResult struct {
	Type string `json:"type"`
}

type describeParams struct {
	Markup string `json:"markup"`
}

type describeResult struct {
	Nodes []desc.Record `json:"nodes"`
}

type infoResult struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

type statsResult struct {
	LiveTrees     int `json:"liveTrees"`
	LiveIterators int `json:"liveIterators"`
	LiveNodeSlots int `json:"liveNodeSlots"`
	DoubleFrees   int `json:"doubleFrees"`
}

// Handler returns the jsonrpc2 handler for s.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("<- %s\n", req.Method())
		}
		result, err := s.dispatch(req)
		return reply(ctx, result, err)
	}
}

func (s *Server) dispatch(req jsonrpc2.Request) (any, error) {
	switch req.Method() {
	case "render/open":
		var p openParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		return s.open(p)
	case "render/next":
		var p sessionParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		return s.next(p)
	case "render/type":
		var p sessionParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		return s.currentType(p)
	case "render/close":
		var p sessionParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		return nil, s.close(p)
	case "render/describe":
		var p describeParams
		if err := unmarshalParams(req, &p); err != nil {
			return nil, err
		}
		return s.describe(p)
	case "system/info":
		return infoResult{
			Name:      serverName,
			Version:   rendertree.Version,
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}, nil
	case "system/stats":
		st := s.eng.Stats()
		return statsResult{
			LiveTrees:     st.LiveTrees,
			LiveIterators: st.LiveIterators,
			LiveNodeSlots: st.LiveNodeSlots,
			DoubleFrees:   st.DoubleFrees,
		}, nil
	}
	return nil, jsonrpc2.ErrMethodNotFound
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err)
	}
	return nil
}

func (s *Server) open(p openParams) (*openResult, error) {
	sess, err := rendertree.Open(p.Markup, rendertree.WithEngine(s.eng))
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.sessions[id] = sess
	s.mu.Unlock()
	if s.col != nil {
		s.col.TreesBuilt.Inc()
		s.col.SessionsOpen.Inc()
	}
	return &openResult{Session: id}, nil
}

func (s *Server) lookup(id string) (*rendertree.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: no session %q", jsonrpc2.ErrInvalidParams, id)
	}
	return sess, nil
}

func (s *Server) next(p sessionParams) (*nextResult, error) {
	sess, err := s.lookup(p.Session)
	if err != nil {
		return nil, err
	}
	node, err := sess.Next()
	if errors.Is(err, io.EOF) {
		return &nextResult{EOF: true}, nil
	}
	if err != nil {
		return nil, err
	}
	if s.col != nil {
		s.col.NodesMaterialized.Inc()
	}
	rec := desc.FromNode(node)
	return &nextResult{Node: &rec}, nil
}

func (s *Server) currentType(p sessionParams) (*typeResult, error) {
	sess, err := s.lookup(p.Session)
	if err != nil {
		return nil, err
	}
	return &typeResult{Type: sess.Type().String()}, nil
}

func (s *Server) close(p sessionParams) error {
	s.mu.Lock()
	sess, ok := s.sessions[p.Session]
	delete(s.sessions, p.Session)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: no session %q", jsonrpc2.ErrInvalidParams, p.Session)
	}
	if s.col != nil {
		s.col.SessionsOpen.Dec()
	}
	return sess.Close()
}

func (s *Server) describe(p describeParams) (*describeResult, error) {
	sess, err := rendertree.Open(p.Markup, rendertree.WithEngine(s.eng))
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	if s.col != nil {
		s.col.TreesBuilt.Inc()
	}
	recs, err := desc.Of(sess)
	if err != nil {
		return nil, err
	}
	if s.col != nil {
		s.col.NodesMaterialized.Add(float64(len(recs)))
	}
	return &describeResult{Nodes: recs}, nil
}

// Shutdown closes all sessions still open on s.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Close()
		delete(s.sessions, id)
		if s.col != nil {
			s.col.SessionsOpen.Dec()
		}
	}
}
