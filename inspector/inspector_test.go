package inspector

import (
	"context"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.lsp.dev/jsonrpc2"

	"github.com/webgrove/rendertree/engine"
	"github.com/webgrove/rendertree/metrics"
)

func startPair(t *testing.T, eng *engine.Engine, opts ...ServerOption) jsonrpc2.Conn {
	t.Helper()
	srv := NewServer(eng, opts...)
	serverEnd, clientEnd := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.ServeConn(ctx, serverEnd)
	}()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(clientEnd))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestOpenNextClose(t *testing.T) {
	eng := engine.New()
	conn := startPair(t, eng)
	ctx := context.Background()

	var opened openResult
	if _, err := conn.Call(ctx, "render/open", openParams{Markup: "<html><h1>Title</h1></html>"}, &opened); err != nil {
		t.Fatal(err)
	}

	var tr typeResult
	if _, err := conn.Call(ctx, "render/type", sessionParams{Session: opened.Session}, &tr); err != nil {
		t.Fatal(err)
	}
	if tr.Type != "root" {
		t.Errorf("initial type = %q", tr.Type)
	}

	var nr nextResult
	if _, err := conn.Call(ctx, "render/next", sessionParams{Session: opened.Session}, &nr); err != nil {
		t.Fatal(err)
	}
	if nr.EOF || nr.Node == nil || nr.Node.Type != "root" {
		t.Fatalf("first next: %+v", nr)
	}
	if _, err := conn.Call(ctx, "render/next", sessionParams{Session: opened.Session}, &nr); err != nil {
		t.Fatal(err)
	}
	if nr.Node == nil || nr.Node.Value != "Title" {
		t.Fatalf("second next: %+v", nr)
	}
	if _, err := conn.Call(ctx, "render/next", sessionParams{Session: opened.Session}, &nr); err != nil {
		t.Fatal(err)
	}
	if !nr.EOF {
		t.Fatalf("expected eof, got %+v", nr)
	}

	if _, err := conn.Call(ctx, "render/close", sessionParams{Session: opened.Session}, nil); err != nil {
		t.Fatal(err)
	}
	if got := eng.Live(); got != 0 {
		t.Errorf("live handles after close = %d", got)
	}
}

func TestDescribe(t *testing.T) {
	eng := engine.New()
	conn := startPair(t, eng)
	ctx := context.Background()

	var dr describeResult
	_, err := conn.Call(ctx, "render/describe",
		describeParams{Markup: "<html><h1>A</h1><p>B</p></html>"}, &dr)
	if err != nil {
		t.Fatal(err)
	}
	if len(dr.Nodes) != 3 {
		t.Fatalf("described %d nodes, want 3", len(dr.Nodes))
	}
	if dr.Nodes[1].Value != "A" || !dr.Nodes[1].Bold {
		t.Errorf("h1 record: %+v", dr.Nodes[1])
	}
	if got := eng.Live(); got != 0 {
		t.Errorf("describe leaked %d handles", got)
	}
}

func TestBadRequests(t *testing.T) {
	conn := startPair(t, engine.New())
	ctx := context.Background()

	if _, err := conn.Call(ctx, "render/next", sessionParams{Session: "99"}, nil); err == nil {
		t.Error("next on unknown session succeeded")
	}
	if _, err := conn.Call(ctx, "render/open", openParams{Markup: "   "}, nil); err == nil {
		t.Error("open on empty markup succeeded")
	}
	if _, err := conn.Call(ctx, "no/such/method", nil, nil); err == nil {
		t.Error("unknown method succeeded")
	}
}

func TestSystemMethods(t *testing.T) {
	conn := startPair(t, engine.New())
	ctx := context.Background()

	var info infoResult
	if _, err := conn.Call(ctx, "system/info", nil, &info); err != nil {
		t.Fatal(err)
	}
	if info.Name != serverName || info.Version == "" {
		t.Errorf("info = %+v", info)
	}

	var opened openResult
	if _, err := conn.Call(ctx, "render/open", openParams{Markup: "<html><p>x</p></html>"}, &opened); err != nil {
		t.Fatal(err)
	}
	var st statsResult
	if _, err := conn.Call(ctx, "system/stats", nil, &st); err != nil {
		t.Fatal(err)
	}
	if st.LiveTrees != 1 || st.LiveIterators != 1 || st.LiveNodeSlots != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestMetricsInstrumentation(t *testing.T) {
	eng := engine.New()
	reg := prometheus.NewRegistry()
	col := metrics.New(reg, eng)
	conn := startPair(t, eng, WithMetrics(col))
	ctx := context.Background()

	var opened openResult
	if _, err := conn.Call(ctx, "render/open", openParams{Markup: "<html><h1>A</h1></html>"}, &opened); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(col.TreesBuilt); got != 1 {
		t.Errorf("trees built after open = %g", got)
	}
	if got := testutil.ToFloat64(col.SessionsOpen); got != 1 {
		t.Errorf("sessions open after open = %g", got)
	}

	var nr nextResult
	for !nr.EOF {
		if _, err := conn.Call(ctx, "render/next", sessionParams{Session: opened.Session}, &nr); err != nil {
			t.Fatal(err)
		}
	}
	if got := testutil.ToFloat64(col.NodesMaterialized); got != 2 {
		t.Errorf("nodes materialized = %g, want 2", got)
	}

	if _, err := conn.Call(ctx, "render/close", sessionParams{Session: opened.Session}, nil); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(col.SessionsOpen); got != 0 {
		t.Errorf("sessions open after close = %g", got)
	}

	var dr describeResult
	if _, err := conn.Call(ctx, "render/describe", describeParams{Markup: "<html><p>B</p></html>"}, &dr); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(col.TreesBuilt); got != 2 {
		t.Errorf("trees built after describe = %g", got)
	}
	if got := testutil.ToFloat64(col.NodesMaterialized); got != 4 {
		t.Errorf("nodes materialized after describe = %g, want 4", got)
	}
}

func TestServeSurvivesDisconnect(t *testing.T) {
	srv := NewServer(engine.New())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Serve(ctx, ln)
	}()
	defer func() {
		cancel()
		<-done
	}()

	for i := 0; i < 2; i++ {
		nc, err := net.Dial("tcp", ln.Addr().String())
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		conn := jsonrpc2.NewConn(jsonrpc2.NewStream(nc))
		conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
		var info infoResult
		if _, err := conn.Call(ctx, "system/info", nil, &info); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		conn.Close()
		<-conn.Done()
	}
}
