package inspector

import (
	"context"
	"io"
	"net"
	"os"

	"go.lsp.dev/jsonrpc2"

	"github.com/webgrove/rendertree/internal/debug"
)

// ServeConn runs the inspector on rwc until the peer disconnects or ctx
// is cancelled. Sessions left open by the peer are released on return.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	defer s.Shutdown()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler())
	select {
	case <-conn.Done():
		return conn.Err()
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	}
}

// ServeStdio runs the inspector over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.ServeConn(ctx, &stdioReadWriteCloser{read: os.Stdin, write: os.Stdout})
}

// Serve accepts connections on ln, serving each in turn. A peer
// disconnecting is routine and does not stop the loop; Serve returns on
// ctx cancellation or a listener error. The inspector is a debugging
// surface; one peer at a time is enough.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if err := s.ServeConn(ctx, conn); err != nil && debug.RPC() {
			debug.Logf("inspector: peer gone: %v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
