package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

const (
	keepaliveTime    = 30 * time.Second
	keepaliveTimeout = 10 * time.Second
)

// newClientConn creates a lazily connecting client connection to target.
// extra options are appended after the defaults, so tests can swap the
// dialer.
func newClientConn(target string, m *metrics.Metrics, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                keepaliveTime,
			Timeout:             keepaliveTimeout,
			PermitWithoutStream: true,
		}),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(wireCodec{})),
		grpc.WithChainUnaryInterceptor(unaryClientInterceptor(m)),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client for %s: %w", target, err)
	}
	return conn, nil
}

// unaryClientInterceptor logs every backend call with the request-scoped
// logger and records its status and latency.
func unaryClientInterceptor(m *metrics.Metrics) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker, opts ...grpc.CallOption,
	) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		duration := time.Since(start)

		code := status.Code(err)
		m.ObserveRPC(method, code.String(), duration)

		log := logger.FromContext(ctx)
		if err != nil {
			log.Warn().
				Str("method", method).
				Str("target", cc.Target()).
				Str("code", code.String()).
				Dur("duration", duration).
				Err(err).
				Msg("backend call failed")
			return err
		}

		log.Debug().
			Str("method", method).
			Str("target", cc.Target()).
			Dur("duration", duration).
			Msg("backend call")
		return nil
	}
}
