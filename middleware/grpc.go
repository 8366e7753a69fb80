package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	traceline "github.com/traceline/traceline-go"
)

// TraceMetadataKey is the gRPC metadata key carrying the trace header.
// gRPC lowercases metadata keys on the wire.
const TraceMetadataKey = "x-amzn-trace-id"

// UnaryServerInterceptor returns a server interceptor that extracts the
// inbound trace header, starting a trace when the header is missing or
// unusable.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(extractIncoming(ctx), req)
	}
}

// StreamServerInterceptor returns the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, &wrappedStream{ServerStream: ss, ctx: extractIncoming(ss.Context())})
	}
}

// UnaryClientInterceptor returns a client interceptor that injects the
// context's trace header into outgoing metadata, minting a root when the
// context carries none.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(injectOutgoing(ctx), method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor returns the streaming counterpart of
// UnaryClientInterceptor.
func StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(injectOutgoing(ctx), desc, cc, method, opts...)
	}
}

func extractIncoming(ctx context.Context) context.Context {
	var value string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceMetadataKey); len(values) > 0 {
			value = values[0]
		}
	}

	header, outcome := extractHeader(value)
	RecordPropagation("grpc", outcome)

	ctx = traceline.WithTraceID(ctx, header.Root)
	return traceline.WithTraceHeader(ctx, header)
}

func injectOutgoing(ctx context.Context) context.Context {
	header, ok := traceline.TraceHeaderFromContext(ctx)
	if !ok {
		if id, found := traceline.TraceIDFromContext(ctx); found {
			header.Root = id
		}
	}
	if !header.Root.IsValid() {
		header.Root = traceline.NewTraceID()
	}

	return metadata.AppendToOutgoingContext(ctx, TraceMetadataKey, header.String())
}

// wrappedStream overrides the stream context with the trace-enriched one.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}
