package interceptor

import (
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// UnaryInterceptor returns the chain of interceptors of unary calls: every
// call is logged (without payloads) and panics are turned into
// codes.Internal errors.
func UnaryInterceptor() grpc.ServerOption {
	return grpc.UnaryInterceptor(
		middleware.ChainUnaryServer(
			grpc_logrus.UnaryServerInterceptor(log.NewEntry(log.StandardLogger())),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
}

// StreamInterceptor returns the chain of interceptors of streaming calls.
func StreamInterceptor() grpc.ServerOption {
	return grpc.StreamInterceptor(
		middleware.ChainStreamServer(
			grpc_logrus.StreamServerInterceptor(log.NewEntry(log.StandardLogger())),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
}
