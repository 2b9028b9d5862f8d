package grpc_interface

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	pb "github.com/vulpemventures/noir/api-spec/keygen/v1"
	appconfig "github.com/vulpemventures/noir/internal/app-config"
	grpc_handler "github.com/vulpemventures/noir/internal/interfaces/grpc/handler"
	grpc_interceptor "github.com/vulpemventures/noir/internal/interfaces/grpc/interceptor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

type service struct {
	config     ServiceConfig
	appConfig  *appconfig.AppConfig
	grpcServer *grpc.Server

	log  func(format string, a ...interface{})
	warn func(err error, format string, a ...interface{})
}

func NewService(config ServiceConfig, appConfig *appconfig.AppConfig) (*service, error) {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("service: %s", format)
		log.Infof(format, a...)
	}
	warnFn := func(err error, format string, a ...interface{}) {
		format = fmt.Sprintf("service: %s", format)
		log.WithError(err).Warnf(format, a...)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %s", err)
	}

	if !config.insecure() {
		created, err := generateTLSKeyPair(
			config.TLSLocation, config.ExtraIPs, config.ExtraDomains,
		)
		if err != nil {
			return nil, fmt.Errorf("error while creating TLS keypair: %s", err)
		}
		if created {
			logFn("created TLS keypair in path %s", config.TLSLocation)
		}
	}
	return &service{config, appConfig, nil, logFn, warnFn}, nil
}

func (s *service) Start() error {
	srv, err := s.start()
	if err != nil {
		return err
	}

	s.log("start listening on %s", s.config.address())

	s.grpcServer = srv
	return nil
}

func (s *service) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
		s.log("stopped grpc server")
	}
	s.log("shutdown")
}

func (s *service) start() (*grpc.Server, error) {
	grpcServer, err := s.newServer()
	if err != nil {
		return nil, err
	}

	lis, err := s.config.listener()
	if err != nil {
		return nil, err
	}

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			s.warn(err, "grpc server stopped serving")
		}
	}()

	return grpcServer, nil
}

func (s *service) newServer() (*grpc.Server, error) {
	grpcConfig := []grpc.ServerOption{
		grpc_interceptor.UnaryInterceptor(), grpc_interceptor.StreamInterceptor(),
	}
	if !s.config.insecure() {
		tlsConfig, err := s.config.tlsConfig()
		if err != nil {
			return nil, err
		}
		grpcConfig = append(grpcConfig, grpc.Creds(credentials.NewTLS(tlsConfig)))
	}

	grpcServer := grpc.NewServer(grpcConfig...)

	keygenHandler := grpc_handler.NewKeygenHandler(s.appConfig.KeygenService())
	pb.RegisterKeygenServiceServer(grpcServer, keygenHandler)
	s.log("registered keygen handler on public interface")

	return grpcServer, nil
}
