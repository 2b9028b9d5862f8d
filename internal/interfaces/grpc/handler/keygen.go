package grpc_handler

import (
	"context"

	pb "github.com/vulpemventures/noir/api-spec/keygen/v1"
	"github.com/vulpemventures/noir/internal/core/application"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type keygenHandler struct {
	keygenSvc *application.KeygenService
}

// NewKeygenHandler returns the gRPC handler of the keygen service. Failures
// of the service are reported inside the response envelope, gRPC errors are
// only returned for malformed requests.
func NewKeygenHandler(keygenSvc *application.KeygenService) pb.KeygenServiceServer {
	return &keygenHandler{keygenSvc}
}

func (h *keygenHandler) Generate(
	ctx context.Context, req *pb.GenerateRequest,
) (*pb.GenerateResponse, error) {
	res := h.keygenSvc.Generate(ctx)
	return &pb.GenerateResponse{
		Success: res.Success,
		Result:  res.Result,
		Message: res.Message,
	}, nil
}

func (h *keygenHandler) Derive(
	ctx context.Context, req *pb.DeriveRequest,
) (*pb.DeriveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing request")
	}
	res := h.keygenSvc.Derive(ctx, application.DeriveArgs{
		Mnemonic:   req.Mnemonic,
		Path:       req.Path,
		Hrp:        req.Hrp,
		Passphrase: req.Passphrase,
	})
	return parseDeriveResult(res), nil
}

func (h *keygenHandler) DeriveFromExtendedKey(
	ctx context.Context, req *pb.DeriveFromExtendedKeyRequest,
) (*pb.DeriveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing request")
	}
	res := h.keygenSvc.DeriveFromExtendedKey(ctx, application.DeriveFromExtendedKeyArgs{
		ExtendedKey: req.ExtendedKey,
		Path:        req.Path,
		Hrp:         req.Hrp,
	})
	return parseDeriveResult(res), nil
}

func (h *keygenHandler) GetInfo(
	ctx context.Context, req *pb.GetInfoRequest,
) (*pb.GetInfoResponse, error) {
	info := h.keygenSvc.GetInfo(ctx)
	return &pb.GetInfoResponse{
		Version:          info.Version,
		Commit:           info.Commit,
		Date:             info.Date,
		EntropySize:      info.EntropySize,
		AddressFormat:    info.AddressFormat,
		SupportedFormats: info.SupportedFormats,
		MaxConcurrency:   info.MaxConcurrency,
	}, nil
}

func parseDeriveResult(
	res application.Envelope[*application.DerivedKeyInfo],
) *pb.DeriveResponse {
	resp := &pb.DeriveResponse{
		Success: res.Success,
		Message: res.Message,
	}
	if key := res.Result; key != nil {
		resp.Result = &pb.DerivedKey{
			Address:           key.Address,
			PublicKey:         key.PublicKey,
			PrivateKey:        key.PrivateKey,
			ExtendedPublicKey: key.ExtendedPublicKey,
			Path:              key.Path,
			Addresses:         key.Addresses,
		}
	}
	return resp
}
