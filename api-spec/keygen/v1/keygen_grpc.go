package keygenv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	KeygenService_ServiceName                          = "noir.v1.KeygenService"
	KeygenService_Generate_FullMethodName              = "/noir.v1.KeygenService/Generate"
	KeygenService_Derive_FullMethodName                = "/noir.v1.KeygenService/Derive"
	KeygenService_DeriveFromExtendedKey_FullMethodName = "/noir.v1.KeygenService/DeriveFromExtendedKey"
	KeygenService_GetInfo_FullMethodName               = "/noir.v1.KeygenService/GetInfo"
)

// KeygenServiceClient is the client API for KeygenService service.
type KeygenServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	Derive(ctx context.Context, in *DeriveRequest, opts ...grpc.CallOption) (*DeriveResponse, error)
	DeriveFromExtendedKey(ctx context.Context, in *DeriveFromExtendedKeyRequest, opts ...grpc.CallOption) (*DeriveResponse, error)
	GetInfo(ctx context.Context, in *GetInfoRequest, opts ...grpc.CallOption) (*GetInfoResponse, error)
}

type keygenServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewKeygenServiceClient(cc grpc.ClientConnInterface) KeygenServiceClient {
	return &keygenServiceClient{cc}
}

func (c *keygenServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	out := new(GenerateResponse)
	if err := c.cc.Invoke(ctx, KeygenService_Generate_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keygenServiceClient) Derive(ctx context.Context, in *DeriveRequest, opts ...grpc.CallOption) (*DeriveResponse, error) {
	out := new(DeriveResponse)
	if err := c.cc.Invoke(ctx, KeygenService_Derive_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keygenServiceClient) DeriveFromExtendedKey(ctx context.Context, in *DeriveFromExtendedKeyRequest, opts ...grpc.CallOption) (*DeriveResponse, error) {
	out := new(DeriveResponse)
	if err := c.cc.Invoke(ctx, KeygenService_DeriveFromExtendedKey_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keygenServiceClient) GetInfo(ctx context.Context, in *GetInfoRequest, opts ...grpc.CallOption) (*GetInfoResponse, error) {
	out := new(GetInfoResponse)
	if err := c.cc.Invoke(ctx, KeygenService_GetInfo_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

// KeygenServiceServer is the server API for KeygenService service.
type KeygenServiceServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	Derive(context.Context, *DeriveRequest) (*DeriveResponse, error)
	DeriveFromExtendedKey(context.Context, *DeriveFromExtendedKeyRequest) (*DeriveResponse, error)
	GetInfo(context.Context, *GetInfoRequest) (*GetInfoResponse, error)
}

// UnimplementedKeygenServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedKeygenServiceServer struct{}

func (UnimplementedKeygenServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Generate not implemented")
}

func (UnimplementedKeygenServiceServer) Derive(context.Context, *DeriveRequest) (*DeriveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Derive not implemented")
}

func (UnimplementedKeygenServiceServer) DeriveFromExtendedKey(context.Context, *DeriveFromExtendedKeyRequest) (*DeriveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeriveFromExtendedKey not implemented")
}

func (UnimplementedKeygenServiceServer) GetInfo(context.Context, *GetInfoRequest) (*GetInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInfo not implemented")
}

func RegisterKeygenServiceServer(s grpc.ServiceRegistrar, srv KeygenServiceServer) {
	s.RegisterService(&KeygenService_ServiceDesc, srv)
}

func _KeygenService_Generate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeygenServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KeygenService_Generate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeygenServiceServer).Generate(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KeygenService_Derive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeriveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeygenServiceServer).Derive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KeygenService_Derive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeygenServiceServer).Derive(ctx, req.(*DeriveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KeygenService_DeriveFromExtendedKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeriveFromExtendedKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeygenServiceServer).DeriveFromExtendedKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KeygenService_DeriveFromExtendedKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeygenServiceServer).DeriveFromExtendedKey(ctx, req.(*DeriveFromExtendedKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _KeygenService_GetInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeygenServiceServer).GetInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: KeygenService_GetInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeygenServiceServer).GetInfo(ctx, req.(*GetInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// KeygenService_ServiceDesc is the grpc.ServiceDesc for KeygenService service.
var KeygenService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: KeygenService_ServiceName,
	HandlerType: (*KeygenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    _KeygenService_Generate_Handler,
		},
		{
			MethodName: "Derive",
			Handler:    _KeygenService_Derive_Handler,
		},
		{
			MethodName: "DeriveFromExtendedKey",
			Handler:    _KeygenService_DeriveFromExtendedKey_Handler,
		},
		{
			MethodName: "GetInfo",
			Handler:    _KeygenService_GetInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "noir/v1/keygen.json",
}
