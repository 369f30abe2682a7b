// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: facturas/v1/facturas.proto

package facturasv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	FacturasService_GetDocument_FullMethodName            = "/facturas.v1.FacturasService/GetDocument"
	FacturasService_ListConsolidatedFields_FullMethodName = "/facturas.v1.FacturasService/ListConsolidatedFields"
	FacturasService_ListDocuments_FullMethodName          = "/facturas.v1.FacturasService/ListDocuments"
)

// FacturasServiceClient is the client API for FacturasService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FacturasServiceClient interface {
	// GetDocument returns the lifecycle status and metadata of one document.
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	// ListConsolidatedFields returns the committed value per field of one document.
	ListConsolidatedFields(ctx context.Context, in *ListConsolidatedFieldsRequest, opts ...grpc.CallOption) (*ListConsolidatedFieldsResponse, error)
	// ListDocuments returns documents filtered by state.
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
}

type facturasServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFacturasServiceClient(cc grpc.ClientConnInterface) FacturasServiceClient {
	return &facturasServiceClient{cc}
}

func (c *facturasServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, FacturasService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *facturasServiceClient) ListConsolidatedFields(ctx context.Context, in *ListConsolidatedFieldsRequest, opts ...grpc.CallOption) (*ListConsolidatedFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListConsolidatedFieldsResponse)
	err := c.cc.Invoke(ctx, FacturasService_ListConsolidatedFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *facturasServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, FacturasService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FacturasServiceServer is the server API for FacturasService service.
// All implementations must embed UnimplementedFacturasServiceServer
// for forward compatibility.
type FacturasServiceServer interface {
	// GetDocument returns the lifecycle status and metadata of one document.
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	// ListConsolidatedFields returns the committed value per field of one document.
	ListConsolidatedFields(context.Context, *ListConsolidatedFieldsRequest) (*ListConsolidatedFieldsResponse, error)
	// ListDocuments returns documents filtered by state.
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	mustEmbedUnimplementedFacturasServiceServer()
}

// UnimplementedFacturasServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFacturasServiceServer struct{}

func (UnimplementedFacturasServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedFacturasServiceServer) ListConsolidatedFields(context.Context, *ListConsolidatedFieldsRequest) (*ListConsolidatedFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListConsolidatedFields not implemented")
}
func (UnimplementedFacturasServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedFacturasServiceServer) mustEmbedUnimplementedFacturasServiceServer() {}
func (UnimplementedFacturasServiceServer) testEmbeddedByValue()                         {}

// UnsafeFacturasServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FacturasServiceServer will
// result in compilation errors.
type UnsafeFacturasServiceServer interface {
	mustEmbedUnimplementedFacturasServiceServer()
}

func RegisterFacturasServiceServer(s grpc.ServiceRegistrar, srv FacturasServiceServer) {
	// If the following call pancis, it indicates UnimplementedFacturasServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FacturasService_ServiceDesc, srv)
}

func _FacturasService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FacturasServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FacturasService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FacturasServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FacturasService_ListConsolidatedFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListConsolidatedFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FacturasServiceServer).ListConsolidatedFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FacturasService_ListConsolidatedFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FacturasServiceServer).ListConsolidatedFields(ctx, req.(*ListConsolidatedFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FacturasService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FacturasServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FacturasService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FacturasServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FacturasService_ServiceDesc is the grpc.ServiceDesc for FacturasService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FacturasService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "facturas.v1.FacturasService",
	HandlerType: (*FacturasServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDocument",
			Handler:    _FacturasService_GetDocument_Handler,
		},
		{
			MethodName: "ListConsolidatedFields",
			Handler:    _FacturasService_ListConsolidatedFields_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _FacturasService_ListDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "facturas/v1/facturas.proto",
}
