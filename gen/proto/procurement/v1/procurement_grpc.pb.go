// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: procurement/v1/procurement.proto

package procurementpb

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
	ProcurementService_ProcessDocument_FullMethodName        = "/procurement.v1.ProcurementService/ProcessDocument"
	ProcurementService_GetDocument_FullMethodName            = "/procurement.v1.ProcurementService/GetDocument"
	ProcurementService_ResolveSupplier_FullMethodName        = "/procurement.v1.ProcurementService/ResolveSupplier"
	ProcurementService_SuggestSupplierMatches_FullMethodName = "/procurement.v1.ProcurementService/SuggestSupplierMatches"
	ProcurementService_ListSuppliers_FullMethodName          = "/procurement.v1.ProcurementService/ListSuppliers"
	ProcurementService_ExportSuppliers_FullMethodName        = "/procurement.v1.ProcurementService/ExportSuppliers"
	ProcurementService_GetCacheStats_FullMethodName          = "/procurement.v1.ProcurementService/GetCacheStats"
)

// ProcurementServiceClient is the client API for ProcurementService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProcurementService runs documents through the extraction pipeline and
// exposes the supplier directory built from them.
type ProcurementServiceClient interface {
	// Registers a raw document and runs the full extraction pass over it.
	ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error)
	// Returns a stored document with its extracted fields and derived signals.
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	// Resolves a raw supplier name to a directory entry, creating one on miss.
	ResolveSupplier(ctx context.Context, in *ResolveSupplierRequest, opts ...grpc.CallOption) (*ResolveSupplierResponse, error)
	// Ranks existing suppliers against a candidate name without mutating anything.
	SuggestSupplierMatches(ctx context.Context, in *SuggestSupplierMatchesRequest, opts ...grpc.CallOption) (*SuggestSupplierMatchesResponse, error)
	ListSuppliers(ctx context.Context, in *ListSuppliersRequest, opts ...grpc.CallOption) (*ListSuppliersResponse, error)
	// Produces an XLSX supplier spend report for a tenant.
	ExportSuppliers(ctx context.Context, in *ExportSuppliersRequest, opts ...grpc.CallOption) (*ExportSuppliersResponse, error)
	// Extraction cache counters, including the estimated time saved.
	GetCacheStats(ctx context.Context, in *GetCacheStatsRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error)
}

type procurementServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProcurementServiceClient(cc grpc.ClientConnInterface) ProcurementServiceClient {
	return &procurementServiceClient{cc}
}

func (c *procurementServiceClient) ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentResponse)
	err := c.cc.Invoke(ctx, ProcurementService_ProcessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, ProcurementService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) ResolveSupplier(ctx context.Context, in *ResolveSupplierRequest, opts ...grpc.CallOption) (*ResolveSupplierResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveSupplierResponse)
	err := c.cc.Invoke(ctx, ProcurementService_ResolveSupplier_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) SuggestSupplierMatches(ctx context.Context, in *SuggestSupplierMatchesRequest, opts ...grpc.CallOption) (*SuggestSupplierMatchesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestSupplierMatchesResponse)
	err := c.cc.Invoke(ctx, ProcurementService_SuggestSupplierMatches_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) ListSuppliers(ctx context.Context, in *ListSuppliersRequest, opts ...grpc.CallOption) (*ListSuppliersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSuppliersResponse)
	err := c.cc.Invoke(ctx, ProcurementService_ListSuppliers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) ExportSuppliers(ctx context.Context, in *ExportSuppliersRequest, opts ...grpc.CallOption) (*ExportSuppliersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSuppliersResponse)
	err := c.cc.Invoke(ctx, ProcurementService_ExportSuppliers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procurementServiceClient) GetCacheStats(ctx context.Context, in *GetCacheStatsRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCacheStatsResponse)
	err := c.cc.Invoke(ctx, ProcurementService_GetCacheStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProcurementServiceServer is the server API for ProcurementService service.
// All implementations must embed UnimplementedProcurementServiceServer
// for forward compatibility.
//
// ProcurementService runs documents through the extraction pipeline and
// exposes the supplier directory built from them.
type ProcurementServiceServer interface {
	// Registers a raw document and runs the full extraction pass over it.
	ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error)
	// Returns a stored document with its extracted fields and derived signals.
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	// Resolves a raw supplier name to a directory entry, creating one on miss.
	ResolveSupplier(context.Context, *ResolveSupplierRequest) (*ResolveSupplierResponse, error)
	// Ranks existing suppliers against a candidate name without mutating anything.
	SuggestSupplierMatches(context.Context, *SuggestSupplierMatchesRequest) (*SuggestSupplierMatchesResponse, error)
	ListSuppliers(context.Context, *ListSuppliersRequest) (*ListSuppliersResponse, error)
	// Produces an XLSX supplier spend report for a tenant.
	ExportSuppliers(context.Context, *ExportSuppliersRequest) (*ExportSuppliersResponse, error)
	// Extraction cache counters, including the estimated time saved.
	GetCacheStats(context.Context, *GetCacheStatsRequest) (*GetCacheStatsResponse, error)
	mustEmbedUnimplementedProcurementServiceServer()
}

// UnimplementedProcurementServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProcurementServiceServer struct{}

func (UnimplementedProcurementServiceServer) ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocument not implemented")
}
func (UnimplementedProcurementServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedProcurementServiceServer) ResolveSupplier(context.Context, *ResolveSupplierRequest) (*ResolveSupplierResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveSupplier not implemented")
}
func (UnimplementedProcurementServiceServer) SuggestSupplierMatches(context.Context, *SuggestSupplierMatchesRequest) (*SuggestSupplierMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestSupplierMatches not implemented")
}
func (UnimplementedProcurementServiceServer) ListSuppliers(context.Context, *ListSuppliersRequest) (*ListSuppliersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSuppliers not implemented")
}
func (UnimplementedProcurementServiceServer) ExportSuppliers(context.Context, *ExportSuppliersRequest) (*ExportSuppliersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportSuppliers not implemented")
}
func (UnimplementedProcurementServiceServer) GetCacheStats(context.Context, *GetCacheStatsRequest) (*GetCacheStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCacheStats not implemented")
}
func (UnimplementedProcurementServiceServer) mustEmbedUnimplementedProcurementServiceServer() {}
func (UnimplementedProcurementServiceServer) testEmbeddedByValue()                            {}

// UnsafeProcurementServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProcurementServiceServer will
// result in compilation errors.
type UnsafeProcurementServiceServer interface {
	mustEmbedUnimplementedProcurementServiceServer()
}

func RegisterProcurementServiceServer(s grpc.ServiceRegistrar, srv ProcurementServiceServer) {
	// If the following call pancis, it indicates UnimplementedProcurementServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProcurementService_ServiceDesc, srv)
}

func _ProcurementService_ProcessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).ProcessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_ProcessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).ProcessDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_ResolveSupplier_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveSupplierRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).ResolveSupplier(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_ResolveSupplier_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).ResolveSupplier(ctx, req.(*ResolveSupplierRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_SuggestSupplierMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestSupplierMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).SuggestSupplierMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_SuggestSupplierMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).SuggestSupplierMatches(ctx, req.(*SuggestSupplierMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_ListSuppliers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSuppliersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).ListSuppliers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_ListSuppliers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).ListSuppliers(ctx, req.(*ListSuppliersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_ExportSuppliers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSuppliersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).ExportSuppliers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_ExportSuppliers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).ExportSuppliers(ctx, req.(*ExportSuppliersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcurementService_GetCacheStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCacheStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcurementServiceServer).GetCacheStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcurementService_GetCacheStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcurementServiceServer).GetCacheStats(ctx, req.(*GetCacheStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProcurementService_ServiceDesc is the grpc.ServiceDesc for ProcurementService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProcurementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.ProcurementService",
	HandlerType: (*ProcurementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessDocument",
			Handler:    _ProcurementService_ProcessDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _ProcurementService_GetDocument_Handler,
		},
		{
			MethodName: "ResolveSupplier",
			Handler:    _ProcurementService_ResolveSupplier_Handler,
		},
		{
			MethodName: "SuggestSupplierMatches",
			Handler:    _ProcurementService_SuggestSupplierMatches_Handler,
		},
		{
			MethodName: "ListSuppliers",
			Handler:    _ProcurementService_ListSuppliers_Handler,
		},
		{
			MethodName: "ExportSuppliers",
			Handler:    _ProcurementService_ExportSuppliers_Handler,
		},
		{
			MethodName: "GetCacheStats",
			Handler:    _ProcurementService_GetCacheStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}
