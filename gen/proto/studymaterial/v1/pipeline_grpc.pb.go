// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: studymaterial/v1/pipeline.proto

package studymaterialv1

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
	PipelineService_SubmitDocument_FullMethodName = "/studymaterial.v1.PipelineService/SubmitDocument"
	PipelineService_GetJobStatus_FullMethodName   = "/studymaterial.v1.PipelineService/GetJobStatus"
	PipelineService_ListJobs_FullMethodName       = "/studymaterial.v1.PipelineService/ListJobs"
	PipelineService_CancelJob_FullMethodName      = "/studymaterial.v1.PipelineService/CancelJob"
	PipelineService_ResolveReview_FullMethodName  = "/studymaterial.v1.PipelineService/ResolveReview"
)

// PipelineServiceClient is the client API for PipelineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PipelineService drives document-to-study-material jobs.
type PipelineServiceClient interface {
	// SubmitDocument validates the document and enqueues a processing job.
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	// GetJobStatus reports the job's stage, status, and progress.
	GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*JobStatus, error)
	// ListJobs returns the caller's jobs, newest first.
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	// CancelJob requests cooperative cancellation.
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*JobStatus, error)
	// ResolveReview applies a human decision to a job awaiting review.
	ResolveReview(ctx context.Context, in *ResolveReviewRequest, opts ...grpc.CallOption) (*JobStatus, error)
}

type pipelineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPipelineServiceClient(cc grpc.ClientConnInterface) PipelineServiceClient {
	return &pipelineServiceClient{cc}
}

func (c *pipelineServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, PipelineService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*JobStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JobStatus)
	err := c.cc.Invoke(ctx, PipelineService_GetJobStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, PipelineService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*JobStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JobStatus)
	err := c.cc.Invoke(ctx, PipelineService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pipelineServiceClient) ResolveReview(ctx context.Context, in *ResolveReviewRequest, opts ...grpc.CallOption) (*JobStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JobStatus)
	err := c.cc.Invoke(ctx, PipelineService_ResolveReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PipelineServiceServer is the server API for PipelineService service.
// All implementations must embed UnimplementedPipelineServiceServer
// for forward compatibility.
//
// PipelineService drives document-to-study-material jobs.
type PipelineServiceServer interface {
	// SubmitDocument validates the document and enqueues a processing job.
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	// GetJobStatus reports the job's stage, status, and progress.
	GetJobStatus(context.Context, *GetJobStatusRequest) (*JobStatus, error)
	// ListJobs returns the caller's jobs, newest first.
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	// CancelJob requests cooperative cancellation.
	CancelJob(context.Context, *CancelJobRequest) (*JobStatus, error)
	// ResolveReview applies a human decision to a job awaiting review.
	ResolveReview(context.Context, *ResolveReviewRequest) (*JobStatus, error)
	mustEmbedUnimplementedPipelineServiceServer()
}

// UnimplementedPipelineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPipelineServiceServer struct{}

func (UnimplementedPipelineServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedPipelineServiceServer) GetJobStatus(context.Context, *GetJobStatusRequest) (*JobStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedPipelineServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedPipelineServiceServer) CancelJob(context.Context, *CancelJobRequest) (*JobStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedPipelineServiceServer) ResolveReview(context.Context, *ResolveReviewRequest) (*JobStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveReview not implemented")
}
func (UnimplementedPipelineServiceServer) mustEmbedUnimplementedPipelineServiceServer() {}
func (UnimplementedPipelineServiceServer) testEmbeddedByValue()                         {}

// UnsafePipelineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PipelineServiceServer will
// result in compilation errors.
type UnsafePipelineServiceServer interface {
	mustEmbedUnimplementedPipelineServiceServer()
}

func RegisterPipelineServiceServer(s grpc.ServiceRegistrar, srv PipelineServiceServer) {
	// If the following call pancis, it indicates UnimplementedPipelineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PipelineService_ServiceDesc, srv)
}

func _PipelineService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_GetJobStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_GetJobStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).GetJobStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PipelineService_ResolveReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PipelineServiceServer).ResolveReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PipelineService_ResolveReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PipelineServiceServer).ResolveReview(ctx, req.(*ResolveReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PipelineService_ServiceDesc is the grpc.ServiceDesc for PipelineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PipelineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "studymaterial.v1.PipelineService",
	HandlerType: (*PipelineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitDocument",
			Handler:    _PipelineService_SubmitDocument_Handler,
		},
		{
			MethodName: "GetJobStatus",
			Handler:    _PipelineService_GetJobStatus_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _PipelineService_ListJobs_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _PipelineService_CancelJob_Handler,
		},
		{
			MethodName: "ResolveReview",
			Handler:    _PipelineService_ResolveReview_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "studymaterial/v1/pipeline.proto",
}

const (
	GuidesService_GetStudyGuide_FullMethodName    = "/studymaterial.v1.GuidesService/GetStudyGuide"
	GuidesService_ExportStudyGuide_FullMethodName = "/studymaterial.v1.GuidesService/ExportStudyGuide"
)

// GuidesServiceClient is the client API for GuidesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// GuidesService serves finished study guides.
type GuidesServiceClient interface {
	// GetStudyGuide returns the finished guide. Fails with FAILED_PRECONDITION
	// while the job has not completed.
	GetStudyGuide(ctx context.Context, in *GetStudyGuideRequest, opts ...grpc.CallOption) (*StudyGuide, error)
	// ExportStudyGuide returns the guide's question bank as an XLSX workbook.
	ExportStudyGuide(ctx context.Context, in *ExportStudyGuideRequest, opts ...grpc.CallOption) (*ExportStudyGuideResponse, error)
}

type guidesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGuidesServiceClient(cc grpc.ClientConnInterface) GuidesServiceClient {
	return &guidesServiceClient{cc}
}

func (c *guidesServiceClient) GetStudyGuide(ctx context.Context, in *GetStudyGuideRequest, opts ...grpc.CallOption) (*StudyGuide, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StudyGuide)
	err := c.cc.Invoke(ctx, GuidesService_GetStudyGuide_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *guidesServiceClient) ExportStudyGuide(ctx context.Context, in *ExportStudyGuideRequest, opts ...grpc.CallOption) (*ExportStudyGuideResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportStudyGuideResponse)
	err := c.cc.Invoke(ctx, GuidesService_ExportStudyGuide_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GuidesServiceServer is the server API for GuidesService service.
// All implementations must embed UnimplementedGuidesServiceServer
// for forward compatibility.
//
// GuidesService serves finished study guides.
type GuidesServiceServer interface {
	// GetStudyGuide returns the finished guide. Fails with FAILED_PRECONDITION
	// while the job has not completed.
	GetStudyGuide(context.Context, *GetStudyGuideRequest) (*StudyGuide, error)
	// ExportStudyGuide returns the guide's question bank as an XLSX workbook.
	ExportStudyGuide(context.Context, *ExportStudyGuideRequest) (*ExportStudyGuideResponse, error)
	mustEmbedUnimplementedGuidesServiceServer()
}

// UnimplementedGuidesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedGuidesServiceServer struct{}

func (UnimplementedGuidesServiceServer) GetStudyGuide(context.Context, *GetStudyGuideRequest) (*StudyGuide, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStudyGuide not implemented")
}
func (UnimplementedGuidesServiceServer) ExportStudyGuide(context.Context, *ExportStudyGuideRequest) (*ExportStudyGuideResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportStudyGuide not implemented")
}
func (UnimplementedGuidesServiceServer) mustEmbedUnimplementedGuidesServiceServer() {}
func (UnimplementedGuidesServiceServer) testEmbeddedByValue()                       {}

// UnsafeGuidesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to GuidesServiceServer will
// result in compilation errors.
type UnsafeGuidesServiceServer interface {
	mustEmbedUnimplementedGuidesServiceServer()
}

func RegisterGuidesServiceServer(s grpc.ServiceRegistrar, srv GuidesServiceServer) {
	// If the following call pancis, it indicates UnimplementedGuidesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&GuidesService_ServiceDesc, srv)
}

func _GuidesService_GetStudyGuide_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStudyGuideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GuidesServiceServer).GetStudyGuide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GuidesService_GetStudyGuide_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GuidesServiceServer).GetStudyGuide(ctx, req.(*GetStudyGuideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GuidesService_ExportStudyGuide_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportStudyGuideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GuidesServiceServer).ExportStudyGuide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GuidesService_ExportStudyGuide_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GuidesServiceServer).ExportStudyGuide(ctx, req.(*ExportStudyGuideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GuidesService_ServiceDesc is the grpc.ServiceDesc for GuidesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var GuidesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "studymaterial.v1.GuidesService",
	HandlerType: (*GuidesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStudyGuide",
			Handler:    _GuidesService_GetStudyGuide_Handler,
		},
		{
			MethodName: "ExportStudyGuide",
			Handler:    _GuidesService_ExportStudyGuide_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "studymaterial/v1/pipeline.proto",
}
