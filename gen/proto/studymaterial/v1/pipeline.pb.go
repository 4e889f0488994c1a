// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: studymaterial/v1/pipeline.proto

package studymaterialv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Preferences struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	CourseName        string                 `protobuf:"bytes,1,opt,name=course_name,json=courseName,proto3" json:"course_name,omitempty"`
	Topic             string                 `protobuf:"bytes,2,opt,name=topic,proto3" json:"topic,omitempty"`
	DifficultyLevel   string                 `protobuf:"bytes,3,opt,name=difficulty_level,json=difficultyLevel,proto3" json:"difficulty_level,omitempty"` // beginner | intermediate | advanced
	DetailLevel       string                 `protobuf:"bytes,4,opt,name=detail_level,json=detailLevel,proto3" json:"detail_level,omitempty"`             // brief | standard | detailed
	IncludeQuestions  bool                   `protobuf:"varint,5,opt,name=include_questions,json=includeQuestions,proto3" json:"include_questions,omitempty"`
	IncludeConceptMap bool                   `protobuf:"varint,6,opt,name=include_concept_map,json=includeConceptMap,proto3" json:"include_concept_map,omitempty"`
	IncludeFlashcards bool                   `protobuf:"varint,7,opt,name=include_flashcards,json=includeFlashcards,proto3" json:"include_flashcards,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Preferences) Reset() {
	*x = Preferences{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Preferences) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Preferences) ProtoMessage() {}

func (x *Preferences) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Preferences.ProtoReflect.Descriptor instead.
func (*Preferences) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{0}
}

func (x *Preferences) GetCourseName() string {
	if x != nil {
		return x.CourseName
	}
	return ""
}

func (x *Preferences) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *Preferences) GetDifficultyLevel() string {
	if x != nil {
		return x.DifficultyLevel
	}
	return ""
}

func (x *Preferences) GetDetailLevel() string {
	if x != nil {
		return x.DetailLevel
	}
	return ""
}

func (x *Preferences) GetIncludeQuestions() bool {
	if x != nil {
		return x.IncludeQuestions
	}
	return false
}

func (x *Preferences) GetIncludeConceptMap() bool {
	if x != nil {
		return x.IncludeConceptMap
	}
	return false
}

func (x *Preferences) GetIncludeFlashcards() bool {
	if x != nil {
		return x.IncludeFlashcards
	}
	return false
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentRef   string                 `protobuf:"bytes,2,opt,name=document_ref,json=documentRef,proto3" json:"document_ref,omitempty"`
	Preferences   *Preferences           `protobuf:"bytes,3,opt,name=preferences,proto3" json:"preferences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetDocumentRef() string {
	if x != nil {
		return x.DocumentRef
	}
	return ""
}

func (x *SubmitDocumentRequest) GetPreferences() *Preferences {
	if x != nil {
		return x.Preferences
	}
	return nil
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *SubmitDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Progress      int32                  `protobuf:"varint,4,opt,name=progress,proto3" json:"progress,omitempty"`
	Message       string                 `protobuf:"bytes,5,opt,name=message,proto3" json:"message,omitempty"`
	ReasonCode    string                 `protobuf:"bytes,6,opt,name=reason_code,json=reasonCode,proto3" json:"reason_code,omitempty"`
	TokensUsed    int64                  `protobuf:"varint,7,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	SpendUsd      float64                `protobuf:"fixed64,8,opt,name=spend_usd,json=spendUsd,proto3" json:"spend_usd,omitempty"`
	GuideId       string                 `protobuf:"bytes,9,opt,name=guide_id,json=guideId,proto3" json:"guide_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,12,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobStatus) Reset() {
	*x = JobStatus{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobStatus) ProtoMessage() {}

func (x *JobStatus) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobStatus.ProtoReflect.Descriptor instead.
func (*JobStatus) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{4}
}

func (x *JobStatus) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobStatus) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *JobStatus) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobStatus) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *JobStatus) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *JobStatus) GetReasonCode() string {
	if x != nil {
		return x.ReasonCode
	}
	return ""
}

func (x *JobStatus) GetTokensUsed() int64 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

func (x *JobStatus) GetSpendUsd() float64 {
	if x != nil {
		return x.SpendUsd
	}
	return 0
}

func (x *JobStatus) GetGuideId() string {
	if x != nil {
		return x.GuideId
	}
	return ""
}

func (x *JobStatus) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobStatus) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *JobStatus) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*JobStatus           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*JobStatus {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{7}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ResolveReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Approve       bool                   `protobuf:"varint,2,opt,name=approve,proto3" json:"approve,omitempty"`
	Note          string                 `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveReviewRequest) Reset() {
	*x = ResolveReviewRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveReviewRequest) ProtoMessage() {}

func (x *ResolveReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveReviewRequest.ProtoReflect.Descriptor instead.
func (*ResolveReviewRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{8}
}

func (x *ResolveReviewRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ResolveReviewRequest) GetApprove() bool {
	if x != nil {
		return x.Approve
	}
	return false
}

func (x *ResolveReviewRequest) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type GetStudyGuideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudyGuideRequest) Reset() {
	*x = GetStudyGuideRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudyGuideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudyGuideRequest) ProtoMessage() {}

func (x *GetStudyGuideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudyGuideRequest.ProtoReflect.Descriptor instead.
func (*GetStudyGuideRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{9}
}

func (x *GetStudyGuideRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type StudyGuide struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GuideId       string                 `protobuf:"bytes,1,opt,name=guide_id,json=guideId,proto3" json:"guide_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"` // StudyGuideContent JSON
	DetailLevel   string                 `protobuf:"bytes,5,opt,name=detail_level,json=detailLevel,proto3" json:"detail_level,omitempty"`
	QuestionCount int32                  `protobuf:"varint,6,opt,name=question_count,json=questionCount,proto3" json:"question_count,omitempty"`
	ConceptCount  int32                  `protobuf:"varint,7,opt,name=concept_count,json=conceptCount,proto3" json:"concept_count,omitempty"`
	QaScore       float32                `protobuf:"fixed32,8,opt,name=qa_score,json=qaScore,proto3" json:"qa_score,omitempty"`
	GeneratedAt   string                 `protobuf:"bytes,9,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StudyGuide) Reset() {
	*x = StudyGuide{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StudyGuide) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StudyGuide) ProtoMessage() {}

func (x *StudyGuide) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StudyGuide.ProtoReflect.Descriptor instead.
func (*StudyGuide) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{10}
}

func (x *StudyGuide) GetGuideId() string {
	if x != nil {
		return x.GuideId
	}
	return ""
}

func (x *StudyGuide) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StudyGuide) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *StudyGuide) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *StudyGuide) GetDetailLevel() string {
	if x != nil {
		return x.DetailLevel
	}
	return ""
}

func (x *StudyGuide) GetQuestionCount() int32 {
	if x != nil {
		return x.QuestionCount
	}
	return 0
}

func (x *StudyGuide) GetConceptCount() int32 {
	if x != nil {
		return x.ConceptCount
	}
	return 0
}

func (x *StudyGuide) GetQaScore() float32 {
	if x != nil {
		return x.QaScore
	}
	return 0
}

func (x *StudyGuide) GetGeneratedAt() string {
	if x != nil {
		return x.GeneratedAt
	}
	return ""
}

type ExportStudyGuideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStudyGuideRequest) Reset() {
	*x = ExportStudyGuideRequest{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStudyGuideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStudyGuideRequest) ProtoMessage() {}

func (x *ExportStudyGuideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStudyGuideRequest.ProtoReflect.Descriptor instead.
func (*ExportStudyGuideRequest) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{11}
}

func (x *ExportStudyGuideRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportStudyGuideResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStudyGuideResponse) Reset() {
	*x = ExportStudyGuideResponse{}
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStudyGuideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStudyGuideResponse) ProtoMessage() {}

func (x *ExportStudyGuideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_studymaterial_v1_pipeline_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStudyGuideResponse.ProtoReflect.Descriptor instead.
func (*ExportStudyGuideResponse) Descriptor() ([]byte, []int) {
	return file_studymaterial_v1_pipeline_proto_rawDescGZIP(), []int{12}
}

func (x *ExportStudyGuideResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportStudyGuideResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_studymaterial_v1_pipeline_proto protoreflect.FileDescriptor

const file_studymaterial_v1_pipeline_proto_rawDesc = "" +
	"\n" +
	"\x1fstudymaterial/v1/pipeline.proto\x12\x10studymaterial.v1\"\x9e\x02\n" +
	"\vPreferences\x12\x1f\n" +
	"\vcourse_name\x18\x01 \x01(\tR\n" +
	"courseName\x12\x14\n" +
	"\x05topic\x18\x02 \x01(\tR\x05topic\x12)\n" +
	"\x10difficulty_level\x18\x03 \x01(\tR\x0fdifficultyLevel\x12!\n" +
	"\fdetail_level\x18\x04 \x01(\tR\vdetailLevel\x12+\n" +
	"\x11include_questions\x18\x05 \x01(\bR\x10includeQuestions\x12.\n" +
	"\x13include_concept_map\x18\x06 \x01(\bR\x11includeConceptMap\x12-\n" +
	"\x12include_flashcards\x18\a \x01(\bR\x11includeFlashcards\"\x94\x01\n" +
	"\x15SubmitDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12!\n" +
	"\fdocument_ref\x18\x02 \x01(\tR\vdocumentRef\x12?\n" +
	"\vpreferences\x18\x03 \x01(\v2\x1d.studymaterial.v1.PreferencesR\vpreferences\"_\n" +
	"\x16SubmitDocumentResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xdf\x02\n" +
	"\tJobStatus\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x04 \x01(\x05R\bprogress\x12\x18\n" +
	"\amessage\x18\x05 \x01(\tR\amessage\x12\x1f\n" +
	"\vreason_code\x18\x06 \x01(\tR\n" +
	"reasonCode\x12\x1f\n" +
	"\vtokens_used\x18\a \x01(\x03R\n" +
	"tokensUsed\x12\x1b\n" +
	"\tspend_usd\x18\b \x01(\x01R\bspendUsd\x12\x19\n" +
	"\bguide_id\x18\t \x01(\tR\aguideId\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\x12\x1f\n" +
	"\vfinished_at\x18\f \x01(\tR\n" +
	"finishedAt\"@\n" +
	"\x0fListJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"C\n" +
	"\x10ListJobsResponse\x12/\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1b.studymaterial.v1.JobStatusR\x04jobs\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"[\n" +
	"\x14ResolveReviewRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x18\n" +
	"\aapprove\x18\x02 \x01(\bR\aapprove\x12\x12\n" +
	"\x04note\x18\x03 \x01(\tR\x04note\"-\n" +
	"\x14GetStudyGuideRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x9b\x02\n" +
	"\n" +
	"StudyGuide\x12\x19\n" +
	"\bguide_id\x18\x01 \x01(\tR\aguideId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\x12!\n" +
	"\fdetail_level\x18\x05 \x01(\tR\vdetailLevel\x12%\n" +
	"\x0equestion_count\x18\x06 \x01(\x05R\rquestionCount\x12#\n" +
	"\rconcept_count\x18\a \x01(\x05R\fconceptCount\x12\x19\n" +
	"\bqa_score\x18\b \x01(\x02R\aqaScore\x12!\n" +
	"\fgenerated_at\x18\t \x01(\tR\vgeneratedAt\"0\n" +
	"\x17ExportStudyGuideRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"J\n" +
	"\x18ExportStudyGuideResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xc1\x03\n" +
	"\x0fPipelineService\x12c\n" +
	"\x0eSubmitDocument\x12'.studymaterial.v1.SubmitDocumentRequest\x1a(.studymaterial.v1.SubmitDocumentResponse\x12R\n" +
	"\fGetJobStatus\x12%.studymaterial.v1.GetJobStatusRequest\x1a\x1b.studymaterial.v1.JobStatus\x12Q\n" +
	"\bListJobs\x12!.studymaterial.v1.ListJobsRequest\x1a\".studymaterial.v1.ListJobsResponse\x12L\n" +
	"\tCancelJob\x12\".studymaterial.v1.CancelJobRequest\x1a\x1b.studymaterial.v1.JobStatus\x12T\n" +
	"\rResolveReview\x12&.studymaterial.v1.ResolveReviewRequest\x1a\x1b.studymaterial.v1.JobStatus2\xd1\x01\n" +
	"\rGuidesService\x12U\n" +
	"\rGetStudyGuide\x12&.studymaterial.v1.GetStudyGuideRequest\x1a\x1c.studymaterial.v1.StudyGuide\x12i\n" +
	"\x10ExportStudyGuide\x12).studymaterial.v1.ExportStudyGuideRequest\x1a*.studymaterial.v1.ExportStudyGuideResponseBkZigithub.com/gagni555/course-content-to-study-material-generator/gen/proto/studymaterial/v1;studymaterialv1b\x06proto3"

var (
	file_studymaterial_v1_pipeline_proto_rawDescOnce sync.Once
	file_studymaterial_v1_pipeline_proto_rawDescData []byte
)

func file_studymaterial_v1_pipeline_proto_rawDescGZIP() []byte {
	file_studymaterial_v1_pipeline_proto_rawDescOnce.Do(func() {
		file_studymaterial_v1_pipeline_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_studymaterial_v1_pipeline_proto_rawDesc), len(file_studymaterial_v1_pipeline_proto_rawDesc)))
	})
	return file_studymaterial_v1_pipeline_proto_rawDescData
}

var file_studymaterial_v1_pipeline_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_studymaterial_v1_pipeline_proto_goTypes = []any{
	(*Preferences)(nil),              // 0: studymaterial.v1.Preferences
	(*SubmitDocumentRequest)(nil),    // 1: studymaterial.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),   // 2: studymaterial.v1.SubmitDocumentResponse
	(*GetJobStatusRequest)(nil),      // 3: studymaterial.v1.GetJobStatusRequest
	(*JobStatus)(nil),                // 4: studymaterial.v1.JobStatus
	(*ListJobsRequest)(nil),          // 5: studymaterial.v1.ListJobsRequest
	(*ListJobsResponse)(nil),         // 6: studymaterial.v1.ListJobsResponse
	(*CancelJobRequest)(nil),         // 7: studymaterial.v1.CancelJobRequest
	(*ResolveReviewRequest)(nil),     // 8: studymaterial.v1.ResolveReviewRequest
	(*GetStudyGuideRequest)(nil),     // 9: studymaterial.v1.GetStudyGuideRequest
	(*StudyGuide)(nil),               // 10: studymaterial.v1.StudyGuide
	(*ExportStudyGuideRequest)(nil),  // 11: studymaterial.v1.ExportStudyGuideRequest
	(*ExportStudyGuideResponse)(nil), // 12: studymaterial.v1.ExportStudyGuideResponse
}
var file_studymaterial_v1_pipeline_proto_depIdxs = []int32{
	0,  // 0: studymaterial.v1.SubmitDocumentRequest.preferences:type_name -> studymaterial.v1.Preferences
	4,  // 1: studymaterial.v1.ListJobsResponse.jobs:type_name -> studymaterial.v1.JobStatus
	1,  // 2: studymaterial.v1.PipelineService.SubmitDocument:input_type -> studymaterial.v1.SubmitDocumentRequest
	3,  // 3: studymaterial.v1.PipelineService.GetJobStatus:input_type -> studymaterial.v1.GetJobStatusRequest
	5,  // 4: studymaterial.v1.PipelineService.ListJobs:input_type -> studymaterial.v1.ListJobsRequest
	7,  // 5: studymaterial.v1.PipelineService.CancelJob:input_type -> studymaterial.v1.CancelJobRequest
	8,  // 6: studymaterial.v1.PipelineService.ResolveReview:input_type -> studymaterial.v1.ResolveReviewRequest
	9,  // 7: studymaterial.v1.GuidesService.GetStudyGuide:input_type -> studymaterial.v1.GetStudyGuideRequest
	11, // 8: studymaterial.v1.GuidesService.ExportStudyGuide:input_type -> studymaterial.v1.ExportStudyGuideRequest
	2,  // 9: studymaterial.v1.PipelineService.SubmitDocument:output_type -> studymaterial.v1.SubmitDocumentResponse
	4,  // 10: studymaterial.v1.PipelineService.GetJobStatus:output_type -> studymaterial.v1.JobStatus
	6,  // 11: studymaterial.v1.PipelineService.ListJobs:output_type -> studymaterial.v1.ListJobsResponse
	4,  // 12: studymaterial.v1.PipelineService.CancelJob:output_type -> studymaterial.v1.JobStatus
	4,  // 13: studymaterial.v1.PipelineService.ResolveReview:output_type -> studymaterial.v1.JobStatus
	10, // 14: studymaterial.v1.GuidesService.GetStudyGuide:output_type -> studymaterial.v1.StudyGuide
	12, // 15: studymaterial.v1.GuidesService.ExportStudyGuide:output_type -> studymaterial.v1.ExportStudyGuideResponse
	9,  // [9:16] is the sub-list for method output_type
	2,  // [2:9] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_studymaterial_v1_pipeline_proto_init() }
func file_studymaterial_v1_pipeline_proto_init() {
	if File_studymaterial_v1_pipeline_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_studymaterial_v1_pipeline_proto_rawDesc), len(file_studymaterial_v1_pipeline_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_studymaterial_v1_pipeline_proto_goTypes,
		DependencyIndexes: file_studymaterial_v1_pipeline_proto_depIdxs,
		MessageInfos:      file_studymaterial_v1_pipeline_proto_msgTypes,
	}.Build()
	File_studymaterial_v1_pipeline_proto = out.File
	file_studymaterial_v1_pipeline_proto_goTypes = nil
	file_studymaterial_v1_pipeline_proto_depIdxs = nil
}
