// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: procurement/v1/procurement.proto

package procurementpb

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

type CanonicalFields struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	SupplierName    *string                `protobuf:"bytes,1,opt,name=supplier_name,json=supplierName,proto3,oneof" json:"supplier_name,omitempty"`
	SupplierAddress *string                `protobuf:"bytes,2,opt,name=supplier_address,json=supplierAddress,proto3,oneof" json:"supplier_address,omitempty"`
	SupplierPhone   *string                `protobuf:"bytes,3,opt,name=supplier_phone,json=supplierPhone,proto3,oneof" json:"supplier_phone,omitempty"`
	SupplierEmail   *string                `protobuf:"bytes,4,opt,name=supplier_email,json=supplierEmail,proto3,oneof" json:"supplier_email,omitempty"`
	SupplierTaxId   *string                `protobuf:"bytes,5,opt,name=supplier_tax_id,json=supplierTaxId,proto3,oneof" json:"supplier_tax_id,omitempty"`
	Amount          *float64               `protobuf:"fixed64,6,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	Currency        *string                `protobuf:"bytes,7,opt,name=currency,proto3,oneof" json:"currency,omitempty"`
	TaxAmount       *float64               `protobuf:"fixed64,8,opt,name=tax_amount,json=taxAmount,proto3,oneof" json:"tax_amount,omitempty"`
	TotalAmount     *float64               `protobuf:"fixed64,9,opt,name=total_amount,json=totalAmount,proto3,oneof" json:"total_amount,omitempty"`
	IssueDate       *string                `protobuf:"bytes,10,opt,name=issue_date,json=issueDate,proto3,oneof" json:"issue_date,omitempty"` // YYYY-MM-DD
	DueDate         *string                `protobuf:"bytes,11,opt,name=due_date,json=dueDate,proto3,oneof" json:"due_date,omitempty"`       // YYYY-MM-DD
	DocumentNumber  *string                `protobuf:"bytes,12,opt,name=document_number,json=documentNumber,proto3,oneof" json:"document_number,omitempty"`
	LineItems       []*LineItem            `protobuf:"bytes,13,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	ConfidenceScore *float64               `protobuf:"fixed64,14,opt,name=confidence_score,json=confidenceScore,proto3,oneof" json:"confidence_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CanonicalFields) Reset() {
	*x = CanonicalFields{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CanonicalFields) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CanonicalFields) ProtoMessage() {}

func (x *CanonicalFields) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CanonicalFields.ProtoReflect.Descriptor instead.
func (*CanonicalFields) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{0}
}

func (x *CanonicalFields) GetSupplierName() string {
	if x != nil && x.SupplierName != nil {
		return *x.SupplierName
	}
	return ""
}

func (x *CanonicalFields) GetSupplierAddress() string {
	if x != nil && x.SupplierAddress != nil {
		return *x.SupplierAddress
	}
	return ""
}

func (x *CanonicalFields) GetSupplierPhone() string {
	if x != nil && x.SupplierPhone != nil {
		return *x.SupplierPhone
	}
	return ""
}

func (x *CanonicalFields) GetSupplierEmail() string {
	if x != nil && x.SupplierEmail != nil {
		return *x.SupplierEmail
	}
	return ""
}

func (x *CanonicalFields) GetSupplierTaxId() string {
	if x != nil && x.SupplierTaxId != nil {
		return *x.SupplierTaxId
	}
	return ""
}

func (x *CanonicalFields) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *CanonicalFields) GetCurrency() string {
	if x != nil && x.Currency != nil {
		return *x.Currency
	}
	return ""
}

func (x *CanonicalFields) GetTaxAmount() float64 {
	if x != nil && x.TaxAmount != nil {
		return *x.TaxAmount
	}
	return 0
}

func (x *CanonicalFields) GetTotalAmount() float64 {
	if x != nil && x.TotalAmount != nil {
		return *x.TotalAmount
	}
	return 0
}

func (x *CanonicalFields) GetIssueDate() string {
	if x != nil && x.IssueDate != nil {
		return *x.IssueDate
	}
	return ""
}

func (x *CanonicalFields) GetDueDate() string {
	if x != nil && x.DueDate != nil {
		return *x.DueDate
	}
	return ""
}

func (x *CanonicalFields) GetDocumentNumber() string {
	if x != nil && x.DocumentNumber != nil {
		return *x.DocumentNumber
	}
	return ""
}

func (x *CanonicalFields) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *CanonicalFields) GetConfidenceScore() float64 {
	if x != nil && x.ConfidenceScore != nil {
		return *x.ConfidenceScore
	}
	return 0
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	TotalPrice    float64                `protobuf:"fixed64,4,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{1}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetTotalPrice() float64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	DocumentType  string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // Invoice, Contract, Purchase Order, Quote, Receipt, Delivery Note, Other
	RawText       string                 `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ProcessDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ProcessDocumentRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ProcessDocumentResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DocumentId       string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId            string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Fields           *CanonicalFields       `protobuf:"bytes,3,opt,name=fields,proto3" json:"fields,omitempty"`
	ModelUsed        string                 `protobuf:"bytes,4,opt,name=model_used,json=modelUsed,proto3" json:"model_used,omitempty"`
	ConfidenceScore  float64                `protobuf:"fixed64,5,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	CacheHit         bool                   `protobuf:"varint,6,opt,name=cache_hit,json=cacheHit,proto3" json:"cache_hit,omitempty"`
	Corrections      []string               `protobuf:"bytes,7,rep,name=corrections,proto3" json:"corrections,omitempty"`
	ProcessingTimeMs int64                  `protobuf:"varint,8,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	Supplier         *Supplier              `protobuf:"bytes,9,opt,name=supplier,proto3,oneof" json:"supplier,omitempty"`
	SupplierCreated  bool                   `protobuf:"varint,10,opt,name=supplier_created,json=supplierCreated,proto3" json:"supplier_created,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetFields() *CanonicalFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ProcessDocumentResponse) GetModelUsed() string {
	if x != nil {
		return x.ModelUsed
	}
	return ""
}

func (x *ProcessDocumentResponse) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *ProcessDocumentResponse) GetCacheHit() bool {
	if x != nil {
		return x.CacheHit
	}
	return false
}

func (x *ProcessDocumentResponse) GetCorrections() []string {
	if x != nil {
		return x.Corrections
	}
	return nil
}

func (x *ProcessDocumentResponse) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

func (x *ProcessDocumentResponse) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

func (x *ProcessDocumentResponse) GetSupplierCreated() bool {
	if x != nil {
		return x.SupplierCreated
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId      string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	DocumentType  string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	SupplierId    *string                `protobuf:"bytes,6,opt,name=supplier_id,json=supplierId,proto3,oneof" json:"supplier_id,omitempty"`
	Fields        *CanonicalFields       `protobuf:"bytes,7,opt,name=fields,proto3" json:"fields,omitempty"`
	Processed     bool                   `protobuf:"varint,8,opt,name=processed,proto3" json:"processed,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *Document) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetSupplierId() string {
	if x != nil && x.SupplierId != nil {
		return *x.SupplierId
	}
	return ""
}

func (x *Document) GetFields() *CanonicalFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Document) GetProcessed() bool {
	if x != nil {
		return x.Processed
	}
	return false
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type DocumentSignals struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ComplianceScore  int32                  `protobuf:"varint,1,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	ComplianceLevel  string                 `protobuf:"bytes,2,opt,name=compliance_level,json=complianceLevel,proto3" json:"compliance_level,omitempty"` // compliant, partially_compliant, non_compliant
	RiskScore        int32                  `protobuf:"varint,3,opt,name=risk_score,json=riskScore,proto3" json:"risk_score,omitempty"`
	RiskLevel        string                 `protobuf:"bytes,4,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"` // low, medium, high
	ApprovalPriority string                 `protobuf:"bytes,5,opt,name=approval_priority,json=approvalPriority,proto3" json:"approval_priority,omitempty"`
	RenewalUrgency   string                 `protobuf:"bytes,6,opt,name=renewal_urgency,json=renewalUrgency,proto3" json:"renewal_urgency,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DocumentSignals) Reset() {
	*x = DocumentSignals{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentSignals) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentSignals) ProtoMessage() {}

func (x *DocumentSignals) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentSignals.ProtoReflect.Descriptor instead.
func (*DocumentSignals) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{6}
}

func (x *DocumentSignals) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

func (x *DocumentSignals) GetComplianceLevel() string {
	if x != nil {
		return x.ComplianceLevel
	}
	return ""
}

func (x *DocumentSignals) GetRiskScore() int32 {
	if x != nil {
		return x.RiskScore
	}
	return 0
}

func (x *DocumentSignals) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

func (x *DocumentSignals) GetApprovalPriority() string {
	if x != nil {
		return x.ApprovalPriority
	}
	return ""
}

func (x *DocumentSignals) GetRenewalUrgency() string {
	if x != nil {
		return x.RenewalUrgency
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Signals       *DocumentSignals       `protobuf:"bytes,2,opt,name=signals,proto3" json:"signals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetSignals() *DocumentSignals {
	if x != nil {
		return x.Signals
	}
	return nil
}

type Supplier struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId          string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Name              string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NormalizedName    string                 `protobuf:"bytes,4,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	ContactEmail      *string                `protobuf:"bytes,5,opt,name=contact_email,json=contactEmail,proto3,oneof" json:"contact_email,omitempty"`
	ContactPhone      *string                `protobuf:"bytes,6,opt,name=contact_phone,json=contactPhone,proto3,oneof" json:"contact_phone,omitempty"`
	ContactAddress    *string                `protobuf:"bytes,7,opt,name=contact_address,json=contactAddress,proto3,oneof" json:"contact_address,omitempty"`
	TaxId             *string                `protobuf:"bytes,8,opt,name=tax_id,json=taxId,proto3,oneof" json:"tax_id,omitempty"`
	TotalSpend        float64                `protobuf:"fixed64,9,opt,name=total_spend,json=totalSpend,proto3" json:"total_spend,omitempty"`
	PerformanceRating float64                `protobuf:"fixed64,10,opt,name=performance_rating,json=performanceRating,proto3" json:"performance_rating,omitempty"`
	Status            string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"` // active, inactive, suspended
	CreatedAt         string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Supplier) Reset() {
	*x = Supplier{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Supplier) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Supplier) ProtoMessage() {}

func (x *Supplier) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Supplier.ProtoReflect.Descriptor instead.
func (*Supplier) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{8}
}

func (x *Supplier) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Supplier) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *Supplier) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Supplier) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *Supplier) GetContactEmail() string {
	if x != nil && x.ContactEmail != nil {
		return *x.ContactEmail
	}
	return ""
}

func (x *Supplier) GetContactPhone() string {
	if x != nil && x.ContactPhone != nil {
		return *x.ContactPhone
	}
	return ""
}

func (x *Supplier) GetContactAddress() string {
	if x != nil && x.ContactAddress != nil {
		return *x.ContactAddress
	}
	return ""
}

func (x *Supplier) GetTaxId() string {
	if x != nil && x.TaxId != nil {
		return *x.TaxId
	}
	return ""
}

func (x *Supplier) GetTotalSpend() float64 {
	if x != nil {
		return x.TotalSpend
	}
	return 0
}

func (x *Supplier) GetPerformanceRating() float64 {
	if x != nil {
		return x.PerformanceRating
	}
	return 0
}

func (x *Supplier) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Supplier) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Supplier) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ResolveSupplierRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TenantId       string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Amount         float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	ContactEmail   *string                `protobuf:"bytes,4,opt,name=contact_email,json=contactEmail,proto3,oneof" json:"contact_email,omitempty"`
	ContactPhone   *string                `protobuf:"bytes,5,opt,name=contact_phone,json=contactPhone,proto3,oneof" json:"contact_phone,omitempty"`
	ContactAddress *string                `protobuf:"bytes,6,opt,name=contact_address,json=contactAddress,proto3,oneof" json:"contact_address,omitempty"`
	TaxId          *string                `protobuf:"bytes,7,opt,name=tax_id,json=taxId,proto3,oneof" json:"tax_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ResolveSupplierRequest) Reset() {
	*x = ResolveSupplierRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveSupplierRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveSupplierRequest) ProtoMessage() {}

func (x *ResolveSupplierRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveSupplierRequest.ProtoReflect.Descriptor instead.
func (*ResolveSupplierRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{9}
}

func (x *ResolveSupplierRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ResolveSupplierRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ResolveSupplierRequest) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *ResolveSupplierRequest) GetContactEmail() string {
	if x != nil && x.ContactEmail != nil {
		return *x.ContactEmail
	}
	return ""
}

func (x *ResolveSupplierRequest) GetContactPhone() string {
	if x != nil && x.ContactPhone != nil {
		return *x.ContactPhone
	}
	return ""
}

func (x *ResolveSupplierRequest) GetContactAddress() string {
	if x != nil && x.ContactAddress != nil {
		return *x.ContactAddress
	}
	return ""
}

func (x *ResolveSupplierRequest) GetTaxId() string {
	if x != nil && x.TaxId != nil {
		return *x.TaxId
	}
	return ""
}

type ResolveSupplierResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      *Supplier              `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Created       bool                   `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveSupplierResponse) Reset() {
	*x = ResolveSupplierResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveSupplierResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveSupplierResponse) ProtoMessage() {}

func (x *ResolveSupplierResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveSupplierResponse.ProtoReflect.Descriptor instead.
func (*ResolveSupplierResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{10}
}

func (x *ResolveSupplierResponse) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

func (x *ResolveSupplierResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type SuggestSupplierMatchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	HasAmount     bool                   `protobuf:"varint,3,opt,name=has_amount,json=hasAmount,proto3" json:"has_amount,omitempty"`
	DocumentType  string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestSupplierMatchesRequest) Reset() {
	*x = SuggestSupplierMatchesRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestSupplierMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestSupplierMatchesRequest) ProtoMessage() {}

func (x *SuggestSupplierMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestSupplierMatchesRequest.ProtoReflect.Descriptor instead.
func (*SuggestSupplierMatchesRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{11}
}

func (x *SuggestSupplierMatchesRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *SuggestSupplierMatchesRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SuggestSupplierMatchesRequest) GetHasAmount() bool {
	if x != nil {
		return x.HasAmount
	}
	return false
}

func (x *SuggestSupplierMatchesRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

type SupplierMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      *Supplier              `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Similarity    float64                `protobuf:"fixed64,2,opt,name=similarity,proto3" json:"similarity,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Tier          string                 `protobuf:"bytes,4,opt,name=tier,proto3" json:"tier,omitempty"` // exact, high, medium, low
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SupplierMatch) Reset() {
	*x = SupplierMatch{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SupplierMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SupplierMatch) ProtoMessage() {}

func (x *SupplierMatch) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SupplierMatch.ProtoReflect.Descriptor instead.
func (*SupplierMatch) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{12}
}

func (x *SupplierMatch) GetSupplier() *Supplier {
	if x != nil {
		return x.Supplier
	}
	return nil
}

func (x *SupplierMatch) GetSimilarity() float64 {
	if x != nil {
		return x.Similarity
	}
	return 0
}

func (x *SupplierMatch) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *SupplierMatch) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

type SuggestSupplierMatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*SupplierMatch       `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestSupplierMatchesResponse) Reset() {
	*x = SuggestSupplierMatchesResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestSupplierMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestSupplierMatchesResponse) ProtoMessage() {}

func (x *SuggestSupplierMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestSupplierMatchesResponse.ProtoReflect.Descriptor instead.
func (*SuggestSupplierMatchesResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{13}
}

func (x *SuggestSupplierMatchesResponse) GetMatches() []*SupplierMatch {
	if x != nil {
		return x.Matches
	}
	return nil
}

type ListSuppliersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersRequest) Reset() {
	*x = ListSuppliersRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersRequest) ProtoMessage() {}

func (x *ListSuppliersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersRequest.ProtoReflect.Descriptor instead.
func (*ListSuppliersRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{14}
}

func (x *ListSuppliersRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

type ListSuppliersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suppliers     []*Supplier            `protobuf:"bytes,1,rep,name=suppliers,proto3" json:"suppliers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuppliersResponse) Reset() {
	*x = ListSuppliersResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuppliersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuppliersResponse) ProtoMessage() {}

func (x *ListSuppliersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuppliersResponse.ProtoReflect.Descriptor instead.
func (*ListSuppliersResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{15}
}

func (x *ListSuppliersResponse) GetSuppliers() []*Supplier {
	if x != nil {
		return x.Suppliers
	}
	return nil
}

type ExportSuppliersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSuppliersRequest) Reset() {
	*x = ExportSuppliersRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSuppliersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSuppliersRequest) ProtoMessage() {}

func (x *ExportSuppliersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSuppliersRequest.ProtoReflect.Descriptor instead.
func (*ExportSuppliersRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{16}
}

func (x *ExportSuppliersRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

type ExportSuppliersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSuppliersResponse) Reset() {
	*x = ExportSuppliersResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSuppliersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSuppliersResponse) ProtoMessage() {}

func (x *ExportSuppliersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSuppliersResponse.ProtoReflect.Descriptor instead.
func (*ExportSuppliersResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{17}
}

func (x *ExportSuppliersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GetCacheStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCacheStatsRequest) Reset() {
	*x = GetCacheStatsRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCacheStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCacheStatsRequest) ProtoMessage() {}

func (x *GetCacheStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCacheStatsRequest.ProtoReflect.Descriptor instead.
func (*GetCacheStatsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{18}
}

type GetCacheStatsResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Hits                 int64                  `protobuf:"varint,1,opt,name=hits,proto3" json:"hits,omitempty"`
	Misses               int64                  `protobuf:"varint,2,opt,name=misses,proto3" json:"misses,omitempty"`
	HitRate              float64                `protobuf:"fixed64,3,opt,name=hit_rate,json=hitRate,proto3" json:"hit_rate,omitempty"`
	AvgHitTimeMs         float64                `protobuf:"fixed64,4,opt,name=avg_hit_time_ms,json=avgHitTimeMs,proto3" json:"avg_hit_time_ms,omitempty"`
	AvgMissTimeMs        float64                `protobuf:"fixed64,5,opt,name=avg_miss_time_ms,json=avgMissTimeMs,proto3" json:"avg_miss_time_ms,omitempty"`
	EstimatedTimeSavedMs float64                `protobuf:"fixed64,6,opt,name=estimated_time_saved_ms,json=estimatedTimeSavedMs,proto3" json:"estimated_time_saved_ms,omitempty"`
	Entries              int64                  `protobuf:"varint,7,opt,name=entries,proto3" json:"entries,omitempty"`
	SetFailures          int64                  `protobuf:"varint,8,opt,name=set_failures,json=setFailures,proto3" json:"set_failures,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *GetCacheStatsResponse) Reset() {
	*x = GetCacheStatsResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCacheStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCacheStatsResponse) ProtoMessage() {}

func (x *GetCacheStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCacheStatsResponse.ProtoReflect.Descriptor instead.
func (*GetCacheStatsResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{19}
}

func (x *GetCacheStatsResponse) GetHits() int64 {
	if x != nil {
		return x.Hits
	}
	return 0
}

func (x *GetCacheStatsResponse) GetMisses() int64 {
	if x != nil {
		return x.Misses
	}
	return 0
}

func (x *GetCacheStatsResponse) GetHitRate() float64 {
	if x != nil {
		return x.HitRate
	}
	return 0
}

func (x *GetCacheStatsResponse) GetAvgHitTimeMs() float64 {
	if x != nil {
		return x.AvgHitTimeMs
	}
	return 0
}

func (x *GetCacheStatsResponse) GetAvgMissTimeMs() float64 {
	if x != nil {
		return x.AvgMissTimeMs
	}
	return 0
}

func (x *GetCacheStatsResponse) GetEstimatedTimeSavedMs() float64 {
	if x != nil {
		return x.EstimatedTimeSavedMs
	}
	return 0
}

func (x *GetCacheStatsResponse) GetEntries() int64 {
	if x != nil {
		return x.Entries
	}
	return 0
}

func (x *GetCacheStatsResponse) GetSetFailures() int64 {
	if x != nil {
		return x.SetFailures
	}
	return 0
}

var File_procurement_v1_procurement_proto protoreflect.FileDescriptor

const file_procurement_v1_procurement_proto_rawDesc = "" +
	"\n" +
	" procurement/v1/procurement.proto\x12\x0eprocurement.v1\"\xb3\x06\n" +
	"\x0fCanonicalFields\x12(\n" +
	"\rsupplier_name\x18\x01 \x01(\tH\x00R\fsupplierName\x88\x01\x01\x12.\n" +
	"\x10supplier_address\x18\x02 \x01(\tH\x01R\x0fsupplierAddress\x88\x01\x01\x12*\n" +
	"\x0esupplier_phone\x18\x03 \x01(\tH\x02R\rsupplierPhone\x88\x01\x01\x12*\n" +
	"\x0esupplier_email\x18\x04 \x01(\tH\x03R\rsupplierEmail\x88\x01\x01\x12+\n" +
	"\x0fsupplier_tax_id\x18\x05 \x01(\tH\x04R\rsupplierTaxId\x88\x01\x01\x12\x1b\n" +
	"\x06amount\x18\x06 \x01(\x01H\x05R\x06amount\x88\x01\x01\x12\x1f\n" +
	"\bcurrency\x18\a \x01(\tH\x06R\bcurrency\x88\x01\x01\x12\"\n" +
	"\n" +
	"tax_amount\x18\b \x01(\x01H\aR\ttaxAmount\x88\x01\x01\x12&\n" +
	"\ftotal_amount\x18\t \x01(\x01H\bR\vtotalAmount\x88\x01\x01\x12\"\n" +
	"\n" +
	"issue_date\x18\n" +
	" \x01(\tH\tR\tissueDate\x88\x01\x01\x12\x1e\n" +
	"\bdue_date\x18\v \x01(\tH\n" +
	"R\adueDate\x88\x01\x01\x12,\n" +
	"\x0fdocument_number\x18\f \x01(\tH\vR\x0edocumentNumber\x88\x01\x01\x127\n" +
	"\n" +
	"line_items\x18\r \x03(\v2\x18.procurement.v1.LineItemR\tlineItems\x12.\n" +
	"\x10confidence_score\x18\x0e \x01(\x01H\fR\x0fconfidenceScore\x88\x01\x01B\x10\n" +
	"\x0e_supplier_nameB\x13\n" +
	"\x11_supplier_addressB\x11\n" +
	"\x0f_supplier_phoneB\x11\n" +
	"\x0f_supplier_emailB\x12\n" +
	"\x10_supplier_tax_idB\t\n" +
	"\a_amountB\v\n" +
	"\t_currencyB\r\n" +
	"\v_tax_amountB\x0f\n" +
	"\r_total_amountB\r\n" +
	"\v_issue_dateB\v\n" +
	"\t_due_dateB\x12\n" +
	"\x10_document_numberB\x13\n" +
	"\x11_confidence_score\"\x88\x01\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1f\n" +
	"\vtotal_price\x18\x04 \x01(\x01R\n" +
	"totalPrice\"\x8b\x01\n" +
	"\x16ProcessDocumentRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\"\xb4\x03\n" +
	"\x17ProcessDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x127\n" +
	"\x06fields\x18\x03 \x01(\v2\x1f.procurement.v1.CanonicalFieldsR\x06fields\x12\x1d\n" +
	"\n" +
	"model_used\x18\x04 \x01(\tR\tmodelUsed\x12)\n" +
	"\x10confidence_score\x18\x05 \x01(\x01R\x0fconfidenceScore\x12\x1b\n" +
	"\tcache_hit\x18\x06 \x01(\bR\bcacheHit\x12 \n" +
	"\vcorrections\x18\a \x03(\tR\vcorrections\x12,\n" +
	"\x12processing_time_ms\x18\b \x01(\x03R\x10processingTimeMs\x129\n" +
	"\bsupplier\x18\t \x01(\v2\x18.procurement.v1.SupplierH\x00R\bsupplier\x88\x01\x01\x12)\n" +
	"\x10supplier_created\x18\n" +
	" \x01(\bR\x0fsupplierCreatedB\v\n" +
	"\t_supplier\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xd5\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12$\n" +
	"\vsupplier_id\x18\x06 \x01(\tH\x00R\n" +
	"supplierId\x88\x01\x01\x127\n" +
	"\x06fields\x18\a \x01(\v2\x1f.procurement.v1.CanonicalFieldsR\x06fields\x12\x1c\n" +
	"\tprocessed\x18\b \x01(\bR\tprocessed\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAtB\x0e\n" +
	"\f_supplier_id\"\xfb\x01\n" +
	"\x0fDocumentSignals\x12)\n" +
	"\x10compliance_score\x18\x01 \x01(\x05R\x0fcomplianceScore\x12)\n" +
	"\x10compliance_level\x18\x02 \x01(\tR\x0fcomplianceLevel\x12\x1d\n" +
	"\n" +
	"risk_score\x18\x03 \x01(\x05R\triskScore\x12\x1d\n" +
	"\n" +
	"risk_level\x18\x04 \x01(\tR\triskLevel\x12+\n" +
	"\x11approval_priority\x18\x05 \x01(\tR\x10approvalPriority\x12'\n" +
	"\x0frenewal_urgency\x18\x06 \x01(\tR\x0erenewalUrgency\"\x86\x01\n" +
	"\x13GetDocumentResponse\x124\n" +
	"\bdocument\x18\x01 \x01(\v2\x18.procurement.v1.DocumentR\bdocument\x129\n" +
	"\asignals\x18\x02 \x01(\v2\x1f.procurement.v1.DocumentSignalsR\asignals\"\xfb\x03\n" +
	"\bSupplier\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12'\n" +
	"\x0fnormalized_name\x18\x04 \x01(\tR\x0enormalizedName\x12(\n" +
	"\rcontact_email\x18\x05 \x01(\tH\x00R\fcontactEmail\x88\x01\x01\x12(\n" +
	"\rcontact_phone\x18\x06 \x01(\tH\x01R\fcontactPhone\x88\x01\x01\x12,\n" +
	"\x0fcontact_address\x18\a \x01(\tH\x02R\x0econtactAddress\x88\x01\x01\x12\x1a\n" +
	"\x06tax_id\x18\b \x01(\tH\x03R\x05taxId\x88\x01\x01\x12\x1f\n" +
	"\vtotal_spend\x18\t \x01(\x01R\n" +
	"totalSpend\x12-\n" +
	"\x12performance_rating\x18\n" +
	" \x01(\x01R\x11performanceRating\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAtB\x10\n" +
	"\x0e_contact_emailB\x10\n" +
	"\x0e_contact_phoneB\x12\n" +
	"\x10_contact_addressB\t\n" +
	"\a_tax_id\"\xc2\x02\n" +
	"\x16ResolveSupplierRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x01R\x06amount\x12(\n" +
	"\rcontact_email\x18\x04 \x01(\tH\x00R\fcontactEmail\x88\x01\x01\x12(\n" +
	"\rcontact_phone\x18\x05 \x01(\tH\x01R\fcontactPhone\x88\x01\x01\x12,\n" +
	"\x0fcontact_address\x18\x06 \x01(\tH\x02R\x0econtactAddress\x88\x01\x01\x12\x1a\n" +
	"\x06tax_id\x18\a \x01(\tH\x03R\x05taxId\x88\x01\x01B\x10\n" +
	"\x0e_contact_emailB\x10\n" +
	"\x0e_contact_phoneB\x12\n" +
	"\x10_contact_addressB\t\n" +
	"\a_tax_id\"i\n" +
	"\x17ResolveSupplierResponse\x124\n" +
	"\bsupplier\x18\x01 \x01(\v2\x18.procurement.v1.SupplierR\bsupplier\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\"\x94\x01\n" +
	"\x1dSuggestSupplierMatchesRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"has_amount\x18\x03 \x01(\bR\thasAmount\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\"\x99\x01\n" +
	"\rSupplierMatch\x124\n" +
	"\bsupplier\x18\x01 \x01(\v2\x18.procurement.v1.SupplierR\bsupplier\x12\x1e\n" +
	"\n" +
	"similarity\x18\x02 \x01(\x01R\n" +
	"similarity\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x12\n" +
	"\x04tier\x18\x04 \x01(\tR\x04tier\"Y\n" +
	"\x1eSuggestSupplierMatchesResponse\x127\n" +
	"\amatches\x18\x01 \x03(\v2\x1d.procurement.v1.SupplierMatchR\amatches\"3\n" +
	"\x14ListSuppliersRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\"O\n" +
	"\x15ListSuppliersResponse\x126\n" +
	"\tsuppliers\x18\x01 \x03(\v2\x18.procurement.v1.SupplierR\tsuppliers\"5\n" +
	"\x16ExportSuppliersRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\"-\n" +
	"\x17ExportSuppliersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x16\n" +
	"\x14GetCacheStatsRequest\"\xa2\x02\n" +
	"\x15GetCacheStatsResponse\x12\x12\n" +
	"\x04hits\x18\x01 \x01(\x03R\x04hits\x12\x16\n" +
	"\x06misses\x18\x02 \x01(\x03R\x06misses\x12\x19\n" +
	"\bhit_rate\x18\x03 \x01(\x01R\ahitRate\x12%\n" +
	"\x0favg_hit_time_ms\x18\x04 \x01(\x01R\favgHitTimeMs\x12'\n" +
	"\x10avg_miss_time_ms\x18\x05 \x01(\x01R\ravgMissTimeMs\x125\n" +
	"\x17estimated_time_saved_ms\x18\x06 \x01(\x01R\x14estimatedTimeSavedMs\x12\x18\n" +
	"\aentries\x18\a \x01(\x03R\aentries\x12!\n" +
	"\fset_failures\x18\b \x01(\x03R\vsetFailures2\xcd\x05\n" +
	"\x12ProcurementService\x12b\n" +
	"\x0fProcessDocument\x12&.procurement.v1.ProcessDocumentRequest\x1a'.procurement.v1.ProcessDocumentResponse\x12V\n" +
	"\vGetDocument\x12\".procurement.v1.GetDocumentRequest\x1a#.procurement.v1.GetDocumentResponse\x12b\n" +
	"\x0fResolveSupplier\x12&.procurement.v1.ResolveSupplierRequest\x1a'.procurement.v1.ResolveSupplierResponse\x12w\n" +
	"\x16SuggestSupplierMatches\x12-.procurement.v1.SuggestSupplierMatchesRequest\x1a..procurement.v1.SuggestSupplierMatchesResponse\x12\\\n" +
	"\rListSuppliers\x12$.procurement.v1.ListSuppliersRequest\x1a%.procurement.v1.ListSuppliersResponse\x12b\n" +
	"\x0fExportSuppliers\x12&.procurement.v1.ExportSuppliersRequest\x1a'.procurement.v1.ExportSuppliersResponse\x12\\\n" +
	"\rGetCacheStats\x12$.procurement.v1.GetCacheStatsRequest\x1a%.procurement.v1.GetCacheStatsResponseBQZOgithub.com/procurehq/procurement-tracker/gen/proto/procurement/v1;procurementpbb\x06proto3"

var (
	file_procurement_v1_procurement_proto_rawDescOnce sync.Once
	file_procurement_v1_procurement_proto_rawDescData []byte
)

func file_procurement_v1_procurement_proto_rawDescGZIP() []byte {
	file_procurement_v1_procurement_proto_rawDescOnce.Do(func() {
		file_procurement_v1_procurement_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_procurement_v1_procurement_proto_rawDesc), len(file_procurement_v1_procurement_proto_rawDesc)))
	})
	return file_procurement_v1_procurement_proto_rawDescData
}

var file_procurement_v1_procurement_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_procurement_v1_procurement_proto_goTypes = []any{
	(*CanonicalFields)(nil),                // 0: procurement.v1.CanonicalFields
	(*LineItem)(nil),                       // 1: procurement.v1.LineItem
	(*ProcessDocumentRequest)(nil),         // 2: procurement.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),        // 3: procurement.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),             // 4: procurement.v1.GetDocumentRequest
	(*Document)(nil),                       // 5: procurement.v1.Document
	(*DocumentSignals)(nil),                // 6: procurement.v1.DocumentSignals
	(*GetDocumentResponse)(nil),            // 7: procurement.v1.GetDocumentResponse
	(*Supplier)(nil),                       // 8: procurement.v1.Supplier
	(*ResolveSupplierRequest)(nil),         // 9: procurement.v1.ResolveSupplierRequest
	(*ResolveSupplierResponse)(nil),        // 10: procurement.v1.ResolveSupplierResponse
	(*SuggestSupplierMatchesRequest)(nil),  // 11: procurement.v1.SuggestSupplierMatchesRequest
	(*SupplierMatch)(nil),                  // 12: procurement.v1.SupplierMatch
	(*SuggestSupplierMatchesResponse)(nil), // 13: procurement.v1.SuggestSupplierMatchesResponse
	(*ListSuppliersRequest)(nil),           // 14: procurement.v1.ListSuppliersRequest
	(*ListSuppliersResponse)(nil),          // 15: procurement.v1.ListSuppliersResponse
	(*ExportSuppliersRequest)(nil),         // 16: procurement.v1.ExportSuppliersRequest
	(*ExportSuppliersResponse)(nil),        // 17: procurement.v1.ExportSuppliersResponse
	(*GetCacheStatsRequest)(nil),           // 18: procurement.v1.GetCacheStatsRequest
	(*GetCacheStatsResponse)(nil),          // 19: procurement.v1.GetCacheStatsResponse
}
var file_procurement_v1_procurement_proto_depIdxs = []int32{
	1,  // 0: procurement.v1.CanonicalFields.line_items:type_name -> procurement.v1.LineItem
	0,  // 1: procurement.v1.ProcessDocumentResponse.fields:type_name -> procurement.v1.CanonicalFields
	8,  // 2: procurement.v1.ProcessDocumentResponse.supplier:type_name -> procurement.v1.Supplier
	0,  // 3: procurement.v1.Document.fields:type_name -> procurement.v1.CanonicalFields
	5,  // 4: procurement.v1.GetDocumentResponse.document:type_name -> procurement.v1.Document
	6,  // 5: procurement.v1.GetDocumentResponse.signals:type_name -> procurement.v1.DocumentSignals
	8,  // 6: procurement.v1.ResolveSupplierResponse.supplier:type_name -> procurement.v1.Supplier
	8,  // 7: procurement.v1.SupplierMatch.supplier:type_name -> procurement.v1.Supplier
	12, // 8: procurement.v1.SuggestSupplierMatchesResponse.matches:type_name -> procurement.v1.SupplierMatch
	8,  // 9: procurement.v1.ListSuppliersResponse.suppliers:type_name -> procurement.v1.Supplier
	2,  // 10: procurement.v1.ProcurementService.ProcessDocument:input_type -> procurement.v1.ProcessDocumentRequest
	4,  // 11: procurement.v1.ProcurementService.GetDocument:input_type -> procurement.v1.GetDocumentRequest
	9,  // 12: procurement.v1.ProcurementService.ResolveSupplier:input_type -> procurement.v1.ResolveSupplierRequest
	11, // 13: procurement.v1.ProcurementService.SuggestSupplierMatches:input_type -> procurement.v1.SuggestSupplierMatchesRequest
	14, // 14: procurement.v1.ProcurementService.ListSuppliers:input_type -> procurement.v1.ListSuppliersRequest
	16, // 15: procurement.v1.ProcurementService.ExportSuppliers:input_type -> procurement.v1.ExportSuppliersRequest
	18, // 16: procurement.v1.ProcurementService.GetCacheStats:input_type -> procurement.v1.GetCacheStatsRequest
	3,  // 17: procurement.v1.ProcurementService.ProcessDocument:output_type -> procurement.v1.ProcessDocumentResponse
	7,  // 18: procurement.v1.ProcurementService.GetDocument:output_type -> procurement.v1.GetDocumentResponse
	10, // 19: procurement.v1.ProcurementService.ResolveSupplier:output_type -> procurement.v1.ResolveSupplierResponse
	13, // 20: procurement.v1.ProcurementService.SuggestSupplierMatches:output_type -> procurement.v1.SuggestSupplierMatchesResponse
	15, // 21: procurement.v1.ProcurementService.ListSuppliers:output_type -> procurement.v1.ListSuppliersResponse
	17, // 22: procurement.v1.ProcurementService.ExportSuppliers:output_type -> procurement.v1.ExportSuppliersResponse
	19, // 23: procurement.v1.ProcurementService.GetCacheStats:output_type -> procurement.v1.GetCacheStatsResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_procurement_v1_procurement_proto_init() }
func file_procurement_v1_procurement_proto_init() {
	if File_procurement_v1_procurement_proto != nil {
		return
	}
	file_procurement_v1_procurement_proto_msgTypes[0].OneofWrappers = []any{}
	file_procurement_v1_procurement_proto_msgTypes[3].OneofWrappers = []any{}
	file_procurement_v1_procurement_proto_msgTypes[5].OneofWrappers = []any{}
	file_procurement_v1_procurement_proto_msgTypes[8].OneofWrappers = []any{}
	file_procurement_v1_procurement_proto_msgTypes[9].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_procurement_v1_procurement_proto_rawDesc), len(file_procurement_v1_procurement_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_procurement_v1_procurement_proto_goTypes,
		DependencyIndexes: file_procurement_v1_procurement_proto_depIdxs,
		MessageInfos:      file_procurement_v1_procurement_proto_msgTypes,
	}.Build()
	File_procurement_v1_procurement_proto = out.File
	file_procurement_v1_procurement_proto_goTypes = nil
	file_procurement_v1_procurement_proto_depIdxs = nil
}
