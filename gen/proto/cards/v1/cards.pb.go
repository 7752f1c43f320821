// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cards/v1/cards.proto

package cardsv1

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

// Contact is a persisted contact record.
type Contact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Organization  string                 `protobuf:"bytes,3,opt,name=organization,proto3" json:"organization,omitempty"`
	JobTitle      string                 `protobuf:"bytes,4,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	ContactNumber string                 `protobuf:"bytes,5,opt,name=contact_number,json=contactNumber,proto3" json:"contact_number,omitempty"`
	BusinessEmail string                 `protobuf:"bytes,6,opt,name=business_email,json=businessEmail,proto3" json:"business_email,omitempty"`
	BusinessUrl   string                 `protobuf:"bytes,7,opt,name=business_url,json=businessUrl,proto3" json:"business_url,omitempty"`
	StreetAddress string                 `protobuf:"bytes,8,opt,name=street_address,json=streetAddress,proto3" json:"street_address,omitempty"`
	LocationCity  string                 `protobuf:"bytes,9,opt,name=location_city,json=locationCity,proto3" json:"location_city,omitempty"`
	LocationState string                 `protobuf:"bytes,10,opt,name=location_state,json=locationState,proto3" json:"location_state,omitempty"`
	PostalCode    string                 `protobuf:"bytes,11,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	RawText       string                 `protobuf:"bytes,12,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contact) Reset() {
	*x = Contact{}
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contact) ProtoMessage() {}

func (x *Contact) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contact.ProtoReflect.Descriptor instead.
func (*Contact) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{0}
}

func (x *Contact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contact) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Contact) GetOrganization() string {
	if x != nil {
		return x.Organization
	}
	return ""
}

func (x *Contact) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *Contact) GetContactNumber() string {
	if x != nil {
		return x.ContactNumber
	}
	return ""
}

func (x *Contact) GetBusinessEmail() string {
	if x != nil {
		return x.BusinessEmail
	}
	return ""
}

func (x *Contact) GetBusinessUrl() string {
	if x != nil {
		return x.BusinessUrl
	}
	return ""
}

func (x *Contact) GetStreetAddress() string {
	if x != nil {
		return x.StreetAddress
	}
	return ""
}

func (x *Contact) GetLocationCity() string {
	if x != nil {
		return x.LocationCity
	}
	return ""
}

func (x *Contact) GetLocationState() string {
	if x != nil {
		return x.LocationState
	}
	return ""
}

func (x *Contact) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *Contact) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Contact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contact) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// ContactFields is an unsaved extraction result or save payload.
type ContactFields struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FullName      string                 `protobuf:"bytes,1,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Organization  string                 `protobuf:"bytes,2,opt,name=organization,proto3" json:"organization,omitempty"`
	JobTitle      string                 `protobuf:"bytes,3,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	ContactNumber string                 `protobuf:"bytes,4,opt,name=contact_number,json=contactNumber,proto3" json:"contact_number,omitempty"`
	BusinessEmail string                 `protobuf:"bytes,5,opt,name=business_email,json=businessEmail,proto3" json:"business_email,omitempty"`
	BusinessUrl   string                 `protobuf:"bytes,6,opt,name=business_url,json=businessUrl,proto3" json:"business_url,omitempty"`
	StreetAddress string                 `protobuf:"bytes,7,opt,name=street_address,json=streetAddress,proto3" json:"street_address,omitempty"`
	LocationCity  string                 `protobuf:"bytes,8,opt,name=location_city,json=locationCity,proto3" json:"location_city,omitempty"`
	LocationState string                 `protobuf:"bytes,9,opt,name=location_state,json=locationState,proto3" json:"location_state,omitempty"`
	PostalCode    string                 `protobuf:"bytes,10,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	RawText       string                 `protobuf:"bytes,11,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContactFields) Reset() {
	*x = ContactFields{}
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContactFields) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContactFields) ProtoMessage() {}

func (x *ContactFields) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContactFields.ProtoReflect.Descriptor instead.
func (*ContactFields) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{1}
}

func (x *ContactFields) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *ContactFields) GetOrganization() string {
	if x != nil {
		return x.Organization
	}
	return ""
}

func (x *ContactFields) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *ContactFields) GetContactNumber() string {
	if x != nil {
		return x.ContactNumber
	}
	return ""
}

func (x *ContactFields) GetBusinessEmail() string {
	if x != nil {
		return x.BusinessEmail
	}
	return ""
}

func (x *ContactFields) GetBusinessUrl() string {
	if x != nil {
		return x.BusinessUrl
	}
	return ""
}

func (x *ContactFields) GetStreetAddress() string {
	if x != nil {
		return x.StreetAddress
	}
	return ""
}

func (x *ContactFields) GetLocationCity() string {
	if x != nil {
		return x.LocationCity
	}
	return ""
}

func (x *ContactFields) GetLocationState() string {
	if x != nil {
		return x.LocationState
	}
	return ""
}

func (x *ContactFields) GetPostalCode() string {
	if x != nil {
		return x.PostalCode
	}
	return ""
}

func (x *ContactFields) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

// Box is a pixel-space bounding box for a recognized line.
type Box struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Left          int32                  `protobuf:"varint,1,opt,name=left,proto3" json:"left,omitempty"`
	Top           int32                  `protobuf:"varint,2,opt,name=top,proto3" json:"top,omitempty"`
	Width         int32                  `protobuf:"varint,3,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Box) Reset() {
	*x = Box{}
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Box) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Box) ProtoMessage() {}

func (x *Box) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Box.ProtoReflect.Descriptor instead.
func (*Box) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{2}
}

func (x *Box) GetLeft() int32 {
	if x != nil {
		return x.Left
	}
	return 0
}

func (x *Box) GetTop() int32 {
	if x != nil {
		return x.Top
	}
	return 0
}

func (x *Box) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Box) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type TextLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Box           *Box                   `protobuf:"bytes,2,opt,name=box,proto3" json:"box,omitempty"`
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextLine) Reset() {
	*x = TextLine{}
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextLine) ProtoMessage() {}

func (x *TextLine) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextLine.ProtoReflect.Descriptor instead.
func (*TextLine) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{3}
}

func (x *TextLine) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *TextLine) GetBox() *Box {
	if x != nil {
		return x.Box
	}
	return nil
}

func (x *TextLine) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ScanCardRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Path  string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// when true the response carries a PNG with line boxes drawn on the card
	Annotate      bool `protobuf:"varint,2,opt,name=annotate,proto3" json:"annotate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardRequest) Reset() {
	*x = ScanCardRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardRequest) ProtoMessage() {}

func (x *ScanCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardRequest.ProtoReflect.Descriptor instead.
func (*ScanCardRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{4}
}

func (x *ScanCardRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ScanCardRequest) GetAnnotate() bool {
	if x != nil {
		return x.Annotate
	}
	return false
}

type ScanCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Fields        *ContactFields         `protobuf:"bytes,2,opt,name=fields,proto3" json:"fields,omitempty"`
	Lines         []*TextLine            `protobuf:"bytes,3,rep,name=lines,proto3" json:"lines,omitempty"`
	AnnotatedPng  []byte                 `protobuf:"bytes,4,opt,name=annotated_png,json=annotatedPng,proto3" json:"annotated_png,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardResponse) Reset() {
	*x = ScanCardResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardResponse) ProtoMessage() {}

func (x *ScanCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardResponse.ProtoReflect.Descriptor instead.
func (*ScanCardResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{5}
}

func (x *ScanCardResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ScanCardResponse) GetFields() *ContactFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ScanCardResponse) GetLines() []*TextLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *ScanCardResponse) GetAnnotatedPng() []byte {
	if x != nil {
		return x.AnnotatedPng
	}
	return nil
}

type SaveContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        *ContactFields         `protobuf:"bytes,1,opt,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveContactRequest) Reset() {
	*x = SaveContactRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveContactRequest) ProtoMessage() {}

func (x *SaveContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveContactRequest.ProtoReflect.Descriptor instead.
func (*SaveContactRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{6}
}

func (x *SaveContactRequest) GetFields() *ContactFields {
	if x != nil {
		return x.Fields
	}
	return nil
}

type SaveContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveContactResponse) Reset() {
	*x = SaveContactResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveContactResponse) ProtoMessage() {}

func (x *SaveContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveContactResponse.ProtoReflect.Descriptor instead.
func (*SaveContactResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{7}
}

func (x *SaveContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Search        string                 `protobuf:"bytes,1,opt,name=search,proto3" json:"search,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{8}
}

func (x *ListContactsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*Contact             `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{9}
}

func (x *ListContactsResponse) GetContacts() []*Contact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

// Lookup requests address a contact by id, or by full_name when id is empty.
type GetContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactRequest) Reset() {
	*x = GetContactRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactRequest) ProtoMessage() {}

func (x *GetContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactRequest.ProtoReflect.Descriptor instead.
func (*GetContactRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{10}
}

func (x *GetContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetContactRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

type GetContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactResponse) Reset() {
	*x = GetContactResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactResponse) ProtoMessage() {}

func (x *GetContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactResponse.ProtoReflect.Descriptor instead.
func (*GetContactResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{11}
}

func (x *GetContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type UpdateContactRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	// only set fields are applied
	NewFullName   *string `protobuf:"bytes,3,opt,name=new_full_name,json=newFullName,proto3,oneof" json:"new_full_name,omitempty"`
	Organization  *string `protobuf:"bytes,4,opt,name=organization,proto3,oneof" json:"organization,omitempty"`
	JobTitle      *string `protobuf:"bytes,5,opt,name=job_title,json=jobTitle,proto3,oneof" json:"job_title,omitempty"`
	ContactNumber *string `protobuf:"bytes,6,opt,name=contact_number,json=contactNumber,proto3,oneof" json:"contact_number,omitempty"`
	BusinessEmail *string `protobuf:"bytes,7,opt,name=business_email,json=businessEmail,proto3,oneof" json:"business_email,omitempty"`
	BusinessUrl   *string `protobuf:"bytes,8,opt,name=business_url,json=businessUrl,proto3,oneof" json:"business_url,omitempty"`
	StreetAddress *string `protobuf:"bytes,9,opt,name=street_address,json=streetAddress,proto3,oneof" json:"street_address,omitempty"`
	LocationCity  *string `protobuf:"bytes,10,opt,name=location_city,json=locationCity,proto3,oneof" json:"location_city,omitempty"`
	LocationState *string `protobuf:"bytes,11,opt,name=location_state,json=locationState,proto3,oneof" json:"location_state,omitempty"`
	PostalCode    *string `protobuf:"bytes,12,opt,name=postal_code,json=postalCode,proto3,oneof" json:"postal_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactRequest) Reset() {
	*x = UpdateContactRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactRequest) ProtoMessage() {}

func (x *UpdateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactRequest.ProtoReflect.Descriptor instead.
func (*UpdateContactRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateContactRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *UpdateContactRequest) GetNewFullName() string {
	if x != nil && x.NewFullName != nil {
		return *x.NewFullName
	}
	return ""
}

func (x *UpdateContactRequest) GetOrganization() string {
	if x != nil && x.Organization != nil {
		return *x.Organization
	}
	return ""
}

func (x *UpdateContactRequest) GetJobTitle() string {
	if x != nil && x.JobTitle != nil {
		return *x.JobTitle
	}
	return ""
}

func (x *UpdateContactRequest) GetContactNumber() string {
	if x != nil && x.ContactNumber != nil {
		return *x.ContactNumber
	}
	return ""
}

func (x *UpdateContactRequest) GetBusinessEmail() string {
	if x != nil && x.BusinessEmail != nil {
		return *x.BusinessEmail
	}
	return ""
}

func (x *UpdateContactRequest) GetBusinessUrl() string {
	if x != nil && x.BusinessUrl != nil {
		return *x.BusinessUrl
	}
	return ""
}

func (x *UpdateContactRequest) GetStreetAddress() string {
	if x != nil && x.StreetAddress != nil {
		return *x.StreetAddress
	}
	return ""
}

func (x *UpdateContactRequest) GetLocationCity() string {
	if x != nil && x.LocationCity != nil {
		return *x.LocationCity
	}
	return ""
}

func (x *UpdateContactRequest) GetLocationState() string {
	if x != nil && x.LocationState != nil {
		return *x.LocationState
	}
	return ""
}

func (x *UpdateContactRequest) GetPostalCode() string {
	if x != nil && x.PostalCode != nil {
		return *x.PostalCode
	}
	return ""
}

type UpdateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactResponse) Reset() {
	*x = UpdateContactResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactResponse) ProtoMessage() {}

func (x *UpdateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactResponse.ProtoReflect.Descriptor instead.
func (*UpdateContactResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type DeleteContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactRequest) Reset() {
	*x = DeleteContactRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactRequest) ProtoMessage() {}

func (x *DeleteContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactRequest.ProtoReflect.Descriptor instead.
func (*DeleteContactRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeleteContactRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

type DeleteContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactResponse) Reset() {
	*x = DeleteContactResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactResponse) ProtoMessage() {}

func (x *DeleteContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactResponse.ProtoReflect.Descriptor instead.
func (*DeleteContactResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteContactResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Search        string                 `protobuf:"bytes,1,opt,name=search,proto3" json:"search,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsRequest) Reset() {
	*x = ExportContactsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsRequest) ProtoMessage() {}

func (x *ExportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsRequest.ProtoReflect.Descriptor instead.
func (*ExportContactsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{16}
}

func (x *ExportContactsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

type ExportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsResponse) Reset() {
	*x = ExportContactsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsResponse) ProtoMessage() {}

func (x *ExportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsResponse.ProtoReflect.Descriptor instead.
func (*ExportContactsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{17}
}

func (x *ExportContactsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_cards_v1_cards_proto protoreflect.FileDescriptor

const file_cards_v1_cards_proto_rawDesc = "" +
	"\n" +
	"\x14cards/v1/cards.proto\x12\bcards.v1\"\xd5\x03\n" +
	"\aContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\"\n" +
	"\forganization\x18\x03 \x01(\tR\forganization\x12\x1b\n" +
	"\tjob_title\x18\x04 \x01(\tR\bjobTitle\x12%\n" +
	"\x0econtact_number\x18\x05 \x01(\tR\rcontactNumber\x12%\n" +
	"\x0ebusiness_email\x18\x06 \x01(\tR\rbusinessEmail\x12!\n" +
	"\fbusiness_url\x18\a \x01(\tR\vbusinessUrl\x12%\n" +
	"\x0estreet_address\x18\b \x01(\tR\rstreetAddress\x12#\n" +
	"\rlocation_city\x18\t \x01(\tR\flocationCity\x12%\n" +
	"\x0elocation_state\x18\n" +
	" \x01(\tR\rlocationState\x12\x1f\n" +
	"\vpostal_code\x18\v \x01(\tR\n" +
	"postalCode\x12\x19\n" +
	"\braw_text\x18\f \x01(\tR\arawText\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x8d\x03\n" +
	"\rContactFields\x12\x1b\n" +
	"\tfull_name\x18\x01 \x01(\tR\bfullName\x12\"\n" +
	"\forganization\x18\x02 \x01(\tR\forganization\x12\x1b\n" +
	"\tjob_title\x18\x03 \x01(\tR\bjobTitle\x12%\n" +
	"\x0econtact_number\x18\x04 \x01(\tR\rcontactNumber\x12%\n" +
	"\x0ebusiness_email\x18\x05 \x01(\tR\rbusinessEmail\x12!\n" +
	"\fbusiness_url\x18\x06 \x01(\tR\vbusinessUrl\x12%\n" +
	"\x0estreet_address\x18\a \x01(\tR\rstreetAddress\x12#\n" +
	"\rlocation_city\x18\b \x01(\tR\flocationCity\x12%\n" +
	"\x0elocation_state\x18\t \x01(\tR\rlocationState\x12\x1f\n" +
	"\vpostal_code\x18\n" +
	" \x01(\tR\n" +
	"postalCode\x12\x19\n" +
	"\braw_text\x18\v \x01(\tR\arawText\"Y\n" +
	"\x03Box\x12\x12\n" +
	"\x04left\x18\x01 \x01(\x05R\x04left\x12\x10\n" +
	"\x03top\x18\x02 \x01(\x05R\x03top\x12\x14\n" +
	"\x05width\x18\x03 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x04 \x01(\x05R\x06height\"_\n" +
	"\bTextLine\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1f\n" +
	"\x03box\x18\x02 \x01(\v2\r.cards.v1.BoxR\x03box\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\"A\n" +
	"\x0fScanCardRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1a\n" +
	"\bannotate\x18\x02 \x01(\bR\bannotate\"\xa9\x01\n" +
	"\x10ScanCardResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12/\n" +
	"\x06fields\x18\x02 \x01(\v2\x17.cards.v1.ContactFieldsR\x06fields\x12(\n" +
	"\x05lines\x18\x03 \x03(\v2\x12.cards.v1.TextLineR\x05lines\x12#\n" +
	"\rannotated_png\x18\x04 \x01(\fR\fannotatedPng\"E\n" +
	"\x12SaveContactRequest\x12/\n" +
	"\x06fields\x18\x01 \x01(\v2\x17.cards.v1.ContactFieldsR\x06fields\"B\n" +
	"\x13SaveContactResponse\x12+\n" +
	"\acontact\x18\x01 \x01(\v2\x11.cards.v1.ContactR\acontact\"-\n" +
	"\x13ListContactsRequest\x12\x16\n" +
	"\x06search\x18\x01 \x01(\tR\x06search\"E\n" +
	"\x14ListContactsResponse\x12-\n" +
	"\bcontacts\x18\x01 \x03(\v2\x11.cards.v1.ContactR\bcontacts\"@\n" +
	"\x11GetContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\"A\n" +
	"\x12GetContactResponse\x12+\n" +
	"\acontact\x18\x01 \x01(\v2\x11.cards.v1.ContactR\acontact\"\x8f\x05\n" +
	"\x14UpdateContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12'\n" +
	"\rnew_full_name\x18\x03 \x01(\tH\x00R\vnewFullName\x88\x01\x01\x12'\n" +
	"\forganization\x18\x04 \x01(\tH\x01R\forganization\x88\x01\x01\x12 \n" +
	"\tjob_title\x18\x05 \x01(\tH\x02R\bjobTitle\x88\x01\x01\x12*\n" +
	"\x0econtact_number\x18\x06 \x01(\tH\x03R\rcontactNumber\x88\x01\x01\x12*\n" +
	"\x0ebusiness_email\x18\a \x01(\tH\x04R\rbusinessEmail\x88\x01\x01\x12&\n" +
	"\fbusiness_url\x18\b \x01(\tH\x05R\vbusinessUrl\x88\x01\x01\x12*\n" +
	"\x0estreet_address\x18\t \x01(\tH\x06R\rstreetAddress\x88\x01\x01\x12(\n" +
	"\rlocation_city\x18\n" +
	" \x01(\tH\aR\flocationCity\x88\x01\x01\x12*\n" +
	"\x0elocation_state\x18\v \x01(\tH\bR\rlocationState\x88\x01\x01\x12$\n" +
	"\vpostal_code\x18\f \x01(\tH\tR\n" +
	"postalCode\x88\x01\x01B\x10\n" +
	"\x0e_new_full_nameB\x0f\n" +
	"\r_organizationB\f\n" +
	"\n" +
	"_job_titleB\x11\n" +
	"\x0f_contact_numberB\x11\n" +
	"\x0f_business_emailB\x0f\n" +
	"\r_business_urlB\x11\n" +
	"\x0f_street_addressB\x10\n" +
	"\x0e_location_cityB\x11\n" +
	"\x0f_location_stateB\x0e\n" +
	"\f_postal_code\"D\n" +
	"\x15UpdateContactResponse\x12+\n" +
	"\acontact\x18\x01 \x01(\v2\x11.cards.v1.ContactR\acontact\"C\n" +
	"\x14DeleteContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\"1\n" +
	"\x15DeleteContactResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"/\n" +
	"\x15ExportContactsRequest\x12\x16\n" +
	"\x06search\x18\x01 \x01(\tR\x06search\",\n" +
	"\x16ExportContactsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xae\x04\n" +
	"\fCardsService\x12A\n" +
	"\bScanCard\x12\x19.cards.v1.ScanCardRequest\x1a\x1a.cards.v1.ScanCardResponse\x12J\n" +
	"\vSaveContact\x12\x1c.cards.v1.SaveContactRequest\x1a\x1d.cards.v1.SaveContactResponse\x12M\n" +
	"\fListContacts\x12\x1d.cards.v1.ListContactsRequest\x1a\x1e.cards.v1.ListContactsResponse\x12G\n" +
	"\n" +
	"GetContact\x12\x1b.cards.v1.GetContactRequest\x1a\x1c.cards.v1.GetContactResponse\x12P\n" +
	"\rUpdateContact\x12\x1e.cards.v1.UpdateContactRequest\x1a\x1f.cards.v1.UpdateContactResponse\x12P\n" +
	"\rDeleteContact\x12\x1e.cards.v1.DeleteContactRequest\x1a\x1f.cards.v1.DeleteContactResponse\x12S\n" +
	"\x0eExportContacts\x12\x1f.cards.v1.ExportContactsRequest\x1a .cards.v1.ExportContactsResponseB9Z7github.com/cardkeep/cardkeep/gen/proto/cards/v1;cardsv1b\x06proto3"

var (
	file_cards_v1_cards_proto_rawDescOnce sync.Once
	file_cards_v1_cards_proto_rawDescData []byte
)

func file_cards_v1_cards_proto_rawDescGZIP() []byte {
	file_cards_v1_cards_proto_rawDescOnce.Do(func() {
		file_cards_v1_cards_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)))
	})
	return file_cards_v1_cards_proto_rawDescData
}

var file_cards_v1_cards_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_cards_v1_cards_proto_goTypes = []any{
	(*Contact)(nil),                // 0: cards.v1.Contact
	(*ContactFields)(nil),          // 1: cards.v1.ContactFields
	(*Box)(nil),                    // 2: cards.v1.Box
	(*TextLine)(nil),               // 3: cards.v1.TextLine
	(*ScanCardRequest)(nil),        // 4: cards.v1.ScanCardRequest
	(*ScanCardResponse)(nil),       // 5: cards.v1.ScanCardResponse
	(*SaveContactRequest)(nil),     // 6: cards.v1.SaveContactRequest
	(*SaveContactResponse)(nil),    // 7: cards.v1.SaveContactResponse
	(*ListContactsRequest)(nil),    // 8: cards.v1.ListContactsRequest
	(*ListContactsResponse)(nil),   // 9: cards.v1.ListContactsResponse
	(*GetContactRequest)(nil),      // 10: cards.v1.GetContactRequest
	(*GetContactResponse)(nil),     // 11: cards.v1.GetContactResponse
	(*UpdateContactRequest)(nil),   // 12: cards.v1.UpdateContactRequest
	(*UpdateContactResponse)(nil),  // 13: cards.v1.UpdateContactResponse
	(*DeleteContactRequest)(nil),   // 14: cards.v1.DeleteContactRequest
	(*DeleteContactResponse)(nil),  // 15: cards.v1.DeleteContactResponse
	(*ExportContactsRequest)(nil),  // 16: cards.v1.ExportContactsRequest
	(*ExportContactsResponse)(nil), // 17: cards.v1.ExportContactsResponse
}
var file_cards_v1_cards_proto_depIdxs = []int32{
	2,  // 0: cards.v1.TextLine.box:type_name -> cards.v1.Box
	1,  // 1: cards.v1.ScanCardResponse.fields:type_name -> cards.v1.ContactFields
	3,  // 2: cards.v1.ScanCardResponse.lines:type_name -> cards.v1.TextLine
	1,  // 3: cards.v1.SaveContactRequest.fields:type_name -> cards.v1.ContactFields
	0,  // 4: cards.v1.SaveContactResponse.contact:type_name -> cards.v1.Contact
	0,  // 5: cards.v1.ListContactsResponse.contacts:type_name -> cards.v1.Contact
	0,  // 6: cards.v1.GetContactResponse.contact:type_name -> cards.v1.Contact
	0,  // 7: cards.v1.UpdateContactResponse.contact:type_name -> cards.v1.Contact
	4,  // 8: cards.v1.CardsService.ScanCard:input_type -> cards.v1.ScanCardRequest
	6,  // 9: cards.v1.CardsService.SaveContact:input_type -> cards.v1.SaveContactRequest
	8,  // 10: cards.v1.CardsService.ListContacts:input_type -> cards.v1.ListContactsRequest
	10, // 11: cards.v1.CardsService.GetContact:input_type -> cards.v1.GetContactRequest
	12, // 12: cards.v1.CardsService.UpdateContact:input_type -> cards.v1.UpdateContactRequest
	14, // 13: cards.v1.CardsService.DeleteContact:input_type -> cards.v1.DeleteContactRequest
	16, // 14: cards.v1.CardsService.ExportContacts:input_type -> cards.v1.ExportContactsRequest
	5,  // 15: cards.v1.CardsService.ScanCard:output_type -> cards.v1.ScanCardResponse
	7,  // 16: cards.v1.CardsService.SaveContact:output_type -> cards.v1.SaveContactResponse
	9,  // 17: cards.v1.CardsService.ListContacts:output_type -> cards.v1.ListContactsResponse
	11, // 18: cards.v1.CardsService.GetContact:output_type -> cards.v1.GetContactResponse
	13, // 19: cards.v1.CardsService.UpdateContact:output_type -> cards.v1.UpdateContactResponse
	15, // 20: cards.v1.CardsService.DeleteContact:output_type -> cards.v1.DeleteContactResponse
	17, // 21: cards.v1.CardsService.ExportContacts:output_type -> cards.v1.ExportContactsResponse
	15, // [15:22] is the sub-list for method output_type
	8,  // [8:15] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_cards_v1_cards_proto_init() }
func file_cards_v1_cards_proto_init() {
	if File_cards_v1_cards_proto != nil {
		return
	}
	file_cards_v1_cards_proto_msgTypes[12].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cards_v1_cards_proto_goTypes,
		DependencyIndexes: file_cards_v1_cards_proto_depIdxs,
		MessageInfos:      file_cards_v1_cards_proto_msgTypes,
	}.Build()
	File_cards_v1_cards_proto = out.File
	file_cards_v1_cards_proto_goTypes = nil
	file_cards_v1_cards_proto_depIdxs = nil
}
