// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: facturas/v1/facturas.proto

package facturasv1

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

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	NombreArchivo string                 `protobuf:"bytes,2,opt,name=nombre_archivo,json=nombreArchivo,proto3" json:"nombre_archivo,omitempty"`
	ArchivoPadre  string                 `protobuf:"bytes,3,opt,name=archivo_padre,json=archivoPadre,proto3" json:"archivo_padre,omitempty"`
	HashArchivo   string                 `protobuf:"bytes,4,opt,name=hash_archivo,json=hashArchivo,proto3" json:"hash_archivo,omitempty"`
	TamanoBytes   int64                  `protobuf:"varint,5,opt,name=tamano_bytes,json=tamanoBytes,proto3" json:"tamano_bytes,omitempty"`
	NumeroPaginas int32                  `protobuf:"varint,6,opt,name=numero_paginas,json=numeroPaginas,proto3" json:"numero_paginas,omitempty"`
	TipoDocumento string                 `protobuf:"bytes,7,opt,name=tipo_documento,json=tipoDocumento,proto3" json:"tipo_documento,omitempty"`
	Estado        int32                  `protobuf:"varint,8,opt,name=estado,proto3" json:"estado,omitempty"`
	EstadoNombre  string                 `protobuf:"bytes,9,opt,name=estado_nombre,json=estadoNombre,proto3" json:"estado_nombre,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[0]
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
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Document) GetNombreArchivo() string {
	if x != nil {
		return x.NombreArchivo
	}
	return ""
}

func (x *Document) GetArchivoPadre() string {
	if x != nil {
		return x.ArchivoPadre
	}
	return ""
}

func (x *Document) GetHashArchivo() string {
	if x != nil {
		return x.HashArchivo
	}
	return ""
}

func (x *Document) GetTamanoBytes() int64 {
	if x != nil {
		return x.TamanoBytes
	}
	return 0
}

func (x *Document) GetNumeroPaginas() int32 {
	if x != nil {
		return x.NumeroPaginas
	}
	return 0
}

func (x *Document) GetTipoDocumento() string {
	if x != nil {
		return x.TipoDocumento
	}
	return ""
}

func (x *Document) GetEstado() int32 {
	if x != nil {
		return x.Estado
	}
	return 0
}

func (x *Document) GetEstadoNombre() string {
	if x != nil {
		return x.EstadoNombre
	}
	return ""
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

type ConsolidatedField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Campo         string                 `protobuf:"bytes,1,opt,name=campo,proto3" json:"campo,omitempty"`
	Valor         string                 `protobuf:"bytes,2,opt,name=valor,proto3" json:"valor,omitempty"`
	Metodo        string                 `protobuf:"bytes,3,opt,name=metodo,proto3" json:"metodo,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsolidatedField) Reset() {
	*x = ConsolidatedField{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsolidatedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsolidatedField) ProtoMessage() {}

func (x *ConsolidatedField) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsolidatedField.ProtoReflect.Descriptor instead.
func (*ConsolidatedField) Descriptor() ([]byte, []int) {
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{1}
}

func (x *ConsolidatedField) GetCampo() string {
	if x != nil {
		return x.Campo
	}
	return ""
}

func (x *ConsolidatedField) GetValor() string {
	if x != nil {
		return x.Valor
	}
	return ""
}

func (x *ConsolidatedField) GetMetodo() string {
	if x != nil {
		return x.Metodo
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[2]
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
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[3]
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
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListConsolidatedFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConsolidatedFieldsRequest) Reset() {
	*x = ListConsolidatedFieldsRequest{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConsolidatedFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConsolidatedFieldsRequest) ProtoMessage() {}

func (x *ListConsolidatedFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConsolidatedFieldsRequest.ProtoReflect.Descriptor instead.
func (*ListConsolidatedFieldsRequest) Descriptor() ([]byte, []int) {
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{4}
}

func (x *ListConsolidatedFieldsRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type ListConsolidatedFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*ConsolidatedField   `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListConsolidatedFieldsResponse) Reset() {
	*x = ListConsolidatedFieldsResponse{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListConsolidatedFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListConsolidatedFieldsResponse) ProtoMessage() {}

func (x *ListConsolidatedFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListConsolidatedFieldsResponse.ProtoReflect.Descriptor instead.
func (*ListConsolidatedFieldsResponse) Descriptor() ([]byte, []int) {
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{5}
}

func (x *ListConsolidatedFieldsResponse) GetFields() []*ConsolidatedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Estado        int32                  `protobuf:"varint,1,opt,name=estado,proto3" json:"estado,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsRequest) GetEstado() int32 {
	if x != nil {
		return x.Estado
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_facturas_v1_facturas_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_facturas_v1_facturas_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_facturas_v1_facturas_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

var File_facturas_v1_facturas_proto protoreflect.FileDescriptor

const file_facturas_v1_facturas_proto_rawDesc = "" +
	"\n" +
	"\x1afacturas/v1/facturas.proto\x12\vfacturas.v1\"\xf5\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12%\n" +
	"\x0enombre_archivo\x18\x02 \x01(\tR\rnombreArchivo\x12#\n" +
	"\rarchivo_padre\x18\x03 \x01(\tR\farchivoPadre\x12!\n" +
	"\fhash_archivo\x18\x04 \x01(\tR\vhashArchivo\x12!\n" +
	"\ftamano_bytes\x18\x05 \x01(\x03R\vtamanoBytes\x12%\n" +
	"\x0enumero_paginas\x18\x06 \x01(\x05R\rnumeroPaginas\x12%\n" +
	"\x0etipo_documento\x18\a \x01(\tR\rtipoDocumento\x12\x16\n" +
	"\x06estado\x18\b \x01(\x05R\x06estado\x12#\n" +
	"\restado_nombre\x18\t \x01(\tR\festadoNombre\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"W\n" +
	"\x11ConsolidatedField\x12\x14\n" +
	"\x05campo\x18\x01 \x01(\tR\x05campo\x12\x14\n" +
	"\x05valor\x18\x02 \x01(\tR\x05valor\x12\x16\n" +
	"\x06metodo\x18\x03 \x01(\tR\x06metodo\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.facturas.v1.DocumentR\bdocument\"@\n" +
	"\x1dListConsolidatedFieldsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"X\n" +
	"\x1eListConsolidatedFieldsResponse\x126\n" +
	"\x06fields\x18\x01 \x03(\v2\x1e.facturas.v1.ConsolidatedFieldR\x06fields\".\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06estado\x18\x01 \x01(\x05R\x06estado\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.facturas.v1.DocumentR\tdocuments2\xae\x02\n" +
	"\x0fFacturasService\x12P\n" +
	"\vGetDocument\x12\x1f.facturas.v1.GetDocumentRequest\x1a .facturas.v1.GetDocumentResponse\x12q\n" +
	"\x16ListConsolidatedFields\x12*.facturas.v1.ListConsolidatedFieldsRequest\x1a+.facturas.v1.ListConsolidatedFieldsResponse\x12V\n" +
	"\rListDocuments\x12!.facturas.v1.ListDocumentsRequest\x1a\".facturas.v1.ListDocumentsResponseB<Z:github.com/facturascan/pipeline/gen/facturas/v1;facturasv1b\x06proto3"

var (
	file_facturas_v1_facturas_proto_rawDescOnce sync.Once
	file_facturas_v1_facturas_proto_rawDescData []byte
)

func file_facturas_v1_facturas_proto_rawDescGZIP() []byte {
	file_facturas_v1_facturas_proto_rawDescOnce.Do(func() {
		file_facturas_v1_facturas_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_facturas_v1_facturas_proto_rawDesc), len(file_facturas_v1_facturas_proto_rawDesc)))
	})
	return file_facturas_v1_facturas_proto_rawDescData
}

var file_facturas_v1_facturas_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_facturas_v1_facturas_proto_goTypes = []any{
	(*Document)(nil),                       // 0: facturas.v1.Document
	(*ConsolidatedField)(nil),              // 1: facturas.v1.ConsolidatedField
	(*GetDocumentRequest)(nil),             // 2: facturas.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),            // 3: facturas.v1.GetDocumentResponse
	(*ListConsolidatedFieldsRequest)(nil),  // 4: facturas.v1.ListConsolidatedFieldsRequest
	(*ListConsolidatedFieldsResponse)(nil), // 5: facturas.v1.ListConsolidatedFieldsResponse
	(*ListDocumentsRequest)(nil),           // 6: facturas.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),          // 7: facturas.v1.ListDocumentsResponse
}
var file_facturas_v1_facturas_proto_depIdxs = []int32{
	0, // 0: facturas.v1.GetDocumentResponse.document:type_name -> facturas.v1.Document
	1, // 1: facturas.v1.ListConsolidatedFieldsResponse.fields:type_name -> facturas.v1.ConsolidatedField
	0, // 2: facturas.v1.ListDocumentsResponse.documents:type_name -> facturas.v1.Document
	2, // 3: facturas.v1.FacturasService.GetDocument:input_type -> facturas.v1.GetDocumentRequest
	4, // 4: facturas.v1.FacturasService.ListConsolidatedFields:input_type -> facturas.v1.ListConsolidatedFieldsRequest
	6, // 5: facturas.v1.FacturasService.ListDocuments:input_type -> facturas.v1.ListDocumentsRequest
	3, // 6: facturas.v1.FacturasService.GetDocument:output_type -> facturas.v1.GetDocumentResponse
	5, // 7: facturas.v1.FacturasService.ListConsolidatedFields:output_type -> facturas.v1.ListConsolidatedFieldsResponse
	7, // 8: facturas.v1.FacturasService.ListDocuments:output_type -> facturas.v1.ListDocumentsResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_facturas_v1_facturas_proto_init() }
func file_facturas_v1_facturas_proto_init() {
	if File_facturas_v1_facturas_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_facturas_v1_facturas_proto_rawDesc), len(file_facturas_v1_facturas_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_facturas_v1_facturas_proto_goTypes,
		DependencyIndexes: file_facturas_v1_facturas_proto_depIdxs,
		MessageInfos:      file_facturas_v1_facturas_proto_msgTypes,
	}.Build()
	File_facturas_v1_facturas_proto = out.File
	file_facturas_v1_facturas_proto_goTypes = nil
	file_facturas_v1_facturas_proto_depIdxs = nil
}
