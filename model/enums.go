package model

// Role is the account role as the backend names it.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN" // Platform operator
	RoleAdmin      Role = "ADMIN"       // Company (tenant) administrator
	RoleUser       Role = "USER"        // Regular member
)

type UserStatus string

const (
	UserInactive UserStatus = "INACTIVE"
	UserActive   UserStatus = "ACTIVE"
	UserLocked   UserStatus = "LOCKED"
	UserPending  UserStatus = "PENDING"
	UserDeleted  UserStatus = "DELETED"
)

type CompanyStatus string

const (
	CompanyInactive  CompanyStatus = "INACTIVE"
	CompanyActive    CompanyStatus = "ACTIVE"
	CompanySuspended CompanyStatus = "SUSPENDED"
	CompanyPending   CompanyStatus = "PENDING"
	CompanyDeleted   CompanyStatus = "DELETED"
)

// FileType classifies stored files.
type FileType string

const (
	FileImage        FileType = "IMAGE"
	FileVideo        FileType = "VIDEO"
	FileAudio        FileType = "AUDIO"
	FileDocument     FileType = "DOCUMENT"
	FileSpreadsheet  FileType = "SPREADSHEET"
	FilePresentation FileType = "PRESENTATION"
	FileArchive      FileType = "ARCHIVE"
	FileCode         FileType = "CODE"
	FileOther        FileType = "OTHER"
)

// FieldType is the input kind of a template field.
type FieldType string

const (
	FieldText        FieldType = "TEXT"
	FieldTextarea    FieldType = "TEXTAREA"
	FieldNumber      FieldType = "NUMBER"
	FieldInteger     FieldType = "INTEGER"
	FieldDecimal     FieldType = "DECIMAL"
	FieldDate        FieldType = "DATE"
	FieldDatetime    FieldType = "DATETIME"
	FieldTime        FieldType = "TIME"
	FieldBoolean     FieldType = "BOOLEAN"
	FieldSelect      FieldType = "SELECT"
	FieldMultiselect FieldType = "MULTISELECT"
	FieldFile        FieldType = "FILE"
	FieldEmail       FieldType = "EMAIL"
	FieldPhone       FieldType = "PHONE"
	FieldURL         FieldType = "URL"
)

// RequestMethod is the HTTP method recorded in an audit log entry.
type RequestMethod string

const (
	RequestGet     RequestMethod = "GET"
	RequestPost    RequestMethod = "POST"
	RequestPut     RequestMethod = "PUT"
	RequestDelete  RequestMethod = "DELETE"
	RequestPatch   RequestMethod = "PATCH"
	RequestHead    RequestMethod = "HEAD"
	RequestOptions RequestMethod = "OPTIONS"
)
