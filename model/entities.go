package model

// Entities are the open shapes some endpoints return instead of a view.
// Every field is optional on the wire.

type Account struct {
	CreatedTime  *string     `json:"createdTime,omitempty"`
	ModifiedTime *string     `json:"modifiedTime,omitempty"`
	ID           *string     `json:"id,omitempty"`
	Username     *string     `json:"username,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Status       *UserStatus `json:"status,omitempty"`
	Role         *Role       `json:"role,omitempty"`
}

// StaticFile is a stored object.
type StaticFile struct {
	CreatedTime  *string   `json:"createdTime,omitempty"`
	ModifiedTime *string   `json:"modifiedTime,omitempty"`
	ID           *string   `json:"id,omitempty"`
	FileName     *string   `json:"fileName,omitempty"`     // Stored object name
	OriginalName *string   `json:"originalName,omitempty"` // Name as uploaded
	FileSize     *int64    `json:"fileSize,omitempty"`     // Bytes
	FilePath     *string   `json:"filePath,omitempty"`     // Full object path in storage
	MimeType     *string   `json:"mimeType,omitempty"`
	FileType     *FileType `json:"fileType,omitempty"`
	UploaderID   *string   `json:"uploaderId,omitempty"`
	Uploader     *Account  `json:"uploader,omitempty"`
}

// Log is one audit log entry.
type Log struct {
	CreatedTime    *string        `json:"createdTime,omitempty"`
	ModifiedTime   *string        `json:"modifiedTime,omitempty"`
	ID             *string        `json:"id,omitempty"`
	AccountID      *string        `json:"accountId,omitempty"`
	Action         *string        `json:"action,omitempty"`
	TargetEntity   *string        `json:"targetEntity,omitempty"`
	EntityID       *string        `json:"entityId,omitempty"`
	IPAddress      *string        `json:"ipAddress,omitempty"`
	UserAgent      *string        `json:"userAgent,omitempty"`
	RequestMethod  *RequestMethod `json:"requestMethod,omitempty"`
	RequestURL     *string        `json:"requestUrl,omitempty"`
	ResponseStatus *int           `json:"responseStatus,omitempty"`
	ErrorMessage   *string        `json:"errorMessage,omitempty"`
	Account        *Account       `json:"account,omitempty"`
}

type LedgerTemplate struct {
	Account      *Account              `json:"account,omitempty"`
	CreatedTime  *string               `json:"createdTime,omitempty"`
	ModifiedTime *string               `json:"modifiedTime,omitempty"`
	Tenant       *string               `json:"tenant,omitempty"`
	ID           *string               `json:"id,omitempty"`
	Name         *string               `json:"name,omitempty"`
	Description  *string               `json:"description,omitempty"`
	Category     *string               `json:"category,omitempty"`
	Version      *int                  `json:"version,omitempty"`
	Enabled      *bool                 `json:"enabled,omitempty"`
	Icon         *StaticFile           `json:"icon,omitempty"`
	File         *StaticFile           `json:"file,omitempty"`
	Color        *string               `json:"color,omitempty"`
	SortOrder    *int                  `json:"sortOrder,omitempty"`
	Fields       []LedgerTemplateField `json:"fields,omitempty"`
}

// LedgerTemplateField is a field definition as stored on a template.
type LedgerTemplateField struct {
	ID           *string    `json:"id,omitempty"`
	FieldName    *string    `json:"fieldName,omitempty"`
	FieldLabel   *string    `json:"fieldLabel,omitempty"`
	FieldType    *FieldType `json:"fieldType,omitempty"`
	FieldOptions *string    `json:"fieldOptions,omitempty"`
	Required     *bool      `json:"required,omitempty"`
	SortOrder    *int       `json:"sortOrder,omitempty"`
}
