package model

// Auth

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	VerCode  string `json:"verCode,omitempty"` // Captcha answer
	VerKey   string `json:"verKey,omitempty"`  // Captcha key from /auth/captcha
}

type RegisterInput struct {
	Username string  `json:"username"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
	VerCode  string  `json:"verCode"`
	VerKey   string  `json:"verKey"`
}

type SmsLoginInput struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// AuthResponse is returned by every sign-in operation. Tenant is empty
// when the account has not selected a company yet.
type AuthResponse struct {
	Token  string `json:"token"`
	ID     string `json:"id"`
	Role   Role   `json:"role,omitempty"`
	Tenant string `json:"tenant,omitempty"`
}

type CaptchaResponse struct {
	VerKey string `json:"verKey"`
	Image  string `json:"image"` // Base64 data URI
}

// Account

type AccountSearch struct {
	Keyword *string     `json:"keyword,omitempty"`
	Status  *UserStatus `json:"status,omitempty"`
	Role    *Role       `json:"role,omitempty"`
}

type UpdateInput struct {
	ID       *string `json:"id,omitempty"`
	Username string  `json:"username"`
	Phone    string  `json:"phone"`
	AvatarID *string `json:"avatarId,omitempty"`
}

type ChangeAccountStatusInput struct {
	ID     *string    `json:"id,omitempty"`
	Status UserStatus `json:"status"`
}

type JoinCompany struct {
	ID               *string             `json:"id,omitempty"`
	AccountCompanies []JoinCompanyTarget `json:"accountCompanies"`
}

type JoinCompanyTarget struct {
	ID         *string `json:"id,omitempty"`
	CompanyID  string  `json:"companyId"`
	ChoiceFlag bool    `json:"choiceFlag"`
}

// Company

type CompanyAddInput struct {
	Name    string        `json:"name"`
	Code    string        `json:"code"`
	Phone   *string       `json:"phone,omitempty"`
	Address *string       `json:"address,omitempty"`
	Contact *string       `json:"contact,omitempty"`
	Status  CompanyStatus `json:"status"`
	Tenant  string        `json:"tenant"`
}

type CompanySearch struct {
	Keywords *string        `json:"keywords,omitempty"`
	Contact  *string        `json:"contact,omitempty"`
	Status   *CompanyStatus `json:"status,omitempty"`
}

type ChangeCompanyRole struct {
	CompanyID string `json:"companyId"`
	AccountID string `json:"accountId"`
	Role      Role   `json:"role"`
}

// Note

type CreateNote struct {
	Title           string   `json:"title"`
	Content         *string  `json:"content,omitempty"`
	FilesIDs        []string `json:"filesIds"`
	AboutAccountIDs []string `json:"aboutAccountIds"`
}

type NoteSearch struct {
	Keyword *string `json:"keyword,omitempty"`
}

// Template

type CreateTemplate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IconFileID  *string `json:"iconFileId,omitempty"`
	FileID      *string `json:"fileId,omitempty"`
	SortOrder   int     `json:"sortOrder"`
	Color       *string `json:"color,omitempty"`
}

// CreateTemplateField is a field definition proposed for a new template,
// typically by the assistant.
type CreateTemplateField struct {
	FieldName    string    `json:"fieldName"`
	FieldLabel   string    `json:"fieldLabel"`
	FieldType    FieldType `json:"fieldType"`
	FieldOptions []string  `json:"fieldOptions,omitempty"`
	DefaultValue *string   `json:"defaultValue,omitempty"`
	Placeholder  *string   `json:"placeholder,omitempty"`
	HelpText     *string   `json:"helpText,omitempty"`
	Required     bool      `json:"required"`
	MinLength    *int      `json:"minLength,omitempty"`
	MaxLength    *int      `json:"maxLength,omitempty"`
	MinValue     *float64  `json:"minValue,omitempty"`
	MaxValue     *float64  `json:"maxValue,omitempty"`
	Pattern      *string   `json:"pattern,omitempty"`
	SortOrder    int       `json:"sortOrder"`
	Width        *string   `json:"width,omitempty"`
	Visible      bool      `json:"visible"`
	Editable     bool      `json:"editable"`
	Searchable   bool      `json:"searchable"`
}

type UpdateTemplate struct {
	ID     *string               `json:"id,omitempty"`
	Fields []UpdateTemplateField `json:"fields"`
}

type UpdateTemplateField struct {
	ID           *string   `json:"id,omitempty"`
	FieldName    string    `json:"fieldName"`
	FieldLabel   string    `json:"fieldLabel"`
	FieldType    FieldType `json:"fieldType"`
	FieldOptions *string   `json:"fieldOptions,omitempty"` // JSON array text
	DefaultValue *string   `json:"defaultValue,omitempty"`
	Placeholder  *string   `json:"placeholder,omitempty"`
	HelpText     *string   `json:"helpText,omitempty"`
	Required     bool      `json:"required"`
	MinLength    *int      `json:"minLength,omitempty"`
	MaxLength    *int      `json:"maxLength,omitempty"`
	MinValue     *float64  `json:"minValue,omitempty"`
	MaxValue     *float64  `json:"maxValue,omitempty"`
	Pattern      *string   `json:"pattern,omitempty"`
	SortOrder    int       `json:"sortOrder"`
	Width        *string   `json:"width,omitempty"`
	Visible      bool      `json:"visible"`
	Editable     bool      `json:"editable"`
	Searchable   bool      `json:"searchable"`
}

type SearchTemplate struct {
	Keyword  *string `json:"keyword,omitempty"`
	Category *string `json:"category,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

type ChangeTemplateStatus struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// Log

type LogSpecification struct {
	Action         *string        `json:"action,omitempty"`
	TargetEntity   *string        `json:"targetEntity,omitempty"`
	EntityID       *string        `json:"entityId,omitempty"`
	IPAddress      *string        `json:"ipAddress,omitempty"`
	UserAgent      *string        `json:"userAgent,omitempty"`
	RequestMethod  *RequestMethod `json:"requestMethod,omitempty"`
	RequestURL     *string        `json:"requestUrl,omitempty"`
	ResponseStatus *int           `json:"responseStatus,omitempty"`
	ErrorMessage   *string        `json:"errorMessage,omitempty"`
}

// Assistant

type AiChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type AiChatRequest struct {
	Message string          `json:"message"`
	History []AiChatMessage `json:"history,omitempty"`
}

type AiChatResponse struct {
	Reply string `json:"reply"`
}
