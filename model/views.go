package model

// ViewName identifies a backend view projection as "<Service>/<VIEW>".
type ViewName string

const (
	ViewSimpleAccount  ViewName = "AccountService/SIMPLE_ACCOUNT"
	ViewCompanyName    ViewName = "CompanyService/COMPANY_NAME"
	ViewListCompany    ViewName = "CompanyService/LIST_COMPANY"
	ViewCompanyMember  ViewName = "CompanyService/COMPANY_MEMBER"
	ViewListTemplate   ViewName = "TemplateService/LIST_TEMPLATE"
	ViewSimpleTemplate ViewName = "TemplateService/SIMPLE_TEMPLATE"
	ViewListNote       ViewName = "NoteService/LIST_NOTE"
)

// Projection is implemented by every view type. A view is a fixed subset
// of an entity's fields and is authored on its own; views never share
// nested types.
type Projection interface {
	View() ViewName
}

var (
	_ Projection = AccountSimple{}
	_ Projection = CompanyName{}
	_ Projection = CompanyListItem{}
	_ Projection = CompanyMember{}
	_ Projection = TemplateListItem{}
	_ Projection = TemplateSimple{}
	_ Projection = NoteListItem{}
)

// Views lists every registered projection, keyed by name.
func Views() map[ViewName]Projection {
	return map[ViewName]Projection{
		ViewSimpleAccount:  AccountSimple{},
		ViewCompanyName:    CompanyName{},
		ViewListCompany:    CompanyListItem{},
		ViewCompanyMember:  CompanyMember{},
		ViewListTemplate:   TemplateListItem{},
		ViewSimpleTemplate: TemplateSimple{},
		ViewListNote:       NoteListItem{},
	}
}

// AccountSimple is AccountService/SIMPLE_ACCOUNT.
type AccountSimple struct {
	ID               string                    `json:"id"`
	Username         string                    `json:"username"`
	Phone            *string                   `json:"phone,omitempty"`
	Role             Role                      `json:"role"`
	Avatar           *AccountSimpleAvatar      `json:"avatar,omitempty"`
	AccountCompanies []AccountSimpleMembership `json:"accountCompanies"`
}

func (AccountSimple) View() ViewName { return ViewSimpleAccount }

type AccountSimpleAvatar struct {
	ID       string    `json:"id"`
	FilePath string    `json:"filePath"` // Full object path in storage
	FileName string    `json:"fileName"` // Stored object name
	FileType *FileType `json:"fileType,omitempty"`
}

type AccountSimpleMembership struct {
	ID         string               `json:"id"`
	ChoiceFlag bool                 `json:"choiceFlag"` // The company currently selected by the account
	Role       Role                 `json:"role"`
	Company    AccountSimpleCompany `json:"company"`
}

type AccountSimpleCompany struct {
	ID     string `json:"id"`
	Tenant string `json:"tenant"`
	Name   string `json:"name"`
}

// Tenants returns the tenant ids the account belongs to, selected company
// first.
func (a AccountSimple) Tenants() []string {
	tenants := make([]string, 0, len(a.AccountCompanies))
	for _, m := range a.AccountCompanies {
		if m.ChoiceFlag {
			tenants = append([]string{m.Company.Tenant}, tenants...)
			continue
		}
		tenants = append(tenants, m.Company.Tenant)
	}
	return tenants
}

// CompanyName is CompanyService/COMPANY_NAME.
type CompanyName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (CompanyName) View() ViewName { return ViewCompanyName }

// CompanyListItem is CompanyService/LIST_COMPANY.
type CompanyListItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	Address *string `json:"address,omitempty"`
	Tenant  string  `json:"tenant"`
	Contact *string `json:"contact,omitempty"`
}

func (CompanyListItem) View() ViewName { return ViewListCompany }

// CompanyMember is CompanyService/COMPANY_MEMBER.
type CompanyMember struct {
	ID      string               `json:"id"`
	Role    Role                 `json:"role"`
	Account CompanyMemberAccount `json:"account"`
}

func (CompanyMember) View() ViewName { return ViewCompanyMember }

type CompanyMemberAccount struct {
	ID       string               `json:"id"`
	Username string               `json:"username"`
	Avatar   *CompanyMemberAvatar `json:"avatar,omitempty"`
}

type CompanyMemberAvatar struct {
	ID       string `json:"id"`
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

// TemplateListItem is TemplateService/LIST_TEMPLATE.
type TemplateListItem struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Category    *string                `json:"category,omitempty"`
	Description *string                `json:"description,omitempty"`
	Enabled     bool                   `json:"enabled"`
	Icon        *TemplateListIcon      `json:"icon,omitempty"`
	File        *TemplateListFileRef   `json:"file,omitempty"`
	Fields      []TemplateListFieldRef `json:"fields"`
}

func (TemplateListItem) View() ViewName { return ViewListTemplate }

type TemplateListIcon struct {
	ID           string    `json:"id"`
	CreatedTime  string    `json:"createdTime"`
	ModifiedTime string    `json:"modifiedTime"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"` // Bytes
	FilePath     string    `json:"filePath"`
	MimeType     *string   `json:"mimeType,omitempty"`
	FileType     *FileType `json:"fileType,omitempty"`
}

type TemplateListFileRef struct {
	ID string `json:"id"`
}

type TemplateListFieldRef struct {
	ID string `json:"id"`
}

// TemplateSimple is TemplateService/SIMPLE_TEMPLATE.
type TemplateSimple struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    *string               `json:"category,omitempty"`
	Description *string               `json:"description,omitempty"`
	Enabled     bool                  `json:"enabled"`
	Icon        *TemplateSimpleFile   `json:"icon,omitempty"`
	File        *TemplateSimpleFile   `json:"file,omitempty"`
	Fields      []TemplateSimpleField `json:"fields"`
	Color       *string               `json:"color,omitempty"`
}

func (TemplateSimple) View() ViewName { return ViewSimpleTemplate }

type TemplateSimpleFile struct {
	ID       string `json:"id"`
	FilePath string `json:"filePath"`
}

type TemplateSimpleField struct {
	ID           string    `json:"id"`
	FieldName    string    `json:"fieldName"`              // Machine name
	FieldLabel   string    `json:"fieldLabel"`             // Display label
	FieldOptions *string   `json:"fieldOptions,omitempty"` // JSON array of choices for SELECT and MULTISELECT
	FieldType    FieldType `json:"fieldType"`
	Required     bool      `json:"required"`
}

// NoteListItem is NoteService/LIST_NOTE.
type NoteListItem struct {
	ID           string            `json:"id"`
	Tenant       string            `json:"tenant"`
	CreatedTime  string            `json:"createdTime"`
	ModifiedTime string            `json:"modifiedTime"`
	Title        string            `json:"title"`
	Content      *string           `json:"content,omitempty"`
	Lat          *float64          `json:"lat,omitempty"`
	Lng          *float64          `json:"lng,omitempty"`
	Files        []NoteListFile    `json:"files"`
	AboutAccount []NoteListAccount `json:"aboutAccount"`
}

func (NoteListItem) View() ViewName { return ViewListNote }

type NoteListFile struct {
	ID           string    `json:"id"`
	CreatedTime  string    `json:"createdTime"`
	ModifiedTime string    `json:"modifiedTime"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"`
	FilePath     string    `json:"filePath"`
	MimeType     *string   `json:"mimeType,omitempty"`
	FileType     *FileType `json:"fileType,omitempty"`
}

type NoteListAccount struct {
	ID           string     `json:"id"`
	CreatedTime  string     `json:"createdTime"`
	ModifiedTime string     `json:"modifiedTime"`
	Username     string     `json:"username"`
	Email        *string    `json:"email,omitempty"`
	Phone        string     `json:"phone"`
	Status       UserStatus `json:"status"`
	Role         Role       `json:"role"`
}
