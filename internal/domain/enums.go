package domain

// UserRole is the closed set of roles operating the production pipeline.
type UserRole string

const (
	RoleAdmin           UserRole = "admin"
	RolePreparateur     UserRole = "preparateur"
	RoleImprimeurRoland UserRole = "imprimeur_roland"
	RoleImprimeurXerox  UserRole = "imprimeur_xerox"
	RoleLivreur         UserRole = "livreur"
)

// AllRoles lists every recognized role.
var AllRoles = []UserRole{
	RoleAdmin,
	RolePreparateur,
	RoleImprimeurRoland,
	RoleImprimeurXerox,
	RoleLivreur,
}

// Valid reports whether the role belongs to the recognized set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RolePreparateur, RoleImprimeurRoland, RoleImprimeurXerox, RoleLivreur:
		return true
	}
	return false
}

// Machine returns the printer machine a role operates, or MachineNone for
// roles that are not printer operators.
func (r UserRole) Machine() MachineType {
	switch r {
	case RoleImprimeurRoland:
		return MachineRoland
	case RoleImprimeurXerox:
		return MachineXerox
	}
	return MachineNone
}

// MachineType identifies the printer a dossier is assigned to.
// Assigned at creation and immutable afterward except by admin.
type MachineType string

const (
	MachineRoland MachineType = "roland"
	MachineXerox  MachineType = "xerox"
	MachineNone   MachineType = ""
)

// ParseMachineType maps a raw machine string to a MachineType.
func ParseMachineType(raw string) (MachineType, bool) {
	switch MachineType(raw) {
	case MachineRoland:
		return MachineRoland, true
	case MachineXerox:
		return MachineXerox, true
	case MachineNone:
		return MachineNone, true
	}
	return MachineNone, false
}

// Action is a non-status operation gated by the access engine.
type Action string

const (
	ActionView         Action = "view"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionValidate     Action = "validate"
	ActionUploadFile   Action = "upload_file"
	ActionDeleteFile   Action = "delete_file"
	ActionChangeStatus Action = "change_status"
	ActionAssign       Action = "assign"
	ActionDownload     Action = "download"
	ActionAccessFiles  Action = "access_files"
)

// FileType represents the allowed file types for dossier uploads.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// DevisStatus represents the lifecycle of a quote.
type DevisStatus string

const (
	DevisPending  DevisStatus = "pending"
	DevisAccepted DevisStatus = "accepted"
	DevisRejected DevisStatus = "rejected"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCheque   PaymentMethod = "cheque"
)
