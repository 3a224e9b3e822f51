package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated operator of the print shop.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Dossier is a print order moving through the production pipeline.
// LegacyID carries the numeric id of records migrated from the previous
// system and is only used for lookup.
type Dossier struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	OrderNumber   string        `db:"order_number" json:"order_number"`
	LegacyID      *int64        `db:"legacy_id" json:"legacy_id,omitempty"`
	ClientName    string        `db:"client_name" json:"client_name"`
	Description   string        `db:"description" json:"description"`
	Status        DossierStatus `db:"status" json:"status"`
	StatusComment string        `db:"status_comment" json:"status_comment"`
	MachineType   MachineType   `db:"machine_type" json:"machine_type"`
	OwnerID       uuid.UUID     `db:"owner_id" json:"owner_id"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// DossierFile stores metadata about an artwork file uploaded for a dossier.
type DossierFile struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	DossierID    uuid.UUID  `db:"dossier_id" json:"dossier_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Devis is a quote that may be accepted into a dossier.
type Devis struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	DevisNumber string      `db:"devis_number" json:"devis_number"`
	ClientName  string      `db:"client_name" json:"client_name"`
	Description string      `db:"description" json:"description"`
	MachineType MachineType `db:"machine_type" json:"machine_type"`
	Amount      float64     `db:"amount" json:"amount"`
	Status      DevisStatus `db:"status" json:"status"`
	DossierID   *uuid.UUID  `db:"dossier_id" json:"dossier_id,omitempty"`
	CreatedBy   uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// Payment is a payment recorded against a dossier.
type Payment struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	DossierID  uuid.UUID     `db:"dossier_id" json:"dossier_id"`
	Amount     float64       `db:"amount" json:"amount"`
	Method     PaymentMethod `db:"method" json:"method"`
	Note       string        `db:"note" json:"note"`
	RecordedBy uuid.UUID     `db:"recorded_by" json:"recorded_by"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

// ActivityEntry is an append-only record of a workflow-relevant action.
type ActivityEntry struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	DossierID *uuid.UUID `db:"dossier_id" json:"dossier_id,omitempty"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Action    string     `db:"action" json:"action"`
	Details   string     `db:"details" json:"details"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Notification is the ephemeral payload produced when a dossier changes
// status. The core only constructs it; delivery belongs to the dispatch sink.
type Notification struct {
	TargetRoles   []UserRole  `json:"target_roles"`
	TargetUserIDs []uuid.UUID `json:"target_user_ids"`
	Type          string      `json:"type"`
	Message       string      `json:"message"`
	DossierID     uuid.UUID   `json:"dossier_id"`
	OrderNumber   string      `json:"order_number"`
	ChangedBy     uuid.UUID   `json:"changed_by"`
}

// PreparerStat is the per-preparer workload row of the admin dashboard.
type PreparerStat struct {
	OwnerID  uuid.UUID `db:"owner_id" json:"owner_id"`
	FullName string    `db:"full_name" json:"full_name"`
	Total    int       `db:"total" json:"total"`
	EnCours  int       `db:"en_cours" json:"en_cours"`
	ARevoir  int       `db:"a_revoir" json:"a_revoir"`
	Livre    int       `db:"livre" json:"livre"`
}

// DashboardStats aggregates dossier counts for the admin dashboard.
type DashboardStats struct {
	TotalDossiers   int     `db:"total_dossiers" json:"total_dossiers"`
	EnCours         int     `db:"en_cours" json:"en_cours"`
	PretImpression  int     `db:"pret_impression" json:"pret_impression"`
	EnImpression    int     `db:"en_impression" json:"en_impression"`
	PretLivraison   int     `db:"pret_livraison" json:"pret_livraison"`
	EnLivraison     int     `db:"en_livraison" json:"en_livraison"`
	Livre           int     `db:"livre" json:"livre"`
	Termine         int     `db:"termine" json:"termine"`
	ARevoir         int     `db:"a_revoir" json:"a_revoir"`
	RolandDossiers  int     `db:"roland_dossiers" json:"roland_dossiers"`
	XeroxDossiers   int     `db:"xerox_dossiers" json:"xerox_dossiers"`
	PendingDevis    int     `db:"pending_devis" json:"pending_devis"`
	TotalPayments   float64 `db:"total_payments" json:"total_payments"`
}
