package api

import (
	"context"
	"io"
)

// UploadOptions describes a QKView upload.
type UploadOptions struct {
	Filename string
	Content  io.Reader

	// Optional form fields; empty values are omitted from the request.
	Description        string
	VisibleInGUI       string
	F5SupportCase      string
	ShareWithCaseOwner string
}

// MetadataUpdate carries the mutable QKView metadata fields. Empty fields
// are left untouched upstream.
type MetadataUpdate struct {
	Description   string
	VisibleInGUI  string
	F5SupportCase string
	NonF5Case     string
}

// IsZero reports whether no field is set.
func (m MetadataUpdate) IsZero() bool {
	return m == MetadataUpdate{}
}

// DiagnosticSet filters diagnostics to issues found or checks passed.
type DiagnosticSet string

const (
	DiagnosticSetAll  DiagnosticSet = ""
	DiagnosticSetHit  DiagnosticSet = "hit"
	DiagnosticSetMiss DiagnosticSet = "miss"
)

// Provider abstracts access to the iHealth qkview-analyzer API. Every
// method funnels through a single authenticated request pipeline; tool
// handlers depend only on this interface.
type Provider interface {
	// GetAPIInfo returns API version and operating parameters.
	GetAPIInfo(ctx context.Context) (*Result, error)

	// Collection management
	ListQKViews(ctx context.Context) (*Result, error)
	UploadQKView(ctx context.Context, opts UploadOptions) (*Result, error)
	DeleteQKView(ctx context.Context, qkviewID string) (*Result, error)
	DeleteAllQKViews(ctx context.Context) (*Result, error)

	// Metadata
	GetQKViewMetadata(ctx context.Context, qkviewID string) (*Result, error)
	UpdateQKViewMetadata(ctx context.Context, qkviewID string, update MetadataUpdate) (*Result, error)

	// Diagnostics
	GetDiagnostics(ctx context.Context, qkviewID string, set DiagnosticSet, format Format) (*Result, error)

	// Files contained in a QKView, referenced by hash
	ListFiles(ctx context.Context, qkviewID string) (*Result, error)
	GetFile(ctx context.Context, qkviewID, fileHash string) (*Result, error)

	// Captured tmsh command output
	ListCommands(ctx context.Context, qkviewID string) (*Result, error)
	GetCommandOutput(ctx context.Context, qkviewID, command string) (*Result, error)

	// BIG-IP system information
	GetBigIPInfo(ctx context.Context, qkviewID string) (*Result, error)
	GetBigIPSlotInfo(ctx context.Context, qkviewID string, slot int) (*Result, error)
	GetHardwareInfo(ctx context.Context, qkviewID string, slot int) (*Result, error)
	GetSoftwareInfo(ctx context.Context, qkviewID string, slot int) (*Result, error)
	GetLicenseInfo(ctx context.Context, qkviewID string, slot int) (*Result, error)

	// Log search
	SearchLogs(ctx context.Context, qkviewID, term string) (*Result, error)

	// ValidateCredentials performs a token exchange without touching any
	// resource endpoint.
	ValidateCredentials(ctx context.Context) error
}
