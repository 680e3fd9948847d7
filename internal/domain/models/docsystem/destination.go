package docsystem

// DestinationType identifies the kind of container an import targets.
type DestinationType string

const (
	DestinationProject DestinationType = "project"
	DestinationLibrary DestinationType = "library"
	DestinationWeldLog DestinationType = "weldLog"
	DestinationWeld    DestinationType = "weld"
)

// ScopeKeys is the exact foreign-key set scoping a document to its
// destination. Empty fields are omitted from the persisted row.
type ScopeKeys struct {
	ProjectID string `json:"project_id,omitempty"`
	LibraryID string `json:"library_id,omitempty"`
	WeldLogID string `json:"weld_log_id,omitempty"`
	WeldID    string `json:"weld_id,omitempty"`
}

// Destination is the routed target of an import: the destination type, the
// scoping key set, and whether the container is flat (no sections).
type Destination struct {
	Type DestinationType
	Keys ScopeKeys
}

// Flat reports whether the destination has no section structure. Documents
// imported into a flat destination always end up with a NULL section id.
func (d Destination) Flat() bool {
	return d.Type == DestinationWeldLog || d.Type == DestinationWeld
}
