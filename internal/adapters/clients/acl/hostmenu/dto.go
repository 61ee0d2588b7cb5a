// Package hostmenu implements the Anti-Corruption Layer translators for the
// remote host's menu action resources.
package hostmenu

// ActionRequestDTO matches the remote host's RegisterMenuActionRequest schema.
// Path carries the full segment list, group segment included.
type ActionRequestDTO struct {
	Path      []string `json:"path"`
	CommandID string   `json:"command_id"`
	Order     *string  `json:"order,omitempty"`
}
