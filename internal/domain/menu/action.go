package menu

// Action is the payload submitted to the host menu registry.
type Action struct {
	CommandID string
	Order     *string
}

// SortKey is the value the host sorts actions by within a group: the order
// when present, the command id otherwise.
func (a Action) SortKey() string {
	if a.Order != nil {
		return *a.Order
	}
	return a.CommandID
}

// Registration is a resolved action together with its full menu path
// (location path plus group segment).
type Registration struct {
	Path   Path
	Action Action
}
