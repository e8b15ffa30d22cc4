package words

// ChangeKind describes why a word set changed.
type ChangeKind int

const (
	// Updated means the set was reconciled against new file content.
	Updated ChangeKind = iota
	// Cleared means the file was deleted and the set emptied.
	Cleared
)

func (k ChangeKind) String() string {
	switch k {
	case Updated:
		return "updated"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// ChangeNotification is emitted once per processed file event.
type ChangeNotification struct {
	Kind ChangeKind
}
