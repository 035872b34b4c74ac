package domain

// IssueStatus is the display status of a local issue relative to the tracker.
type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"        // Linked and open on the tracker
	StatusClosed     IssueStatus = "closed"      // Linked and closed on the tracker
	StatusNotFound   IssueStatus = "not_found"   // Linked, but missing from the tracker result
	StatusNotCreated IssueStatus = "not_created" // Not filed on the tracker yet
)

// AllStatuses returns all valid status values.
func AllStatuses() []IssueStatus {
	return []IssueStatus{
		StatusOpen,
		StatusClosed,
		StatusNotFound,
		StatusNotCreated,
	}
}

// Classify determines the status of a record against the remote snapshot.
func Classify(record *IssueRecord, remote RemoteIssueMap) IssueStatus {
	if record.RemoteID == nil {
		return StatusNotCreated
	}
	issue, ok := remote.Lookup(*record.RemoteID)
	if !ok {
		return StatusNotFound
	}
	if issue.State == RemoteOpen {
		return StatusOpen
	}
	return StatusClosed
}

// Actionable reports whether work can start on an issue with this status.
// StatusNotFound is not actionable: a missing remote entry is treated like a
// closed one.
func (s IssueStatus) Actionable() bool {
	return s == StatusOpen || s == StatusNotCreated
}

// Display returns the human-readable label for the status.
func (s IssueStatus) Display() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusClosed:
		return "Closed"
	case StatusNotFound:
		return "Not found on remote"
	case StatusNotCreated:
		return "Not created"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the status is a known value.
func (s IssueStatus) IsValid() bool {
	for _, valid := range AllStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}
