package domain

// ResolveNext picks the next issue to work on.
// Records are scanned in order; the first one that is open on the tracker or
// not yet filed wins. Closed issues and issues missing from the remote
// snapshot are skipped. Returns nil when nothing is actionable.
func ResolveNext(records []*IssueRecord, remote RemoteIssueMap) *IssueRecord {
	for _, record := range records {
		if Classify(record, remote).Actionable() {
			return record
		}
	}
	return nil
}
