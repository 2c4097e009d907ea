package note

import "strings"

// Filter returns the notes shown for a view and search query.
// Pinned notes are only split out in ViewNotes, every other view
// returns the whole selection as unpinned.
func Filter(notes []Note, view View, query string) (pinned, unpinned []Note) {
	pinned, unpinned = []Note{}, []Note{}
	query = strings.ToLower(query)

	for _, n := range notes {
		if !inView(n, view) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Content), query) {
			continue
		}
		if view == ViewNotes && n.IsPinned {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}
	return pinned, unpinned
}

func inView(n Note, view View) bool {
	switch view {
	case ViewArchive:
		return n.IsArchived && !n.IsDeleted
	case ViewTrash:
		return n.IsDeleted
	default:
		// labels are not implemented yet and show the same as notes
		return !n.IsArchived && !n.IsDeleted
	}
}
