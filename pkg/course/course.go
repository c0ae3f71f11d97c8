package course

import "time"

// Course is the published, catalog-visible form of a document.
//
// Once a course is appended to the catalog, only Views changes; id, content,
// author and createdAt are frozen at publish time. The JSON tags are the wire
// contract of the shared catalog file and must match any external reader.
type Course struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Content       []ContentElement `json:"content"`
	CreatedAt     time.Time        `json:"createdAt"`
	Author        string           `json:"author"`
	EstimatedTime int              `json:"estimatedTime"`
	Views         int              `json:"views"`
}

// AuthorProfile is the process-wide author identity. It is configured once,
// reused as the author of every subsequent publish, and overwritten (never
// cleared) on reconfiguration.
type AuthorProfile struct {
	Name string `json:"name"`
}
