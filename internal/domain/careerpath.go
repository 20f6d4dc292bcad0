package domain

import "time"

// CareerPathRecord is a chosen career path together with the roadmap being
// tracked for it. Only one record per user is active; choosing a new path
// deactivates the previous one without carrying its progress over.
type CareerPathRecord struct {
	ID         string
	User       string
	Goal       string
	ChosenRole string
	Roadmap    *Roadmap
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
