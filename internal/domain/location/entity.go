package location

import "time"

type Location struct {
	ID         string
	BusinessID string
	Name       string
	Timezone   string // IANA name, e.g. "America/Chicago"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
