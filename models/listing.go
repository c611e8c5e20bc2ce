package models

// Record is one extracted vehicle-listing row. Fields hold the resolved
// string values exactly as written to the output. A field no channel could
// resolve carries the sentinel "-"; Link is always the source URL.
type Record struct {
	Name        string
	Phone       string
	Price       string
	Location    string
	CarType     string
	Description string
	Link        string

	// ResolvedFields counts how many of the six data fields came from a
	// real channel rather than the sentinel. Report-only; not exported
	// to CSV or the database.
	ResolvedFields int
}

// ChannelData is the partial field set a single extraction channel produced
// for one listing. An empty string means "not found": absence is expected
// and never an error. Title is the ad title a channel surfaced; it is only
// used as the last-resort fallback for CarType.
type ChannelData struct {
	Name        string
	Phone       string
	Price       string
	Location    string
	CarType     string
	Description string
	Title       string
}

// PageSnapshot is the frozen view of one loaded listing page that every
// extraction channel consumes. HTML is the rendered document markup,
// BodyText the visible body innerText at snapshot time.
type PageSnapshot struct {
	URL      string
	HTML     string
	BodyText string
}
