package models

// Note is a remembered user note. IDs are sequential and 1-based within a
// session; notes live only as long as the process.
type Note struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
