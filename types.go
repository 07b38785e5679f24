package inkpost

// DateLayout is the human-readable format used for a post's creation date,
// e.g. "June 03, 2024". The date is assigned once when the post is created
// and never changes on edit.
const DateLayout = "January 02, 2006"

// BlogPost is the sole content type, stored in SQLite and rendered by templates.
// ID is assigned by the store on insert and is never reused after deletion.
type BlogPost struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string // DateLayout, set at creation
	Body     string // opaque rich-text markup from the editor widget
	Author   string
	ImgURL   string
}
