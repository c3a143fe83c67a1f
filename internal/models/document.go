package models

// MediaType is the declared format of an uploaded document.
type MediaType string

const (
	MediaTypePDF  MediaType = "pdf"
	MediaTypeDOCX MediaType = "docx"
	MediaTypeDOC  MediaType = "doc"
	MediaTypeTXT  MediaType = "txt"
)

// DocumentRole indicates which side of the match a document belongs to.
type DocumentRole string

const (
	RoleJD DocumentRole = "jd"
	RoleCV DocumentRole = "cv"
)

// Document carries one uploaded file through a single match request.
// Instances live only for the duration of the request; nothing is
// persisted after the response is produced.
type Document struct {
	Filename  string
	MediaType MediaType
	Role      DocumentRole
	Raw       []byte
	Text      string
}
