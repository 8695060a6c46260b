package document

// ContentTypeDOCX is the MIME type of the rendered container.
const ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// RenderedDocument is the write-once output of one generation.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Title       string
	BlockCount  int
	Data        []byte
}
