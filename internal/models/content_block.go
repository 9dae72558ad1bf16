package models

type BlockType string

const (
	BlockText  BlockType = "text"
	BlockImage BlockType = "image"
	BlockVideo BlockType = "video"
	BlockAudio BlockType = "audio"
	BlockHTML  BlockType = "html"
)

// ContentBlock is the atomic unit of rich content composed into prompts,
// options and feedback. Content is a media URL for image/video/audio blocks
// and raw markup for text/html blocks. Styles and Attributes are sparse:
// an absent key means "not set", not "default".
type ContentBlock struct {
	ID         string            `json:"id"`
	Type       BlockType         `json:"type" validate:"required,oneof=text image video audio html"`
	Content    string            `json:"content"`
	Styles     map[string]string `json:"styles,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
