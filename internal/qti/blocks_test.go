package qti

import (
	"testing"

	"github.com/ayush-verma790/question-gen-sub001/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderBlocks_Text(t *testing.T) {
	blocks := []models.ContentBlock{
		{
			ID:      "b1",
			Type:    models.BlockText,
			Content: "<p>Hello <strong>world</strong></p>",
			Styles:  map[string]string{"color": "red"},
		},
	}

	out := RenderBlocks(blocks)
	assert.Equal(t, `<div style="color: red"><p>Hello <strong>world</strong></p></div>`, out)
}

func TestRenderBlocks_ImageDefaults(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: "b1", Type: models.BlockImage, Content: "https://cdn.example.com/pic.png"},
	}

	out := RenderBlocks(blocks)
	assert.Equal(t, `<img src="https://cdn.example.com/pic.png" alt="Image" width="400" height="300"/>`, out)
}

func TestRenderBlocks_ImageExplicitAttributes(t *testing.T) {
	blocks := []models.ContentBlock{
		{
			ID:      "b1",
			Type:    models.BlockImage,
			Content: "pic.png",
			Attributes: map[string]string{
				"alt":    "A diagram",
				"width":  "120",
				"height": "80",
			},
		},
	}

	out := RenderBlocks(blocks)
	assert.Equal(t, `<img src="pic.png" alt="A diagram" width="120" height="80"/>`, out)
}

func TestRenderBlocks_VideoBooleanAttributes(t *testing.T) {
	blocks := []models.ContentBlock{
		{
			ID:      "b1",
			Type:    models.BlockVideo,
			Content: "clip.mp4",
			Attributes: map[string]string{
				"controls": "false",
				"autoplay": "true",
			},
		},
	}

	out := RenderBlocks(blocks)
	assert.Equal(t, `<video src="clip.mp4" autoplay></video>`, out)
	assert.NotContains(t, out, "controls")
	assert.NotContains(t, out, "false")
}

func TestRenderBlocks_AudioAllFlags(t *testing.T) {
	blocks := []models.ContentBlock{
		{
			ID:      "b1",
			Type:    models.BlockAudio,
			Content: "sound.mp3",
			Attributes: map[string]string{
				"controls": "true",
				"autoplay": "true",
				"loop":     "true",
			},
		},
	}

	assert.Equal(t, `<audio src="sound.mp3" controls autoplay loop></audio>`, RenderBlocks(blocks))
}

func TestRenderBlocks_EscapesAttributeValues(t *testing.T) {
	blocks := []models.ContentBlock{
		{
			ID:         "b1",
			Type:       models.BlockImage,
			Content:    `pic.png?a=1&b="2"`,
			Attributes: map[string]string{"alt": `say "hi" & <bye>`},
		},
	}

	out := RenderBlocks(blocks)
	assert.Contains(t, out, `src="pic.png?a=1&amp;b=&quot;2&quot;"`)
	assert.Contains(t, out, `alt="say &quot;hi&quot; &amp; &lt;bye&gt;"`)
}

func TestRenderBlocks_MultipleBlocksNewlineJoined(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: "a", Type: models.BlockText, Content: "one"},
		{ID: "b", Type: models.BlockHTML, Content: "<em>two</em>"},
	}

	assert.Equal(t, "<div>one</div>\n<div><em>two</em></div>", RenderBlocks(blocks))
}
