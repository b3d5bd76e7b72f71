package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNewsletter(t *testing.T) {
	e, err := New("Croevo AI")
	require.NoError(t, err)

	tests := []struct {
		name     string
		subject  string
		content  string
		contains []string
		excludes []string
	}{
		{
			name:     "layout",
			subject:  "March update",
			content:  "Hello",
			contains: []string{"<title>March update</title>", ">Croevo AI</h1>", "subscribed to Croevo AI updates", "white-space: pre-wrap"},
		},
		{
			name:     "newlines preserved",
			subject:  "s",
			content:  "line one\nline two",
			contains: []string{"line one\nline two"},
		},
		{
			name:     "markup escaped",
			subject:  "<b>bold</b>",
			content:  `<script>alert("x")</script>`,
			contains: []string{"&lt;b&gt;bold&lt;/b&gt;", "&lt;script&gt;"},
			excludes: []string{"<script>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := e.RenderNewsletter(tt.subject, tt.content)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestRenderNilEngine(t *testing.T) {
	var e *Engine
	_, err := e.RenderNewsletter("s", "c")
	assert.Error(t, err)
}
