package web

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range Pages {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderer_Instance(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name          string
		page          string
		data          map[string]any
		expectedTitle string
		expectedText  string
	}{
		{
			name: "error page inside the layout",
			page: "error.html",
			data: map[string]any{
				"Status":  404,
				"Message": "That cafe does not exist.",
				"Flashes": []any{"Logged out successfully."},
			},
			expectedTitle: "WorkBrew · 404",
			expectedText:  "That cafe does not exist.",
		},
		{
			name:          "unknown page falls back to a generic error",
			page:          "missing.html",
			data:          map[string]any{},
			expectedTitle: "WorkBrew · 500",
			expectedText:  "Something went wrong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			instance := r.Instance(tt.page, tt.data)
			require.IsType(t, render.HTML{}, instance)
			require.NoError(t, instance.Render(w))

			doc, err := goquery.NewDocumentFromReader(w.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTitle, doc.Find("title").Text())
			assert.Equal(t, tt.expectedText, strings.TrimSpace(doc.Find(".error-page p").Text()))
			assert.Equal(t, "Admin", doc.Find("nav a").Last().Text())
		})
	}
}

func TestRenderer_EscapesContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("error.html", map[string]any{
		"Status":  400,
		"Message": `<script>alert("x")</script>`,
	}).Render(w))

	assert.NotContains(t, w.Body.String(), `<script>alert`)
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}
