package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"home.html", "login.html", "panel.html", "policy.html", "not_found.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestLoginTemplateEscapesError(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "login.html", map[string]interface{}{
		"Title": "Acceso",
		"Error": "<script>x</script>",
	}))
	assert.NotContains(t, buf.String(), "<script>x</script>")
	assert.Contains(t, buf.String(), `action="/api/auth/login"`)
}
