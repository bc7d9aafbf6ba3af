package jobfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJobText_JobBoardSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>We need Go and PostgreSQL experience.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Go and PostgreSQL")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>var x = 1;</script></body></html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)

	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractJobText_BlankLinesCollapsed(t *testing.T) {
	html := "<html><body><main>line one\n\n\n   line two   \n</main></body></html>"

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestJobText_StaticPage(t *testing.T) {
	body := `<html><body><main><h1>Backend Engineer</h1><p>` +
		strings.Repeat("Go PostgreSQL Docker Kubernetes experience required. ", 20) +
		`</p></main></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	text, err := JobText(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
}

func TestJobText_ShortPageWithoutBrowser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>tiny</main></body></html>`))
	}))
	defer srv.Close()

	text, err := JobText(context.Background(), srv.URL, &Options{NoBrowser: true})
	require.NoError(t, err)
	assert.Equal(t, "tiny", text)
}

func TestJobText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobText(context.Background(), srv.URL, &Options{NoBrowser: true})
	require.Error(t, err)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "404")
}

func TestJobText_InvalidURL(t *testing.T) {
	_, err := JobText(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var ferr *Error
	assert.ErrorAs(t, err, &ferr)
}
