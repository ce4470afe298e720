package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := newServer(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.LoadHTMLGlob("templates/*")
	s.routes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	r := newTestRouter(t, config.Default())

	w := get(t, r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, id := range []string{"stage-1", "stage-2", "stage-3", "stage-4"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `data-label="RENDERING 3D MATRIX..."`)
	assert.Contains(t, body, `href="#experience"`)
	assert.Contains(t, body, `id="project-mail"`)
	assert.Contains(t, body, `data-target="300"`)
}

func TestParticlesJSON(t *testing.T) {
	r := newTestRouter(t, config.Default())

	w := get(t, r, "/particles.json")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	number := body["particles"].(map[string]any)["number"].(map[string]any)
	assert.Equal(t, 120.0, number["value"])
}

func TestFragments(t *testing.T) {
	r := newTestRouter(t, config.Default())

	w := get(t, r, "/contact-form")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="email"`)
	assert.NotContains(t, w.Body.String(), "notification")

	w = get(t, r, "/work-content")
	assert.Contains(t, w.Body.String(), "Presentation Expert")
	assert.Contains(t, w.Body.String(), "Jasons Catered Events")

	w = get(t, r, "/education-content")
	assert.Contains(t, w.Body.String(), "Western Governors University")
}

func postContact(t *testing.T, r http.Handler, form url.Values) string {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestSubmitContact(t *testing.T) {
	r := newTestRouter(t, config.Default())

	body := postContact(t, r, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Nice site"},
	})
	assert.Contains(t, body, "notification-success")
	assert.Contains(t, body, "Message sent successfully!")
	assert.Contains(t, body, `data-dismiss-ms="4000"`)
	assert.NotContains(t, body, `value="Ada"`, "the form is cleared")

	body = postContact(t, r, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example"},
		"subject": {"Hello"},
		"message": {"Nice site"},
	})
	assert.Contains(t, body, "notification-error")
	assert.Contains(t, body, "Please enter a valid email address")
	assert.Contains(t, body, `value="Ada"`, "the form is kept for correction")

	body = postContact(t, r, url.Values{"name": {"Ada"}})
	assert.Contains(t, body, "Please fill in all fields")
}

type sseEvent struct {
	name string
	data string
}

func parseSSE(body string) []sseEvent {
	var events []sseEvent
	for _, block := range strings.Split(body, "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			if v, ok := strings.CutPrefix(line, "event:"); ok {
				ev.name = v
			}
			if v, ok := strings.CutPrefix(line, "data:"); ok {
				ev.data = v
			}
		}
		if ev.name != "" {
			events = append(events, ev)
		}
	}
	return events
}

func TestLoaderStream(t *testing.T) {
	cfg := config.Default()
	cfg.FrameMS = 5
	cfg.Loader = config.LoaderConfig{
		SettleDelayMS: 200,
		Stages: []config.StageConfig{
			{ID: "boot", Label: "BOOTING", DurationMS: 30},
			{ID: "scan", Label: "SCANNING", DurationMS: 30},
		},
	}
	srv := httptest.NewServer(newTestRouter(t, cfg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/loader/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := parseSSE(string(raw))
	require.NotEmpty(t, events)

	var names, stages, percents []string
	for _, ev := range events {
		names = append(names, ev.name)
		switch ev.name {
		case "stage":
			var st struct {
				Index int    `json:"index"`
				ID    string `json:"id"`
				Label string `json:"label"`
			}
			require.NoError(t, json.Unmarshal([]byte(ev.data), &st))
			stages = append(stages, st.ID+":"+st.Label)
		case "percent":
			percents = append(percents, ev.data)
		}
	}

	assert.Equal(t, []string{"boot:BOOTING", "scan:SCANNING"}, stages)
	assert.Equal(t, []string{"percent", "stage"}, names[:2], "stage 0 starts the meter before announcing itself")
	assert.Equal(t, []string{"hidden", "complete"}, names[len(names)-2:])
	finished := slices.Index(names, "finished")
	require.NotEqual(t, -1, finished)
	assert.Less(t, finished, slices.Index(names, "hidden"))
	require.NotEmpty(t, percents)
	assert.Equal(t, "0%", percents[0])
	assert.Equal(t, "100%", percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		assert.NotEqual(t, percents[i-1], percents[i], "unchanged percents are not resent")
	}
}
