package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgallion1/texfmt/internal/config"
)

func testServer(apiKey string) *Server {
	cfg := config.Config{
		Port:            "0",
		APIKey:          apiKey,
		IndentWidth:     4,
		MaxRequestBytes: 1 << 20,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, cfg)
}

func postJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleFormat(t *testing.T) {
	srv := testServer("")

	body := `{"text": "\\begin{document}\n\\section{Intro}\nText here.\n\\end{document}\n"}`
	rec := postJSON(t, srv, "/api/format", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Formatted string `json:"formatted"`
		Changed   bool   `json:"changed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := "\\begin{document}\n    \\section{Intro}\n        Text here.\n\\end{document}\n"
	if resp.Formatted != want {
		t.Errorf("expected %q, got %q", want, resp.Formatted)
	}
	if !resp.Changed {
		t.Error("expected changed=true")
	}
}

func TestHandleFormat_CustomIndent(t *testing.T) {
	srv := testServer("")

	rec := postJSON(t, srv, "/api/format", `{"text": "\\section{S}\nbody", "indent": "\t"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Formatted string `json:"formatted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Formatted != "\\section{S}\n\tbody" {
		t.Errorf("expected tab indent, got %q", resp.Formatted)
	}
}

func TestHandleFormat_EmptyIndentIsLiteral(t *testing.T) {
	srv := testServer("")

	// A present-but-empty indent is passed through to the engine, which
	// repeats it literally; only an absent field takes the default.
	rec := postJSON(t, srv, "/api/format", `{"text": "\\section{S}\n    body", "indent": ""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Formatted string `json:"formatted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Formatted != "\\section{S}\nbody" {
		t.Errorf("expected indentation stripped, got %q", resp.Formatted)
	}

	rec = postJSON(t, srv, "/api/format", `{"text": "\\section{S}\nbody"}`)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Formatted != "\\section{S}\n    body" {
		t.Errorf("expected configured default indent, got %q", resp.Formatted)
	}
}

func TestHandleFormat_Validation(t *testing.T) {
	srv := testServer("")

	for _, tc := range []struct {
		name string
		body string
		code int
	}{
		{name: "missing text", body: `{"indent": "  "}`, code: http.StatusBadRequest},
		{name: "invalid json", body: `{`, code: http.StatusBadRequest},
		{name: "empty text is valid", body: `{"text": ""}`, code: http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, srv, "/api/format", tc.body)
			if rec.Code != tc.code {
				t.Errorf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
			if tc.code != http.StatusOK {
				var resp map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("error response is not json: %v", err)
				}
				if resp["error"] == "" {
					t.Error("expected error field in response")
				}
			}
		})
	}
}

func TestHandleConvert(t *testing.T) {
	srv := testServer("")

	body := `{"text": "# Top\n\nIntro.\n\n## Inner\n\nBody.", "from": "markdown", "wrap": true}`
	rec := postJSON(t, srv, "/api/convert", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		LaTeX string `json:"latex"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := strings.Join([]string{
		`\begin{document}`,
		`    \chapter{Top}`,
		`        Intro.`,
		`        \section{Inner}`,
		`            Body.`,
		`\end{document}`,
		``,
	}, "\n")
	if resp.LaTeX != want {
		t.Errorf("expected %q, got %q", want, resp.LaTeX)
	}
}

func TestHandleConvert_Validation(t *testing.T) {
	srv := testServer("")

	rec := postJSON(t, srv, "/api/convert", `{"text": "# x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing from: expected 400, got %d", rec.Code)
	}

	rec = postJSON(t, srv, "/api/convert", `{"text": "x", "from": "rtf"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad from: expected 400, got %d", rec.Code)
	}

	// DOCX payloads must be base64.
	rec = postJSON(t, srv, "/api/convert", `{"text": "not base64!!", "from": "docx"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad base64: expected 400, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv := testServer("sekrit")

	rec := postJSON(t, srv, "/api/format", `{"text": "x"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(`{"text": "x"}`))
	req.Header.Set("Authorization", "Bearer wrong")
	out := httptest.NewRecorder()
	srv.ServeHTTP(out, req)
	if out.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", out.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(`{"text": "x"}`))
	req.Header.Set("Authorization", "Bearer sekrit")
	out = httptest.NewRecorder()
	srv.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("good token: expected 200, got %d", out.Code)
	}

	// Health stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	out = httptest.NewRecorder()
	srv.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", out.Code)
	}
}
