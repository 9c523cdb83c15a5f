// Package browser opens email previews in the system browser.
package browser

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Allowed URL schemes for security
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"file":   true,
}

// previewFilePrefix marks temp files written by ViewHTML.
const previewFilePrefix = "mail-preview-"

// previewMaxAge is how long old previews are kept before ViewHTML
// removes them.
const previewMaxAge = time.Hour

// startCommand launches the platform opener. Tests replace it.
var startCommand = func(cmd *exec.Cmd) error {
	return cmd.Start()
}

// OpenURL opens a URL in the default browser.
// Only http, https, mailto, and file schemes are allowed.
func OpenURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !allowedSchemes[scheme] {
		return fmt.Errorf("URL scheme %q not allowed", scheme)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return startCommand(cmd)
}

// BuildEmailHTML wraps an email body in a page with a header showing
// the subject, sender and date. Header fields are escaped; the body is
// inserted as-is.
func BuildEmailHTML(subject, from string, date time.Time, body string) string {
	title := html.EscapeString(subject)
	if title == "" {
		title = "(no subject)"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString(`<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 0; }
.header { background: #1cc2e3; color: #fff; padding: 16px 24px; }
.header h1 { margin: 0 0 8px; font-size: 20px; }
.content { padding: 24px; }
</style>
</head>
<body>
<div class="header">
`)
	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)
	fmt.Fprintf(&b, "<div><strong>From:</strong> %s</div>\n", html.EscapeString(from))
	if !date.IsZero() {
		fmt.Fprintf(&b, "<div><strong>Date:</strong> %s</div>\n", date.Format("January 2, 2006 at 3:04 PM"))
	}
	b.WriteString("</div>\n<div class=\"content\">\n")
	b.WriteString(body)
	b.WriteString("\n</div>\n</body>\n</html>\n")
	return b.String()
}

// ViewEmail renders an email with BuildEmailHTML and opens it.
func ViewEmail(subject, from string, date time.Time, body string) error {
	return ViewHTML(BuildEmailHTML(subject, from, date, body))
}

// ViewHTML writes HTML to a temp file readable only by the owner and
// opens it in the browser. Previews older than an hour are removed
// first.
func ViewHTML(page string) error {
	_ = CleanupPreviews(previewMaxAge)

	path, err := writePreview(page)
	if err != nil {
		return err
	}
	return OpenURL("file://" + filepath.ToSlash(path))
}

func writePreview(page string) (string, error) {
	tmpFile, err := os.CreateTemp("", previewFilePrefix+"*.html")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmpFile.Close()

	if err := tmpFile.Chmod(0600); err != nil {
		return "", fmt.Errorf("failed to set file permissions: %w", err)
	}
	if _, err := tmpFile.WriteString(page); err != nil {
		return "", fmt.Errorf("failed to write HTML: %w", err)
	}
	return tmpFile.Name(), nil
}

// CleanupPreviews removes preview files older than olderThan.
func CleanupPreviews(olderThan time.Duration) error {
	tmpDir := os.TempDir()
	cutoff := time.Now().Add(-olderThan)

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return fmt.Errorf("failed to read temp directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), previewFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(tmpDir, entry.Name()))
		}
	}

	return nil
}
