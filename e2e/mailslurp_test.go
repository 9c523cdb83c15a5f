//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailSlurp serves the MailSlurp endpoints the CLI calls from a
// single in-memory inbox holding one email.
type fakeMailSlurp struct {
	mu      sync.Mutex
	deleted []string
	sent    []map[string]interface{}
	names   []string
}

const (
	fakeKey     = "test-key"
	fakeInboxID = "5f1d0c2e-inbox"
	fakeEmailID = "9a8b7c6d-email"
)

func (f *fakeMailSlurp) start(t *testing.T) string {
	t.Helper()

	inbox := map[string]interface{}{
		"id":           fakeInboxID,
		"name":         "e2e",
		"emailAddress": fakeInboxID + "@mailslurp.net",
		"createdAt":    "2024-05-01T10:00:00Z",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /inboxes/paginated", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"content":       []interface{}{inbox},
			"totalElements": 1,
		})
	})
	mux.HandleFunc("POST /inboxes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.names = append(f.names, r.URL.Query().Get("name"))
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, inbox)
	})
	mux.HandleFunc("GET /inboxes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != fakeInboxID {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Inbox not found"})
			return
		}
		writeJSON(w, http.StatusOK, inbox)
	})
	mux.HandleFunc("DELETE /inboxes/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /inboxes/{id}/emails", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []interface{}{map[string]interface{}{
			"id":          fakeEmailID,
			"subject":     "Welcome",
			"from":        "hello@example.com",
			"to":          []string{fakeInboxID + "@mailslurp.net"},
			"createdAt":   "2024-05-01T11:00:00Z",
			"attachments": []string{"att-1"},
		}})
	})
	mux.HandleFunc("GET /emails/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":          fakeEmailID,
			"userId":      "user-1",
			"inboxId":     fakeInboxID,
			"subject":     "Welcome",
			"from":        "hello@example.com",
			"body":        "Thanks for signing up",
			"bodyMD5Hash": "d41d8cd9",
			"headers":     map[string]string{"X-Mailer": "e2e"},
			"attachments": []string{"att-1"},
		})
	})
	mux.HandleFunc("GET /emails/{id}/attachments/{att}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("attachment bytes"))
	})
	mux.HandleFunc("POST /inboxes/{id}/confirm", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.sent = append(f.sent, body)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":      "sent-1",
			"inboxId": r.PathValue("id"),
			"to":      body["to"],
		})
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != fakeKey {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid API key"})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestFake_Create(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}

	res := runMail(t, env, "", "mail.create", "--new-mail", "e2e", "--api", fakeKey)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Inbox:\nID -> "+fakeInboxID+"\nNAME -> e2e\nDESCRIPTION -> \nEMAIL -> "+fakeInboxID+"@mailslurp.net\n", res.stdout)
	assert.Equal(t, []string{"e2e"}, f.names)
}

func TestFake_Delete(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}

	res := runMail(t, env, "", "mail.delete", "--id", "abc123", "--api", fakeKey)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Status: 204 No Content\n", res.stdout)
	assert.Equal(t, []string{"abc123"}, f.deleted)
}

func TestFake_APIKeyFromEnv(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t), "MAIL_API_KEY=" + fakeKey}

	out := runMailJSON[map[string]string](t, env, "", "mail.delete", "--id", "abc123")
	assert.Equal(t, "204 No Content", out["status"])
}

func TestFake_Unauthorized(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}

	res := runMail(t, env, "", "mail.delete", "--id", "abc123", "--api", "wrong")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Invalid API key")
}

func TestFake_Read(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}
	saveDir := filepath.Join(t.TempDir(), "attachments")

	stdin := fakeInboxID + "@mailslurp.net\n" + fakeEmailID + "\n"
	res := runMail(t, env, stdin, "mail.read", "--api", fakeKey, "--save-attachments", saveDir)
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "Email: "+fakeInboxID+"@mailslurp.net\n")
	assert.Contains(t, res.stdout, "Received Emails:\n\n1 -\nID: "+fakeEmailID+"\nSUBJECT: Welcome\n")
	assert.Contains(t, res.stdout, "ATTCH: att-1\n")
	assert.Contains(t, res.stdout, "MAIL:\nUserID: user-1\nAttachments: att-1\nSubject: Welcome\nMessage:\nThanks for signing up\n\nMessageMD5Hash: d41d8cd9\n")

	data, err := os.ReadFile(filepath.Join(saveDir, "att-1"))
	require.NoError(t, err)
	assert.Equal(t, "attachment bytes", string(data))
}

func TestFake_ReadJSON(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}

	out := runMailJSON[map[string]interface{}](t, env, fakeEmailID+"\n", "mail.read", "--api", fakeKey, "--id", fakeInboxID)
	assert.Equal(t, fakeEmailID, out["id"])
	assert.Equal(t, "Thanks for signing up", out["body"])
}

func TestFake_ManagedSend(t *testing.T) {
	f := &fakeMailSlurp{}
	env := []string{"MAIL_BASE_URL=" + f.start(t)}

	res := runMail(t, env, fakeInboxID+"@mailslurp.net\n",
		"mail.send", "--use-slurp", "--api", fakeKey, "-t", "x@example.com,y@example.com", "-m", "hello", "-s", "Hi")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Available email accounts:")
	assert.Contains(t, res.stdout, `"id": "sent-1"`)

	require.Len(t, f.sent, 1)
	assert.Equal(t, []interface{}{"x@example.com", "y@example.com"}, f.sent[0]["to"])
	assert.Equal(t, "Hi", f.sent[0]["subject"])
	assert.Equal(t, "hello", f.sent[0]["body"])
}
