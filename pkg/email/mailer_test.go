package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawashy/next-auth/pkg/email"
)

func validMessage() email.Message {
	return email.Message{To: "user@example.com", Subject: "Sign in", HTML: "<p>hi</p>", Tag: "signin"}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Message)
		wantErr bool
	}{
		{name: "valid", mutate: func(*email.Message) {}},
		{name: "missing recipient", mutate: func(m *email.Message) { m.To = "" }, wantErr: true},
		{name: "bad recipient", mutate: func(m *email.Message) { m.To = "not-an-address" }, wantErr: true},
		{name: "missing subject", mutate: func(m *email.Message) { m.Subject = "" }, wantErr: true},
		{name: "missing body", mutate: func(m *email.Message) { m.HTML = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidMessage)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDevMailer(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	require.NoError(t, email.NewDevMailer(dir).Send(context.Background(), validMessage()))

	htmlFiles, err := filepath.Glob(filepath.Join(dir, "*_signin.html"))
	require.NoError(t, err)
	require.Len(t, htmlFiles, 1)
	body, err := os.ReadFile(htmlFiles[0])
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))

	jsonFiles, err := filepath.Glob(filepath.Join(dir, "*_signin.json"))
	require.NoError(t, err)
	require.Len(t, jsonFiles, 1)
	raw, err := os.ReadFile(jsonFiles[0])
	require.NoError(t, err)

	var env map[string]string
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "user@example.com", env["to"])
	assert.Equal(t, "Sign in", env["subject"])
}

func TestDevMailer_InvalidMessage(t *testing.T) {
	t.Parallel()

	err := email.NewDevMailer(t.TempDir()).Send(context.Background(), email.Message{})
	assert.ErrorIs(t, err, email.ErrInvalidMessage)
}

func TestNewPostmarkMailer_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  email.Config
	}{
		{name: "missing server token", cfg: email.Config{SenderEmail: "a@b.c"}},
		{name: "bad sender", cfg: email.Config{PostmarkServerToken: "t", SenderEmail: "nope"}},
		{name: "bad support", cfg: email.Config{PostmarkServerToken: "t", SenderEmail: "a@b.c", SupportEmail: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := email.NewPostmarkMailer(tt.cfg)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}

func TestPostmarkMailer_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	var token string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Postmark-Server-Token")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"user@example.com","MessageID":"m-1","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	m, err := email.NewPostmarkMailer(email.Config{
		PostmarkServerToken: "server-token",
		SenderEmail:         "no-reply@example.com",
		SupportEmail:        "help@example.com",
	}, email.WithPostmarkBaseURL(srv.URL))
	require.NoError(t, err)

	require.NoError(t, m.Send(context.Background(), validMessage()))
	assert.Equal(t, "server-token", token)
	assert.Equal(t, "no-reply@example.com", got["From"])
	assert.Equal(t, "help@example.com", got["ReplyTo"])
	assert.Equal(t, "user@example.com", got["To"])
}

func TestPostmarkMailer_SendAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	m, err := email.NewPostmarkMailer(email.Config{PostmarkServerToken: "t", SenderEmail: "a@example.com"},
		email.WithPostmarkBaseURL(srv.URL))
	require.NoError(t, err)

	err = m.Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}
