package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/api"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store/sqlite"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "daybook.db"))
	require.NoError(t, err)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	srv := httptest.NewServer(api.NewRouter(st, tokens))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientAuthFlow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	sess, err := c.Register(ctx, "ada", "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, sess.Token, c.Token())

	// registering the same email again surfaces the server message
	_, err = c.Register(ctx, "ada", "ada@example.com", "hunter22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already exists")

	c.SetToken("")
	sess, err = c.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	u, err := c.UpdateUsername(ctx, "countess")
	require.NoError(t, err)
	assert.Equal(t, "countess", u.Username)
}

func TestClientDayAndJournal(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	_, err := c.Register(ctx, "ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	entry, err := c.SaveDay(ctx, "2024-01-15", DayPatch{
		Todos: []model.Todo{{ID: "t1", Text: "write", Schedule: model.ScheduleAt(9)}},
	})
	require.NoError(t, err)
	require.Len(t, entry.Todos, 1)

	got, err := c.GetDay(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "write", got.Todos[0].Text)

	j, err := c.SaveJournal(ctx, &model.Journal{Date: "2024-01-15", Title: "Journal 1", Content: "<p>hi</p>"})
	require.NoError(t, err)
	require.NotEmpty(t, j.JournalID)

	list, err := c.ListJournals(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, c.DeleteJournal(ctx, j.JournalID))

	list, err = c.ListJournals(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Empty(t, list)

	status, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)
}
