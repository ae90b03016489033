package editor_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlay/pdf-form-server/internal/editor"
	"github.com/formlay/pdf-form-server/internal/pdf"
	"github.com/formlay/pdf-form-server/internal/store"
)

// The session's collaborator interfaces must stay satisfied by the real
// store and render service.
var (
	_ editor.ConfigStore = (*store.FormStore)(nil)
	_ editor.Renderer    = (*pdf.Service)(nil)
)

func TestSessionAgainstRealStoreAndRenderer(t *testing.T) {
	dataDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	formStore, err := store.NewFormStore(dataDir, logger)
	require.NoError(t, err)
	require.NoError(t, formStore.Seed())

	renderer := pdf.NewService(formStore, dataDir, logger)

	session := editor.NewSession("user_profile", formStore, renderer, logger)
	require.NoError(t, session.Load())
	require.Equal(t, editor.StateReady, session.State())

	name := session.AddField(50, 60, 1)
	require.NoError(t, session.RenameField(name, "full_name"))
	require.NoError(t, session.UpdateFieldNumber("full_name", editor.AttrSize, 14))
	require.NoError(t, session.UpdateFieldFont("full_name", "Helvetica"))

	// Preview renders with placeholder values before anything is saved.
	preview, err := session.Preview()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(preview, []byte("%PDF-")))
	assert.True(t, pdf.IsReadable(preview))

	stored, err := formStore.Get("user_profile")
	require.NoError(t, err)
	assert.Empty(t, stored.FieldsConfig, "preview must not persist the working copy")

	require.NoError(t, session.Save())

	stored, err = formStore.Get("user_profile")
	require.NoError(t, err)
	require.Len(t, stored.FieldsConfig, 1)
	field := stored.FieldsConfig["full_name"]
	assert.Equal(t, 50.0, field.X)
	assert.Equal(t, 60.0, field.Y)
	assert.Equal(t, "Helvetica", field.Font)
	assert.Equal(t, 14.0, field.Size)

	// A fresh session sees what was saved.
	reloaded := editor.NewSession("user_profile", formStore, renderer, logger)
	require.NoError(t, reloaded.Load())
	assert.Len(t, reloaded.Fields(), 1)
}
