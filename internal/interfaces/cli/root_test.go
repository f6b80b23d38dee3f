package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
)

func runCLI(t *testing.T, storePath string, args ...string) error {
	t.Helper()
	root := NewRootCommand()
	root.SetArgs(append([]string{"--store", storePath, "--log-level", "error"}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func loadStore(t *testing.T, storePath string) []*domain.Reminder {
	t.Helper()
	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	var entities []*domain.Reminder
	require.NoError(t, json.Unmarshal(data, &entities))
	return entities
}

func TestAddAndStatusRoundTripThroughStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "erinnerungen.json")

	err := runCLI(t, storePath, "erinnerungen", "neu", "Widerspruch einlegen", "2099-04-13",
		"--typ", "widerspruchsfrist", "--prioritaet", "hoch", "--aktenzeichen", "S 12 AS 345/99")
	require.NoError(t, err)

	entities := loadStore(t, storePath)
	require.Len(t, entities, 1)
	e := entities[0]
	assert.Equal(t, "Widerspruch einlegen", e.Title)
	assert.Equal(t, domain.CategoryObjectionPeriod, e.Category)
	assert.Equal(t, domain.StatusActive, e.Status)
	assert.Equal(t, 7, e.LeadDays)
	assert.Equal(t, "2099-04-06", e.TriggerDate.String())
	assert.Equal(t, "S 12 AS 345/99", e.CaseReference)

	require.NoError(t, runCLI(t, storePath, "erinnerungen", "status", string(e.ID), "erledigt"))
	entities = loadStore(t, storePath)
	require.Len(t, entities, 1)
	assert.Equal(t, domain.StatusDone, entities[0].Status)
	assert.NotNil(t, entities[0].CompletedAt)
}

func TestAddRejectsInvalidDate(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "erinnerungen.json")
	err := runCLI(t, storePath, "erinnerungen", "neu", "kaputt", "13.04.2025")
	require.Error(t, err)
	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr), "no store file is created for a rejected draft")
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "erinnerungen.json")
	require.NoError(t, runCLI(t, storePath, "erinnerungen", "loeschen", "nicht-vorhanden"))
}
