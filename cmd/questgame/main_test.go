package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/store"
)

func run(t *testing.T, home string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--home", home}, args...))
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestCLI_QuestLoop(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	home := t.TempDir()

	out := run(t, home, "init")
	assert.Contains(t, out, "criado state.json")
	assert.Contains(t, out, "QuestGame inicializado!")
	assert.DirExists(t, filepath.Join(home, "ui"))

	out = run(t, home, "init")
	assert.Contains(t, out, "ja existe state.json")

	out = run(t, home, "add", "lançar", "landing", "page")
	assert.Contains(t, out, "adicionado ao inbox: lançar landing page")

	out = run(t, home, "triage")
	assert.Contains(t, out, "[B-0001]")
	assert.Contains(t, out, "1 item(ns) movidos para o backlog")

	out = run(t, home, "plan")
	assert.Contains(t, out, "Quest do Dia")
	assert.Contains(t, out, "lançar landing page")

	out = run(t, home, "plan")
	assert.Contains(t, out, "Ja tem quest ativa: lançar landing page")

	out = run(t, home, "status")
	assert.Contains(t, out, "Quest do dia:")
	assert.Contains(t, out, "Mesa BUILD")

	out = run(t, home, "done")
	assert.Contains(t, out, "Quest concluida!")
	assert.Contains(t, out, "Streak: 1 dias")

	out = run(t, home, "done")
	assert.Contains(t, out, "Nenhuma quest ativa. Use: plan")
}

func TestCLI_Preconditions(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	home := t.TempDir()
	run(t, home, "init")

	assert.Contains(t, run(t, home, "triage"), `Inbox vazio. Use: add "texto"`)
	assert.Contains(t, run(t, home, "plan"), "Backlog vazio. Use: add + triage primeiro.")
	assert.Contains(t, run(t, home, "add", "   "), `Uso: add "texto da ideia"`)
	assert.Contains(t, run(t, home, "event", "podcast"), "Tipo invalido. Use: blog, revenue, store, tiktok")
}

func TestCLI_Event(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	home := t.TempDir()
	run(t, home, "init")

	out := run(t, home, "event", "blog", "post", "novo")
	assert.Contains(t, out, "Evento registrado: blog")
	assert.Contains(t, out, "Nota: post novo")
}

func TestCLI_Backup(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	home := t.TempDir()
	run(t, home, "init")
	run(t, home, "add", "escrever", "post")

	archive := filepath.Join(t.TempDir(), "snap.qgb")
	out := run(t, home, "backup", "--out", archive)
	assert.Contains(t, out, "Backup salvo em "+archive)

	f, err := os.Open(archive)
	require.NoError(t, err)
	defer f.Close()
	snap, err := store.ReadBackup(f)
	require.NoError(t, err)
	assert.Contains(t, snap.Documents, store.StateFile)
	assert.Contains(t, string(snap.Documents[store.InboxFile]), "escrever post")
}

func TestDefaultBackupPath(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, filepath.Join("/data", "backups", "questgame-2024-01-02_03-04-05.qgb"), defaultBackupPath("/data", now))
}
