package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/status"
)

func newWorld() *engine.World {
	clock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return engine.NewWorld(clock, nil)
}

func populated(t *testing.T) *engine.World {
	t.Helper()
	w := newWorld()
	s, ok := w.CreateSign()
	require.True(t, ok)
	w.CommitSignText(s, "hello")
	_, _, err := w.Graph().CreatePair("c", "cc", false, w.Now())
	require.NoError(t, err)
	_, _, err = w.Graph().CreatePair("y", "b", true, w.Now())
	require.NoError(t, err)
	w.Teleport("m")
	w.ShowCoordinates = true
	w.Seed = "seed-1"
	return w
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	src := populated(t)
	data, err := EncodeDocument(Snapshot(src))
	require.NoError(t, err)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)

	dst := newWorld()
	assert.Equal(t, 0, Restore(dst, doc))

	assert.Equal(t, "m", dst.Player().Address)
	assert.True(t, dst.ShowCoordinates)
	assert.False(t, dst.ShowAdvancedInfo)
	assert.Equal(t, "seed-1", dst.Seed)
	assert.Equal(t, 4, dst.Registry().Count())

	sign, ok := dst.SignAt("a")
	require.True(t, ok)
	assert.Equal(t, "hello", sign.Sign.Text)

	in, ok := dst.Graph().VortexAt("c")
	require.True(t, ok)
	assert.True(t, in.Vortex.IsEntry)
	assert.Equal(t, "cc", in.Vortex.PairedAddress)

	oneWay, ok := dst.Graph().VortexAt("y")
	require.True(t, ok)
	assert.Empty(t, oneWay.Vortex.PairedAddress)
}

func TestRestoreKeepsLaterDuplicate(t *testing.T) {
	data := []byte(`{
	  "version": 1,
	  "player_address": "a",
	  "signs": [
	    {"x": 2, "y": 0, "address": "c", "text": "newer", "created_at": "2024-01-02T00:00:00Z"},
	    {"x": 2, "y": 0, "address": "c", "text": "older", "created_at": "2024-01-01T00:00:00Z"}
	  ]
	}`)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)

	w := newWorld()
	assert.Equal(t, 1, Restore(w, doc))

	sign, ok := w.SignAt("c")
	require.True(t, ok)
	assert.Equal(t, "newer", sign.Sign.Text)
	assert.Equal(t, 1, w.Registry().Count())
}

func TestRestoreDropsExitOfDisplacedEntry(t *testing.T) {
	data := []byte(`{
	  "version": 1,
	  "player_address": "a",
	  "signs": [
	    {"x": 1, "y": 0, "address": "b", "text": "winner", "created_at": "2024-01-02T00:00:00Z"}
	  ],
	  "vortexes": [
	    {"address": "b", "target_address": "f", "is_entry": true, "paired_vortex_address": "f", "created_at": "2024-01-01T00:00:00Z"},
	    {"address": "f", "target_address": "b", "is_entry": false, "paired_vortex_address": "b", "created_at": "2024-01-01T00:00:00Z"}
	  ]
	}`)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)

	w := newWorld()
	assert.Equal(t, 2, Restore(w, doc))
	assert.Empty(t, w.Registry().Vortexes())

	sign, ok := w.SignAt("b")
	require.True(t, ok)
	assert.Equal(t, "winner", sign.Sign.Text)

	require.True(t, w.MoveDown())
	assert.Equal(t, "f", w.Player().Address, "no leftover exit may send the player back to b")
}

func TestRestoreDoesNotChain(t *testing.T) {
	data := []byte(`{
	  "version": 1,
	  "player_address": "b",
	  "vortexes": [
	    {"address": "b", "target_address": "c", "is_entry": true, "created_at": "2024-01-01T00:00:00Z"}
	  ]
	}`)
	doc, err := DecodeDocument(data)
	require.NoError(t, err)

	w := newWorld()
	Restore(w, doc)
	assert.Equal(t, "b", w.Player().Address)
}

func TestRestoreTruncatesLongText(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'q'
	}
	data := []byte(`{"version":1,"player_address":"a","signs":[{"x":0,"y":0,"address":"a","text":"` +
		string(long) + `","created_at":"2024-01-01T00:00:00Z"}]}`)

	doc, err := DecodeDocument(data)
	require.NoError(t, err)

	w := newWorld()
	Restore(w, doc)
	sign, ok := w.SignAt("a")
	require.True(t, ok)
	assert.Len(t, sign.Sign.Text, entity.MaxSignText)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"version": 1,`},
		{"missing player", `{"version": 1}`},
		{"bad player address", `{"version": 1, "player_address": "zz"}`},
		{"empty player address", `{"version": 1, "player_address": ""}`},
		{"bad sign address", `{"version": 1, "player_address": "a", "signs": [{"x":0,"y":0,"address":"A","text":"","created_at":"2024-01-01T00:00:00Z"}]}`},
		{"coordinate out of range", `{"version": 1, "player_address": "a", "signs": [{"x":7,"y":0,"address":"a","text":"","created_at":"2024-01-01T00:00:00Z"}]}`},
		{"vortex missing is_entry", `{"version": 1, "player_address": "a", "vortexes": [{"address":"b","target_address":"c","created_at":"2024-01-01T00:00:00Z"}]}`},
		{"wrong type", `{"version": "one", "player_address": "a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeToleratesUnknownFields(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"version": 1, "player_address": "a", "extra": true}`))
	assert.NoError(t, err)
}

func TestSnapshotIncludesCarriedSign(t *testing.T) {
	w := newWorld()
	s, _ := w.CreateSign()
	w.CommitSignText(s, "in hand")
	require.True(t, w.PickUpOrPlace())
	w.MoveRight()

	doc := Snapshot(w)
	require.Len(t, doc.Signs, 1)
	assert.Equal(t, "a", doc.Signs[0].Address)
	assert.Equal(t, "in hand", doc.Signs[0].Text)
	assert.Equal(t, 0, doc.Signs[0].X)
}

func TestSnapshotKeepsCarriedSignWhenOriginContested(t *testing.T) {
	w := newWorld()
	s, ok := w.CreateSign()
	require.True(t, ok)
	w.CommitSignText(s, "keep me")
	require.True(t, w.PickUpOrPlace())

	_, ok = w.CreateSign()
	assert.False(t, ok, "origin of the carried sign must stay free")

	doc := Snapshot(w)
	require.Len(t, doc.Signs, 1)
	assert.Equal(t, "a", doc.Signs[0].Address)
	assert.Equal(t, "keep me", doc.Signs[0].Text)

	restored := newWorld()
	Restore(restored, doc)
	sign, ok := restored.SignAt("a")
	require.True(t, ok)
	assert.Equal(t, "keep me", sign.Sign.Text)
}

func TestFileStore(t *testing.T) {
	for _, name := range []string{"world.json", "world.json.zst"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "saves", name)
			store, err := NewFileStore(path)
			require.NoError(t, err)

			_, err = store.Read(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Write(ctx, []byte(`{"a":1}`)))
			require.NoError(t, store.Write(ctx, []byte(`{"a":2}`)))

			got, err := store.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(got))

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must not be left behind")
		})
	}
}

func TestFileStoreCorruptCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = store.Read(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "worlds.db")

	alpha, err := OpenSQLite(path, "alpha")
	require.NoError(t, err)

	_, err = alpha.Read(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, alpha.Write(ctx, []byte("one")))
	require.NoError(t, alpha.Write(ctx, []byte("two")))
	got, err := alpha.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
	require.NoError(t, alpha.Close())

	beta, err := OpenSQLite(path, "beta")
	require.NoError(t, err)
	defer beta.Close()
	_, err = beta.Read(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("tape", "x", "")
	assert.Error(t, err)
}

func TestPersisterSaveLoad(t *testing.T) {
	ctx := context.Background()
	metrics := status.NewRegistry()
	store, err := Open(BackendFile, filepath.Join(t.TempDir(), "world.json"), "")
	require.NoError(t, err)
	p := NewPersister(store, metrics)

	fresh := newWorld()
	found, err := p.Load(ctx, fresh)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "a", fresh.Player().Address)
	assert.Equal(t, 0, fresh.Registry().Count())

	require.NoError(t, p.Save(ctx, populated(t)))
	assert.EqualValues(t, 1, metrics.Ints.Get(status.MetricSaves).Load())

	loaded := newWorld()
	found, err = p.Load(ctx, loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "m", loaded.Player().Address)
	assert.Equal(t, 4, loaded.Registry().Count())
}

func TestPersisterMalformedLeavesWorld(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "world.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"player_address": 5}`), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	p := NewPersister(store, nil)

	w := populated(t)
	_, err = p.Load(ctx, w)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, "m", w.Player().Address)
	assert.Equal(t, 4, w.Registry().Count())
}

func TestSchemaJSONMentionsFields(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)
	for _, field := range []string{"player_address", "paired_vortex_address", "created_at"} {
		assert.Contains(t, string(data), field)
	}
}
