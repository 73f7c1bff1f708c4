package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexgrid/internal/grid"
	"github.com/talgya/hexgrid/internal/hex"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "layers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveLoadBoolLayer(t *testing.T) {
	db := openTestDB(t)

	l := grid.NewFromRange[bool, int](3, hex.New(-4, 2))
	l.Set(hex.New(-4, 2), true)
	l.Set(hex.New(-3, 1), true)

	snapshot, err := SaveLayer(db, "obstacles", l)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot)

	loaded, err := LoadLayer[bool, int](db, "obstacles")
	require.NoError(t, err)
	assert.Equal(t, l.Cells(), loaded.Cells())
}

func TestSaveLoadFloatCoordinates(t *testing.T) {
	db := openTestDB(t)

	l := grid.New[float64, float32]()
	l.Set(hex.New[float32](1.5, -2), 0.25)
	l.Set(hex.New[float32](0, 0), -0.75)

	_, err := SaveLayer(db, "heights", l)
	require.NoError(t, err)

	loaded, err := LoadLayer[float64, float32](db, "heights")
	require.NoError(t, err)
	assert.Equal(t, l.Cells(), loaded.Cells())
}

func TestSaveReplaces(t *testing.T) {
	db := openTestDB(t)

	first, err := SaveLayer(db, "life", grid.NewFromRange[bool, int](3, hex.Origin[int]()))
	require.NoError(t, err)
	second, err := SaveLayer(db, "life", grid.NewFromRange[bool, int](2, hex.Origin[int]()))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	info, err := db.Layer("life")
	require.NoError(t, err)
	assert.Equal(t, second, info.Snapshot)
	assert.Equal(t, 7, info.Cells)

	loaded, err := LoadLayer[bool, int](db, "life")
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Len())
}

func TestLayersAndDelete(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"b", "a"} {
		_, err := SaveLayer(db, name, grid.NewFromRange[int, int](1, hex.Origin[int]()))
		require.NoError(t, err)
	}

	infos, err := db.Layers()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, "b", infos[1].Name)

	require.NoError(t, db.DeleteLayer("a"))
	_, err = LoadLayer[int, int](db, "a")
	assert.ErrorIs(t, err, ErrLayerNotFound)

	infos, err = db.Layers()
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestLoadMissingLayer(t *testing.T) {
	db := openTestDB(t)
	_, err := LoadLayer[bool, int](db, "nope")
	assert.ErrorIs(t, err, ErrLayerNotFound)
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveMeta("generation", "3"))
	require.NoError(t, db.SaveMeta("generation", "4"))

	v, err := db.GetMeta("generation")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}

func TestSaveLayerWithMeta(t *testing.T) {
	db := openTestDB(t)

	l := grid.NewFromRange[bool, int](2, hex.Origin[int]())
	_, err := SaveLayerWithMeta(db, "life", l, map[string]string{"generation": "7"})
	require.NoError(t, err)

	v, err := db.GetMeta("generation")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestSaveLayerWithMetaRollsBack(t *testing.T) {
	db := openTestDB(t)

	l := grid.New[any, int]()
	l.Set(hex.Origin[int](), make(chan int))
	_, err := SaveLayerWithMeta(db, "broken", l, map[string]string{"generation": "7"})
	require.Error(t, err)

	_, err = db.GetMeta("generation")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = db.Layer("broken")
	assert.ErrorIs(t, err, ErrLayerNotFound)
}
