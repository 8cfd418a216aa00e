package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dispatchiq/internal/snapshot"
)

func newSnapshotService() (*SnapshotServiceImpl, *memoryFixture) {
	store := seededStore()
	archive := &recordingArchive{}
	svc := NewSnapshotService(store, archive, nil).WithSnapshotClock(testClock)
	return svc, &memoryFixture{store: store, archive: archive}
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, fx := newSnapshotService()
	ctx := context.Background()

	data, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"workorders"`)

	require.NoError(t, svc.Import(ctx, data))

	reg, err := fx.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Version)
	assert.Len(t, reg.WorkOrders, 3)
	assert.Equal(t, "North Texas Fleet & Refrigeration", reg.Settings.Org)
}

func TestImportMalformedLeavesStoreUntouched(t *testing.T) {
	svc, fx := newSnapshotService()
	ctx := context.Background()

	cases := [][]byte{
		[]byte("{not json"),
		[]byte(`{"version":1,"workorders":[{"id":"RO-1","status":"bogus"}]}`),
		[]byte(`{"version":1,"parts":[{"id":"X","onHand":-1}]}`),
	}
	for _, data := range cases {
		err := svc.Import(ctx, data)
		require.Error(t, err)
		var perr *snapshot.ParseError
		assert.ErrorAs(t, err, &perr)
	}

	reg, err := fx.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Version)
	assert.Len(t, reg.WorkOrders, 3)
	assert.Empty(t, fx.archive.entries)
}

func TestResetToSeed(t *testing.T) {
	svc, fx := newSnapshotService()
	store := fx.store
	ctx := context.Background()

	// Drift the registry away from the seed first.
	reg, err := store.Load(ctx)
	require.NoError(t, err)
	drifted := reg.Clone()
	drifted.Version = reg.Version + 1
	drifted.WorkOrders = nil
	require.NoError(t, store.Save(ctx, drifted))

	require.NoError(t, svc.ResetToSeed(ctx))

	reg, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Version)
	assert.Len(t, reg.WorkOrders, 3)
	assert.Len(t, reg.Parts, 5)
}

func TestHistoryAndShowVersion(t *testing.T) {
	svc, _ := newSnapshotService()
	ctx := context.Background()

	data, err := svc.Export(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Import(ctx, data))
	require.NoError(t, svc.ResetToSeed(ctx))

	versions, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, 2, versions[1].Version)
	assert.Positive(t, versions[0].SizeBytes)

	payload, err := svc.ShowVersion(ctx, 2)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"version": 2`)

	_, err = svc.ShowVersion(ctx, 99)
	require.Error(t, err)
}

func TestHistoryWithoutArchive(t *testing.T) {
	svc := NewSnapshotService(seededStore(), nil, nil)
	ctx := context.Background()

	_, err := svc.History(ctx, 10)
	require.Error(t, err)
	_, err = svc.ShowVersion(ctx, 1)
	require.Error(t, err)
}
