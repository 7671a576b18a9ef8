package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/strata-tools/cli/internal/store"
	"github.com/strata-tools/cli/internal/testutil"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(testutil.NewTestDB(t))
}

func testVolume(name string) store.Volume {
	return store.Volume{
		ID:        uuid.NewString(),
		Name:      name,
		Path:      "/srv/" + name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	v := testVolume("data")
	require.NoError(t, s.CreateVolume(v))

	got, err := s.GetVolume("data")
	require.NoError(t, err)
	require.Equal(t, v.ID, got.ID)
	require.Equal(t, v.Path, got.Path)
	require.True(t, v.CreatedAt.Equal(got.CreatedAt))
}

func TestVolumeNameUnique(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateVolume(testVolume("data")))
	require.Error(t, s.CreateVolume(testVolume("data")))
}

func TestGetVolumeNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetVolume("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListVolumesOrdered(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.CreateVolume(testVolume(name)))
	}

	volumes, err := s.ListVolumes()
	require.NoError(t, err)
	require.Len(t, volumes, 3)
	require.Equal(t, "alpha", volumes[0].Name)
	require.Equal(t, "mid", volumes[1].Name)
	require.Equal(t, "zeta", volumes[2].Name)
}

func TestDeleteVolumeWithSnapshotsRefused(t *testing.T) {
	s := newTestStore(t)

	v := testVolume("data")
	require.NoError(t, s.CreateVolume(v))
	require.NoError(t, s.CreateSnapshot(store.Snapshot{
		ID:        uuid.NewString(),
		VolumeID:  v.ID,
		Name:      "data@1",
		CreatedAt: time.Now().UTC(),
	}))

	require.Error(t, s.DeleteVolume("data"))

	require.NoError(t, s.DeleteSnapshot("data@1"))
	require.NoError(t, s.DeleteVolume("data"))

	_, err := s.GetVolume("data")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSnapshotListByVolume(t *testing.T) {
	s := newTestStore(t)

	v1 := testVolume("one")
	v2 := testVolume("two")
	require.NoError(t, s.CreateVolume(v1))
	require.NoError(t, s.CreateVolume(v2))

	base := time.Now().UTC().Truncate(time.Second)
	for i, volID := range []string{v1.ID, v1.ID, v2.ID} {
		require.NoError(t, s.CreateSnapshot(store.Snapshot{
			ID:        uuid.NewString(),
			VolumeID:  volID,
			Name:      []string{"one@1", "one@2", "two@1"}[i],
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := s.ListSnapshots("")
	require.NoError(t, err)
	require.Len(t, all, 3)

	ofOne, err := s.ListSnapshots(v1.ID)
	require.NoError(t, err)
	require.Len(t, ofOne, 2)
	require.Equal(t, "one@1", ofOne[0].Name)
}

func TestQGroupLifecycle(t *testing.T) {
	s := newTestStore(t)

	v := testVolume("data")
	require.NoError(t, s.CreateVolume(v))

	require.NoError(t, s.CreateQGroup("0/5"))
	require.NoError(t, s.SetQGroupLimit("0/5", 1<<30))
	require.NoError(t, s.AssignQGroup("0/5", v.ID))

	groups, err := s.ListQGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.EqualValues(t, 1<<30, groups[0].MaxReferenced)

	members, err := s.QGroupMembers("0/5")
	require.NoError(t, err)
	require.Equal(t, []string{v.ID}, members)

	require.NoError(t, s.DestroyQGroup("0/5"))
	require.ErrorIs(t, s.DestroyQGroup("0/5"), store.ErrNotFound)
}

func TestQGroupLimitNotFound(t *testing.T) {
	s := newTestStore(t)

	require.ErrorIs(t, s.SetQGroupLimit("0/9", 100), store.ErrNotFound)
}

func TestPropertyRoundTrip(t *testing.T) {
	s := newTestStore(t)

	v := testVolume("data")
	require.NoError(t, s.CreateVolume(v))

	require.NoError(t, s.SetProperty(v.ID, "compression", "zstd"))
	require.NoError(t, s.SetProperty(v.ID, "compression", "lzo"))

	value, err := s.GetProperty(v.ID, "compression")
	require.NoError(t, err)
	require.Equal(t, "lzo", value)

	_, err = s.GetProperty(v.ID, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	props, err := s.ListProperties(v.ID)
	require.NoError(t, err)
	require.Len(t, props, 1)
}

func TestMetaRoundTrip(t *testing.T) {
	s := newTestStore(t)

	value, err := s.GetMeta("quota_enabled", "0")
	require.NoError(t, err)
	require.Equal(t, "0", value)

	require.NoError(t, s.SetMeta("quota_enabled", "1"))

	value, err = s.GetMeta("quota_enabled", "0")
	require.NoError(t, err)
	require.Equal(t, "1", value)
}

func TestChecksumStable(t *testing.T) {
	s := newTestStore(t)

	empty1, err := s.Checksum()
	require.NoError(t, err)
	empty2, err := s.Checksum()
	require.NoError(t, err)
	require.Equal(t, empty1, empty2)

	require.NoError(t, s.CreateVolume(testVolume("data")))

	changed, err := s.Checksum()
	require.NoError(t, err)
	require.NotEqual(t, empty1, changed)
}

func TestFsckCleanRegistry(t *testing.T) {
	s := newTestStore(t)

	v := testVolume("data")
	require.NoError(t, s.CreateVolume(v))
	require.NoError(t, s.CreateSnapshot(store.Snapshot{
		ID:        uuid.NewString(),
		VolumeID:  v.ID,
		Name:      "data@1",
		CreatedAt: time.Now().UTC(),
	}))

	problems, err := s.Fsck()
	require.NoError(t, err)
	require.Empty(t, problems)
}

func TestFsckDanglingSnapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := store.NewWithDB(db)

	// Insert a snapshot pointing at a volume that does not exist.
	_, err := db.Exec(
		`INSERT INTO snapshots (id, volume_id, name, read_only, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		uuid.NewString(), "no-such-volume", "orphan@1",
		time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)

	problems, err := s.Fsck()
	require.NoError(t, err)
	require.Len(t, problems, 1)
	require.Contains(t, problems[0], "orphan@1")
}
