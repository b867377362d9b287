package filestorage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveListDelete(t *testing.T) {
	storage, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	path, err := storage.Save(strings.NewReader("manual"), "equipment/eq-1/1700000000.pdf")
	require.NoError(t, err)
	assert.Equal(t, "equipment/eq-1/1700000000.pdf", path)

	paths, err := storage.List("equipment/eq-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"equipment/eq-1/1700000000.pdf"}, paths)

	require.NoError(t, storage.Delete(path))
	paths, err = storage.List("equipment/eq-1")
	require.NoError(t, err)
	assert.Empty(t, paths)

	// deleting a missing file is not an error
	assert.NoError(t, storage.Delete("equipment/eq-1/gone.pdf"))
}

func TestPathBuilders(t *testing.T) {
	assert.Regexp(t, `^equipment/eq-1/\d+\.png$`, EquipmentImagePath("eq-1", "photo.PNG"))
	assert.Equal(t, "avatars/tech-1.jpg", AvatarPath("tech-1", "me.jpg"))
	assert.Regexp(t, `^requests/req-1/\d+_notes\.pdf$`, RequestAttachmentPath("req-1", "notes.pdf"))
}
