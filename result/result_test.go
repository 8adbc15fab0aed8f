package result

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/bingo/board"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeGzipFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := gzip.NewWriter(file)
	_, err = writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
	return path
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "plain", []byte{1})

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name: "directory",
			path: dir,
		},
		{
			name:    "missing",
			path:    filepath.Join(dir, "missing"),
			wantErr: "does not exist",
		},
		{
			name:    "file",
			path:    file,
			wantErr: "is not a directory",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := CheckDir(test.path)
			if test.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidResultDirectory))
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}

func TestReadCounts_Plain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile, []byte{5, 5, 10})

	counts, err := ReadCounts(dir)
	require.NoError(t, err)
	assert.Equal(t, []uint8{5, 5, 10}, counts)
}

func TestReadCounts_Empty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile, nil)

	counts, err := ReadCounts(dir)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestReadCounts_GzipFallback(t *testing.T) {
	dir := t.TempDir()
	writeGzipFile(t, dir, CountsFile+".gz", []byte{1, 2, 3, 74})

	counts, err := ReadCounts(dir)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 3, 74}, counts)
}

func TestReadCounts_PrefersPlainFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile, []byte{7})
	writeGzipFile(t, dir, CountsFile+".gz", []byte{8, 9})

	counts, err := ReadCounts(dir)
	require.NoError(t, err)
	assert.Equal(t, []uint8{7}, counts)
}

func TestReadCounts_Missing(t *testing.T) {
	_, err := ReadCounts(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot find counts.bin")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCounts_CorruptGzip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile+".gz", []byte("not gzip at all"))

	_, err := ReadCounts(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create gzip reader")
}

func TestReadBoards(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BoardsFile, make([]byte, 2*board.Stride))

	boards, err := ReadBoards(dir)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, []uint8{60, 60, 60, 60, 60}, boards[1].Row(4))
}

func TestReadBoards_MalformedStride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BoardsFile, make([]byte, board.Stride+1))

	_, err := ReadBoards(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrMalformedStride))
	assert.Contains(t, err.Error(), "cannot decode")
}

func TestHasBoards(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, HasBoards(dir))

	writeGzipFile(t, dir, BoardsFile+".gz", make([]byte, board.Stride))
	assert.True(t, HasBoards(dir))

	boards, err := ReadBoards(dir)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestHasBoards_DirectoryIsNotABoardFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, BoardsFile), 0755))
	assert.False(t, HasBoards(dir))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CountsFile, []byte{3, 4})
	writeFile(t, dir, BoardsFile, make([]byte, 2*board.Stride))

	res, err := Load(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []uint8{3, 4}, res.Counts)
	assert.Len(t, res.Boards, 2)

	res, err = Load(dir, false)
	require.NoError(t, err)
	assert.Nil(t, res.Boards)
}

func TestLoad_InvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "not-a-dir", nil)

	_, err := Load(file, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResultDirectory))
}
