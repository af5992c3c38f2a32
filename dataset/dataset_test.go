package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/chengyu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, JSON, FormatOf("data/idioms.JSON"))
	assert.Equal(t, TSV, FormatOf("idioms.tsv"))
	assert.Equal(t, TSV, FormatOf("idioms.txt"))
	assert.Equal(t, Unknown, FormatOf("idioms.csv"))
	assert.Equal(t, "json", JSON.String())
}

func TestLoadFiles(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	j := writeFixture(t, dir, "idioms.json", `[
	{"idiom": "一心一意", "pinyin": "yī xīn yī yì"},
	{"idiom": "三心二意", "pinyin": "sān xīn èr"}
]`)
	tsv := writeFixture(t, dir, "extra.tsv", "三心二意\tsān xīn èr yì\n守株待兔\tshǒu zhū dài tù\n")

	corpus, reports, err := LoadFiles(context.Background(), j, tsv)
	require.NoError(t, err)
	assert.Equal(t, []string{"一心一意", "三心二意", "守株待兔"}, corpus.Idioms())
	require.Len(t, reports, 2)
	assert.Equal(t, j, reports[0].Path)
	assert.Equal(t, 1, reports[0].Accepted)
	assert.Equal(t, 1, Rejected(reports))
	assert.ErrorIs(t, reports[0].Rejected[0], chengyu.ErrSyllableCount)
	assert.Equal(t, "corpus: idioms.json+1", corpus.Identifier)

	q := &chengyu.Query{IncludeInitials: []string{"zh"}}
	assert.Equal(t, []string{"守株待兔"}, chengyu.Search(q, corpus))
}

func TestLoadFilesFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	good := writeFixture(t, dir, "idioms.tsv", "一心一意\tyī xīn yī yì\n")
	unknown := writeFixture(t, dir, "idioms.csv", "一心一意,yī xīn yī yì\n")

	_, _, err := LoadFiles(context.Background())
	assert.Error(t, err)
	_, _, err = LoadFiles(context.Background(), good, filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = LoadFiles(context.Background(), good, unknown)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = LoadFiles(ctx, good)
	assert.ErrorIs(t, err, context.Canceled)
}
