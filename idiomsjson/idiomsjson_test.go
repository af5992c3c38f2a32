package idiomsjson

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/chengyu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`[
	{"idiom": "一心一意", "pinyin": "yī xīn yī yì", "explanation": "whole-heartedly"},
	{"idiom": "三心二意", "pinyin": "sān xīn èr yì"}
]`)
	r := NewReader(src)
	idiom, pinyin, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "一心一意", idiom)
	assert.Equal(t, "yī xīn yī yì", pinyin)
	idiom, _, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "三心二意", idiom)
	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderPassesMalformedElements(t *testing.T) {
	src := strings.NewReader(`[{"idiom": 42, "pinyin": "a b c d"}, "x", {"idiom": "一心一意"}]`)
	c, report, err := LoadCorpus("malformed", src)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	require.Len(t, report.Rejected, 3)
	assert.ErrorIs(t, report.Rejected[0], chengyu.ErrMissingIdiom)
	assert.ErrorIs(t, report.Rejected[1], chengyu.ErrMissingIdiom)
	assert.ErrorIs(t, report.Rejected[2], chengyu.ErrMissingPinyin)
}

func TestReaderRejectsNonArray(t *testing.T) {
	_, _, err := NewReader(strings.NewReader(`{"idiom": "一心一意"}`)).Next()
	require.Error(t, err)
}

func TestReaderEmptyInput(t *testing.T) {
	c, report, err := LoadCorpus("empty", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, report.Total())
}

func TestReaderTruncatedInput(t *testing.T) {
	_, _, err := LoadCorpus("truncated", strings.NewReader(`[{"idiom": "一心一意", "pinyin": "yī xīn yī yì"},`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestLoadCorpusSearch(t *testing.T) {
	c, _, err := LoadCorpus("e2e", strings.NewReader(`[
	{"idiom": "一心一意", "pinyin": "yī xīn yī yì"},
	{"idiom": "三心二意", "pinyin": "sān xīn èr yì"}
]`))
	require.NoError(t, err)
	q := &chengyu.Query{Chars: [chengyu.IdiomLength]string{"一"}}
	assert.Equal(t, []string{"一心一意"}, chengyu.Search(q, c))
}
