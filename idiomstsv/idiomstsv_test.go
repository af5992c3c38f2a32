package idiomstsv

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/chengyu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	src := strings.NewReader("# idioms\n\n一心一意\tyī xīn yī yì\twhole-heartedly\r\n三心二意\tsān xīn èr yì\n")
	r := NewReader(src)
	idiom, pinyin, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "一心一意", idiom)
	assert.Equal(t, "yī xīn yī yì", pinyin)
	idiom, pinyin, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "三心二意", idiom)
	assert.Equal(t, "sān xīn èr yì", pinyin)
	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLoadCorpusReportsMalformedLines(t *testing.T) {
	src := strings.NewReader("一心一意\tyī xīn yī yì\n三心二意\n一心二意\tyī xīn èr\n")
	c, report, err := LoadCorpus("tsv", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"一心一意"}, c.Idioms())
	require.Len(t, report.Rejected, 2)
	assert.ErrorIs(t, report.Rejected[0], chengyu.ErrMissingPinyin)
	assert.ErrorIs(t, report.Rejected[1], chengyu.ErrSyllableCount)
	assert.Equal(t, 2, report.Rejected[1].Record)
}
