package romantools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	got, err := Segment("Zhongguo ti'an tianqi", "py")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"zhong", "guo"}, {"ti", "an"}, {"tian", "qi"}}, got)

	_, err = Segment("ni hao", "klingon")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok, err := Validate("ni hao chang'an", "py")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Validate("ni hao xyz", "py")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSyllableCount(t *testing.T) {
	got, err := SyllableCount("Zhongguo tianqi er", "py")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, got)
}

func TestConvert(t *testing.T) {
	got, err := Convert("ni hao chang'an yuan", "py", "wg")
	require.NoError(t, err)
	assert.Equal(t, "ni hao ch'ang-an yüan", got)

	got, err = Convert("ch'ang-an", "wg", "py")
	require.NoError(t, err)
	assert.Equal(t, "chang'an", got)
}

func TestCherryPick(t *testing.T) {
	got, err := CherryPick("Welcome to Zhongguo", "py", "wg")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Chung-kuo", got)
}

func TestDetect(t *testing.T) {
	got, err := Detect("hsiaoming")
	require.NoError(t, err)
	assert.Equal(t, []string{"wg"}, got)

	got, err = Detect("xiaoming")
	require.NoError(t, err)
	assert.Equal(t, []string{"py"}, got)
}
