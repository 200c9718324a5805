package xhash

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha512Half(t *testing.T) {
	full := sha512.Sum512([]byte("abc"))
	half := Sha512Half([]byte("abc"))
	assert.Equal(t, full[:32], half[:])
}

func TestConcatenationIsBoundaryFree(t *testing.T) {
	joined := Sha512Half([]byte("abcdef"))
	split := Sha512Half([]byte("abc"), []byte("def"))
	assert.Equal(t, joined, split)
}
