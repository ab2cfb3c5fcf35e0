package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(
		t,
		"https://uploads.s3.ap-south-1.amazonaws.com/20250401-photo.jpg",
		ObjectURL("uploads", "ap-south-1", "20250401-photo.jpg"),
	)
}
