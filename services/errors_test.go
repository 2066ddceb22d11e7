package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewError(KindNotFound, "gone")))
	assert.Equal(t, KindInternal, KindOf(errors.New("some storage failure")))
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(KindInternal, "write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "write failed: disk full", err.Error())
	assert.Equal(t, "gone", NewError(KindNotFound, "gone").Error())
}
