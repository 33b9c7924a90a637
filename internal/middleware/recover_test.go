package middleware

import (
	"errors"
	"testing"

	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestRecover(t *testing.T) {
	mw := Recover(testutil.NewTestLogger())

	t.Run("panic becomes error", func(t *testing.T) {
		h := mw(func(c tele.Context) error {
			panic("boom")
		})

		var err error
		assert.NotPanics(t, func() { err = h(nil) })
		assert.EqualError(t, err, "handler panic: boom")
	})

	t.Run("error passes through", func(t *testing.T) {
		want := errors.New("send failed")
		h := mw(func(c tele.Context) error {
			return want
		})

		assert.Equal(t, want, h(nil))
	})

	t.Run("success", func(t *testing.T) {
		h := mw(func(c tele.Context) error {
			return nil
		})

		assert.NoError(t, h(nil))
	})
}
