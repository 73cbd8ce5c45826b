// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tasuku"
)

// countingNotifier records completion signals.
type countingNotifier struct {
	fired int
}

func (n *countingNotifier) NotifyCompletion() { n.fired++ }

func TestSynchronizedTaskNotifiesExactlyOnce(t *testing.T) {
	task := tasuku.New(func() (int, error) { return 11, nil })
	st := tasuku.Synchronize[int](task)
	defer st.Destroy()

	n := &countingNotifier{}
	st.Start(n)

	require.Equal(t, 1, n.fired, "terminal action must notify exactly once")

	got, err := st.Result()
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestSynchronizedTaskIsLazy(t *testing.T) {
	ran := false
	task := tasuku.New(func() (int, error) {
		ran = true
		return 0, nil
	})
	st := tasuku.Synchronize[int](task)
	defer st.Destroy()

	assert.False(t, ran, "wrapping must not start the chain")

	st.Start(&countingNotifier{})
	assert.True(t, ran)
}

func TestSynchronizedTaskCarriesError(t *testing.T) {
	sentinel := errors.New("chain failed")
	st := tasuku.Synchronize[int](tasuku.New(func() (int, error) { return 0, sentinel }))
	defer st.Destroy()

	n := &countingNotifier{}
	st.Start(n)

	require.Equal(t, 1, n.fired, "failure still notifies")
	_, err := st.Result()
	assert.ErrorIs(t, err, sentinel)
}

func TestWaitBlocksUntilOffloadCompletes(t *testing.T) {
	release := make(chan struct{})
	task := tasuku.Lift[int](tasuku.Async(func() (int, error) {
		<-release
		return 77, nil
	}))

	type outcome struct {
		v   int
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := tasuku.Wait[int](task)
		done <- outcome{v: v, err: err}
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before the chain completed")
	default:
	}

	close(release)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, 77, got.v)
}

func TestWaitReRaisesChainError(t *testing.T) {
	sentinel := errors.New("offloaded failure")
	_, err := tasuku.Wait[int](tasuku.Async(func() (int, error) {
		return 0, sentinel
	}))
	assert.ErrorIs(t, err, sentinel)
}
