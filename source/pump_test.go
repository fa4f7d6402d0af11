package source_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"testing/synctest"

	"github.com/teenjuna/rewind/internal/testing/require"
	"github.com/teenjuna/rewind/source"
)

func TestPump(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pump := source.NewPump(func(ctx context.Context, push func(int) error) error {
			for i := 1; i <= 5; i++ {
				if err := push(i); err != nil {
					return err
				}
			}
			return nil
		}, 2)

		require.Equal(t, slices.Collect(pump.Items()), []int{1, 2, 3, 4, 5})
		require.Nil(t, pump.Close())
	})
}

func TestPumpProducerError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		fail := errors.New("connection lost")

		pump := source.NewPump(func(ctx context.Context, push func(int) error) error {
			if err := push(1); err != nil {
				return err
			}
			if err := push(2); err != nil {
				return err
			}
			return fail
		}, 0)

		require.Equal(t, slices.Collect(pump.Items()), []int{1, 2})
		require.ErrorIs(t, pump.Close(), fail)
	})
}

func TestPumpCloseUnblocksProducer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pump := source.NewPump(func(ctx context.Context, push func(int) error) error {
			for i := 0; ; i++ {
				if err := push(i); err != nil {
					return err
				}
			}
		}, 1)

		var got []int
		for item := range pump.Items() {
			got = append(got, item)
			if len(got) == 3 {
				break
			}
		}
		require.Equal(t, got, []int{0, 1, 2})

		// The producer is blocked in push; Close must cancel it and not
		// report the cancellation as an error.
		require.Nil(t, pump.Close())
	})
}

func TestPumpConfig(t *testing.T) {
	require.PanicWithError(t, "size can't be < 0", func() {
		source.NewPump(func(ctx context.Context, push func(int) error) error {
			return nil
		}, -1)
	})
}
