package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveItems(ctx context.Context, viewID string, items []Record, selection []int) error {
	args := m.Called(ctx, viewID, items, selection)
	return args.Error(0)
}

func TestApplyPlan(t *testing.T) {
	plan := &Plan{Items: []Record{rec("a")}, Selection: []int{0}}
	ctx := context.Background()

	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{name: "Dry Run", opts: Options{DryRun: true, Confirmed: true}},
		{name: "Not Confirmed", opts: Options{}},
		{name: "Confirmed", opts: Options{Confirmed: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			store.On("SaveItems", ctx, "view-1", plan.Items, plan.Selection).Return(nil)

			saved, err := ApplyPlan(ctx, store, "view-1", plan, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, saved)
			if tt.want {
				store.AssertExpectations(t)
			} else {
				store.AssertNotCalled(t, "SaveItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestApplyPlan_Errors(t *testing.T) {
	ctx := context.Background()

	store := new(mockStore)
	store.On("SaveItems", ctx, "view-1", mock.Anything, mock.Anything).Return(errors.New("locked"))

	saved, err := ApplyPlan(ctx, store, "view-1", &Plan{}, Options{Confirmed: true})
	assert.False(t, saved)
	assert.EqualError(t, err, "failed to save view view-1: locked")

	_, err = ApplyPlan(ctx, store, "view-1", nil, Options{Confirmed: true})
	assert.Error(t, err)
}
