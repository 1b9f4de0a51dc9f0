package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supervisor(t *testing.T) workflow.Actor {
	t.Helper()
	actor, err := workflow.NewActor(kernel.NewUUID(), workflow.RoleSupervisor, "boss@example.com", nil)
	require.NoError(t, err)
	return actor
}

func TestNewGetQuoteQuery(t *testing.T) {
	query, err := queries.NewGetQuoteQuery(supervisor(t), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetQuoteQuery(workflow.Actor{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetQuoteQuery(supervisor(t), kernel.UUID{})
	require.Error(t, err)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"GetQuoteQuery", queries.GetQuoteQuery{}.Validate, queries.ErrGetQuoteQueryIsNotConstructed},
		{"GetQuoteHistoryQuery", queries.GetQuoteHistoryQuery{}.Validate, queries.ErrGetQuoteHistoryQueryIsNotConstructed},
		{"ListQuoteRFQsQuery", queries.ListQuoteRFQsQuery{}.Validate, queries.ErrListQuoteRFQsQueryIsNotConstructed},
		{
			"ListWarehouseRFQsQuery",
			queries.ListWarehouseRFQsQuery{}.Validate,
			queries.ErrListWarehouseRFQsQueryIsNotConstructed,
		},
		{
			"GetBookingChainQuery",
			queries.GetBookingChainQuery{}.Validate,
			queries.ErrGetBookingChainQueryIsNotConstructed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewListWarehouseRFQsQuery_Status(t *testing.T) {
	query, err := queries.NewListWarehouseRFQsQuery(supervisor(t), " responded ")
	require.NoError(t, err)
	assert.Equal(t, "responded", query.Status())

	query, err = queries.NewListWarehouseRFQsQuery(supervisor(t), "")
	require.NoError(t, err)
	assert.Empty(t, query.Status())

	_, err = queries.NewListWarehouseRFQsQuery(supervisor(t), "lost")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
