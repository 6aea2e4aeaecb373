package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchamoorthee/paymentsengine/internal/domain"
	"github.com/punchamoorthee/paymentsengine/internal/engine"
)

func TestSummaryEmpty(t *testing.T) {
	t.Parallel()

	summary, err := NewRecorder().Summary()

	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

func TestSummaryCounts(t *testing.T) {
	t.Parallel()
	recorder := NewRecorder()

	recorder.ObserveTransaction(domain.TypeDeposit, nil)
	recorder.ObserveTransaction(domain.TypeWithdrawal, nil)
	recorder.ObserveTransaction(domain.TypeWithdrawal, engine.ErrInsufficientFunds)
	recorder.ObserveTransaction(domain.TypeDispute, engine.ErrTransactionNotFound)
	recorder.ObserveMalformedRow()

	summary, err := recorder.Summary()

	require.NoError(t, err)
	assert.Equal(t, uint64(2), summary.Accepted)
	assert.Equal(t, uint64(2), summary.Rejected)
	assert.Equal(t, uint64(1), summary.Malformed)
}

func TestRecordersAreIndependent(t *testing.T) {
	t.Parallel()

	first := NewRecorder()
	second := NewRecorder()
	first.ObserveTransaction(domain.TypeDeposit, nil)

	summary, err := second.Summary()

	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}
