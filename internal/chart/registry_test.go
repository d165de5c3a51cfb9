package chart

import (
	"bytes"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/analytics"
)

type fakeRenderer struct {
	closed bool
}

func (f *fakeRenderer) Render(w io.Writer) error {
	if f.closed {
		return errClosed
	}
	return nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func TestReplaceClosesPrevious(t *testing.T) {
	reg := NewRegistry()

	first := &fakeRenderer{}
	require.NoError(t, reg.Replace(SlotCashflow, first))
	assert.False(t, first.closed)

	second := &fakeRenderer{}
	require.NoError(t, reg.Replace(SlotCashflow, second))
	assert.True(t, first.closed, "prior renderer must be closed before replacement")
	assert.False(t, second.closed)

	got, ok := reg.Get(SlotCashflow)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestReplaceIndependentSlots(t *testing.T) {
	reg := NewRegistry()

	cashflow := &fakeRenderer{}
	categories := &fakeRenderer{}
	require.NoError(t, reg.Replace(SlotCashflow, cashflow))
	require.NoError(t, reg.Replace(SlotCategories, categories))

	require.NoError(t, reg.Replace(SlotCashflow, &fakeRenderer{}))
	assert.True(t, cashflow.closed)
	assert.False(t, categories.closed, "other slots are untouched")
}

func TestCloseAll(t *testing.T) {
	reg := NewRegistry()
	a := &fakeRenderer{}
	b := &fakeRenderer{}
	require.NoError(t, reg.Replace(SlotCashflow, a))
	require.NoError(t, reg.Replace(SlotBreakEven, b))

	require.NoError(t, reg.CloseAll())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	_, ok := reg.Get(SlotCashflow)
	assert.False(t, ok)
}

func TestClosedRendererRefusesRender(t *testing.T) {
	c := &CashflowChart{Format: decimal.Decimal.String}
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Render(io.Discard), errClosed)
}

func TestProjectionChartMarksBreakEven(t *testing.T) {
	bem := 5.0
	p, ok := analytics.BreakEvenProjection(&bem,
		decimal.NewFromInt(10000000), decimal.NewFromInt(2000000))
	require.True(t, ok)

	var buf bytes.Buffer
	c := &ProjectionChart{Projection: p, Format: decimal.Decimal.String}
	require.NoError(t, c.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "balik modal")
	assert.Contains(t, out, "modal awal")
	assert.NotContains(t, out, "net ", "net series is hidden by default")
}
