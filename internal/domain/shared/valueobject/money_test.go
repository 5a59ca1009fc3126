package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), EUR)
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyEUR(t *testing.T) {
	m := NewMoneyEUR(decimal.NewFromFloat(50.00))
	assert.Equal(t, EUR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestNewMoneyEURFromFloat(t *testing.T) {
	m := NewMoneyEURFromFloat(75.50)
	assert.Equal(t, EUR, m.Currency())
	assert.Equal(t, 75.5, m.Float64())
}

func TestNewMoneyEURFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyEURFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyEURFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestZeroEUR(t *testing.T) {
	m := ZeroEUR()
	assert.True(t, m.IsZero())
	assert.Equal(t, EUR, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds amounts with same currency", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10.50)
		b := NewMoneyEURFromFloat(5.25)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(15.75)))
	})

	t.Run("rejects different currencies", func(t *testing.T) {
		a := NewMoneyEURFromFloat(10)
		b, _ := NewMoney(decimal.NewFromInt(10), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneyMultiplyByInt(t *testing.T) {
	m := NewMoneyEURFromFloat(19.99)
	result := m.MultiplyByInt(3)
	assert.True(t, result.Amount().Equal(decimal.NewFromFloat(59.97)))
	assert.Equal(t, EUR, result.Currency())
}

func TestMoneyDivide(t *testing.T) {
	t.Run("divides by non-zero", func(t *testing.T) {
		m := NewMoneyEURFromFloat(30)
		result, err := m.Divide(decimal.NewFromInt(3))
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(10)))
	})

	t.Run("rejects division by zero", func(t *testing.T) {
		m := NewMoneyEURFromFloat(30)
		_, err := m.Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyEURFromFloat(10)
	b := NewMoneyEURFromFloat(20)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyEURFromFloat(10)))
	assert.False(t, a.Equals(b))
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyEURFromFloat(1999.97)
	assert.Equal(t, "1999.97 EUR", m.String())
	assert.Equal(t, "1999.97", m.StringFixed(2))
}
