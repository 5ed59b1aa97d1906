package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAssignsIncreasingIDs(t *testing.T) {
	q := NewWithTTL(time.Minute)

	first := q.Show("one", SeverityInfo)
	second := q.Show("two", SeverityError)
	assert.Greater(t, second, first)

	items := q.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Message)
	assert.Equal(t, SeverityError, items[1].Severity)
}

func TestDismissIsIdempotent(t *testing.T) {
	q := NewWithTTL(time.Minute)
	id := q.Show("bye", SeverityInfo)

	q.Dismiss(id)
	assert.Empty(t, q.Items())
	q.Dismiss(id) // already gone, no-op
	assert.Empty(t, q.Items())
}

func TestToastsExpireOnTheirOwn(t *testing.T) {
	q := NewWithTTL(20 * time.Millisecond)
	q.Show("fleeting", SeveritySuccess)
	require.Len(t, q.Items(), 1)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(q.Items()) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("toast never expired")
}

func TestConvenienceWrappersFixSeverity(t *testing.T) {
	q := NewWithTTL(time.Minute)
	q.Success("s")
	q.Error("e")
	q.Info("i")

	items := q.Items()
	require.Len(t, items, 3)
	assert.Equal(t, SeveritySuccess, items[0].Severity)
	assert.Equal(t, SeverityError, items[1].Severity)
	assert.Equal(t, SeverityInfo, items[2].Severity)
}

func TestSinkSeesEveryToast(t *testing.T) {
	q := NewWithTTL(time.Minute)
	var seen []string
	q.SetSink(func(it Item) { seen = append(seen, it.Message) })

	q.Info("a")
	q.Error("b")
	assert.Equal(t, []string{"a", "b"}, seen)
}
