package msqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatting(t *testing.T) {
	date := time.Date(2024, time.March, 7, 18, 45, 12, 0, time.UTC)

	assert.Equal(t, "2024-03-07", FormatDate(date))
	assert.Equal(t, "2024-03", FormatMonth(date))
}
