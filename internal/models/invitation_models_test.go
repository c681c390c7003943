package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvitationStatsConversion(t *testing.T) {
	assert.Equal(t, "0/0", InvitationStats{}.Conversion())
	assert.Equal(t, "1/3", InvitationStats{Total: 3, Tagged: 1}.Conversion())
	assert.Equal(t, "5/5", InvitationStats{Total: 5, Tagged: 5}.Conversion())
}
