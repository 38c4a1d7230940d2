package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDecideRSVPStatus(t *testing.T) {
	tests := []struct {
		name      string
		confirmed int64
		max       *int
		requested RSVPStatus
		want      RSVPStatus
	}{
		{
			name:      "capacity available",
			confirmed: 1,
			max:       intPtr(10),
			requested: RSVPConfirmed,
			want:      RSVPConfirmed,
		},
		{
			name:      "at capacity goes to waitlist",
			confirmed: 10,
			max:       intPtr(10),
			requested: RSVPConfirmed,
			want:      RSVPWaitlist,
		},
		{
			name:      "over capacity goes to waitlist",
			confirmed: 11,
			max:       intPtr(10),
			requested: RSVPConfirmed,
			want:      RSVPWaitlist,
		},
		{
			name:      "no limit never waitlists",
			confirmed: 100000,
			max:       nil,
			requested: RSVPConfirmed,
			want:      RSVPConfirmed,
		},
		{
			name:      "cancelled is not a creation value",
			confirmed: 0,
			max:       intPtr(10),
			requested: RSVPCancelled,
			want:      RSVPConfirmed,
		},
		{
			name:      "cancelled at capacity still waitlists",
			confirmed: 10,
			max:       intPtr(10),
			requested: RSVPCancelled,
			want:      RSVPWaitlist,
		},
		{
			name:      "explicit waitlist kept",
			confirmed: 0,
			max:       intPtr(10),
			requested: RSVPWaitlist,
			want:      RSVPWaitlist,
		},
		{
			name:      "garbage defaults to confirmed",
			confirmed: 0,
			max:       intPtr(10),
			requested: RSVPStatus("MAYBE"),
			want:      RSVPConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideRSVPStatus(tt.confirmed, tt.max, tt.requested)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 一号位满员后二号位必须进等待名单
func TestDecideRSVPStatusSingleSeat(t *testing.T) {
	max := intPtr(1)
	assert.Equal(t, RSVPConfirmed, DecideRSVPStatus(0, max, RSVPConfirmed))
	assert.Equal(t, RSVPWaitlist, DecideRSVPStatus(1, max, RSVPConfirmed))
}
