// AngelaMos | 2026
// errors.go

package booking

import (
	"fmt"

	"github.com/carterperez-dev/talentbook/internal/core"
)

var (
	ErrInvalidSlot     = fmt.Errorf("invalid time slot: %w", core.ErrInvalidInput)
	ErrInvalidDuration = fmt.Errorf("invalid duration: %w", core.ErrInvalidInput)
	ErrIncompleteStep  = fmt.Errorf("incomplete booking step: %w", core.ErrInvalidInput)
	ErrDateUnavailable = fmt.Errorf("date not bookable: %w", core.ErrInvalidInput)
	ErrInvalidRange    = fmt.Errorf("end must be after start: %w", core.ErrInvalidInput)
	ErrSlotTaken       = fmt.Errorf("talent already booked for that time: %w", core.ErrConflict)
)
